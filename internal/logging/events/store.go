package events

import "github.com/atomicstack/barstock/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Open(driver, path string) {
	logging.Trace("store.open", map[string]interface{}{"driver": driver, "path": path})
}

func (StoreTracer) Load(key string, tabs int) {
	logging.Trace("store.load", map[string]interface{}{"key": key, "tabs": tabs})
}

// LoadFallback records why persisted data was discarded in favour of an
// empty collection.
func (StoreTracer) LoadFallback(key, reason string) {
	logging.Trace("store.load-fallback", map[string]interface{}{"key": key, "reason": reason})
}

func (StoreTracer) Save(key string, tabs, size int) {
	logging.Trace("store.save", map[string]interface{}{"key": key, "tabs": tabs, "bytes": size})
}

func (StoreTracer) SaveFailed(key string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.save-failed", map[string]interface{}{"key": key, "error": err.Error()})
}
