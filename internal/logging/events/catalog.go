package events

import "github.com/atomicstack/barstock/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Fetch(location string) {
	logging.Trace("catalog.fetch", map[string]interface{}{"location": location})
}

func (CatalogTracer) Loaded(location string, count int) {
	logging.Trace("catalog.loaded", map[string]interface{}{"location": location, "items": count})
}

func (CatalogTracer) Rejected(location, reason string) {
	logging.Trace("catalog.rejected", map[string]interface{}{"location": location, "reason": reason})
}

func (CatalogTracer) Failed(location string, err error) {
	if err == nil {
		return
	}
	logging.Trace("catalog.failed", map[string]interface{}{"location": location, "error": err.Error()})
}
