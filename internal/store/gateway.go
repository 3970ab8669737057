package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atomicstack/barstock/internal/inventory"
	"github.com/atomicstack/barstock/internal/logging"
	"github.com/atomicstack/barstock/internal/logging/events"
)

// Gateway serializes the whole tab collection as one JSON array stored
// under StorageKey.
type Gateway struct {
	backend Backend
	key     string
}

func NewGateway(backend Backend) *Gateway {
	return &Gateway{backend: backend, key: StorageKey}
}

// Load returns the stored tabs. Missing, unreadable or malformed documents
// yield an empty collection; the reason is traced.
func (g *Gateway) Load() []inventory.Tab {
	data, err := g.backend.Read(g.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logging.Error(err)
		}
		events.Store.LoadFallback(g.key, err.Error())
		return nil
	}
	tabs, err := decodeTabs(data)
	if err != nil {
		events.Store.LoadFallback(g.key, err.Error())
		return nil
	}
	events.Store.Load(g.key, len(tabs))
	return tabs
}

// Save replaces the stored document with tabs.
func (g *Gateway) Save(tabs []inventory.Tab) error {
	data, err := json.Marshal(tabs)
	if err != nil {
		events.Store.SaveFailed(g.key, err)
		return fmt.Errorf("encode tabs: %w", err)
	}
	if err := g.backend.Write(g.key, data); err != nil {
		events.Store.SaveFailed(g.key, err)
		return err
	}
	events.Store.Save(g.key, len(tabs), len(data))
	return nil
}

// Reset removes the stored document.
func (g *Gateway) Reset() error {
	return g.backend.Delete(g.key)
}

func decodeTabs(data []byte) ([]inventory.Tab, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, errors.New("decode tabs: document is not an array")
	}
	var tabs []inventory.Tab
	if err := json.Unmarshal(trimmed, &tabs); err != nil {
		return nil, fmt.Errorf("decode tabs: %w", err)
	}
	return inventory.Sanitize(tabs), nil
}
