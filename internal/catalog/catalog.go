// Package catalog fetches the product name list that seeds suggestions. A
// catalog document is JSON with an "items" array of strings; anything else
// is rejected and leaves the catalog empty.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atomicstack/barstock/internal/logging"
	"github.com/atomicstack/barstock/internal/logging/events"
)

// ErrInvalidFormat is returned by Parse for documents without a string
// array under "items".
var ErrInvalidFormat = errors.New("catalog: items must be an array of strings")

// Source fetches a raw catalog document.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
	String() string
}

// Parse extracts the item names from a catalog document.
func Parse(data []byte) ([]string, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	raw, ok := doc["items"]
	if !ok {
		return nil, fmt.Errorf("%w: missing items", ErrInvalidFormat)
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if items == nil {
		return nil, fmt.Errorf("%w: items is null", ErrInvalidFormat)
	}
	return items, nil
}

// Load fetches and parses src. Failures are logged and yield nil so the
// suggestion index falls back to product names from the active tab.
func Load(ctx context.Context, src Source) []string {
	if src == nil {
		return nil
	}
	location := src.String()
	events.Catalog.Fetch(location)
	data, err := src.Fetch(ctx)
	if err != nil {
		logging.Error(fmt.Errorf("catalog %s: %w", location, err))
		events.Catalog.Failed(location, err)
		return nil
	}
	items, err := Parse(data)
	if err != nil {
		logging.Error(fmt.Errorf("catalog %s: %w", location, err))
		events.Catalog.Rejected(location, err.Error())
		return nil
	}
	events.Catalog.Loaded(location, len(items))
	return items
}
