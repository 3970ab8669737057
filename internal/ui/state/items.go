package state

import "github.com/atomicstack/barstock/internal/menu"

// CloneItems produces a shallow copy of the provided menu items.
func CloneItems(items []menu.Item) []menu.Item {
	if items == nil {
		return nil
	}
	dup := make([]menu.Item, len(items))
	copy(dup, items)
	return dup
}
