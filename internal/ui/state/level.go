// Package state holds the cursor, filter and viewport bookkeeping for the
// list levels the UI renders: configuration menus and the product list.
package state

import "github.com/atomicstack/barstock/internal/menu"

// Level is one list on screen. Full keeps every entry; Items is the subset
// matching the current filter.
type Level struct {
	ID             string
	Title          string
	Items          []menu.Item
	Full           []menu.Item
	Query          Query
	Cursor         int
	LastCursor     int
	Data           interface{}
	Node           *menu.Node
	ViewportOffset int
}

// NewLevel builds a level over items with the cursor on the first entry.
func NewLevel(id, title string, items []menu.Item, node *menu.Node) *Level {
	l := &Level{
		ID:         id,
		Title:      title,
		LastCursor: -1,
		Node:       node,
	}
	l.UpdateItems(items)
	return l
}

// Filter returns the raw filter text.
func (l *Level) Filter() string {
	return l.Query.Text
}

// Current returns the entry under the cursor.
func (l *Level) Current() (menu.Item, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Item{}, false
	}
	return l.Items[l.Cursor], true
}

// IndexOf returns the position of id among the visible items, or -1.
func (l *Level) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range l.Items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// UpdateItems replaces the entries, keeping the filter, cursor and viewport
// where they still make sense.
func (l *Level) UpdateItems(items []menu.Item) {
	l.Full = CloneItems(items)
	l.applyFilter()
	if l.ViewportOffset < 0 || l.ViewportOffset > len(l.Items)-1 {
		l.ViewportOffset = 0
	}
}
