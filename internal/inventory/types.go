// Package inventory holds the tab → well → product tree and every mutation
// that may be applied to it. Mutations are plain methods on State; Session
// wraps a State with copy-on-write commits, selection repair and
// persistence.
package inventory

import "strings"

const (
	// DefaultTabName is the tab synthesized when no tabs exist.
	DefaultTabName = "Main Bar"
	// DefaultWellName is the single well placed in the synthesized tab.
	DefaultWellName = "Well 1"
)

// ProductEntry is a quantity of one product inside a well.
type ProductEntry struct {
	Name     string `json:"name" yaml:"name"`
	Quantity int    `json:"quantity" yaml:"quantity"`
}

// Well is a named station inside a tab.
type Well struct {
	Name     string         `json:"name" yaml:"name"`
	Products []ProductEntry `json:"products" yaml:"products"`
}

// Tab is a physical bar location.
type Tab struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Wells []Well `json:"wells" yaml:"wells"`
}

// State is the complete application state. CurrentTabID is empty when no tab
// is selected.
type State struct {
	Tabs            []Tab
	CurrentTabID    string
	CurrentWellName string
}

// NormalizeKey strips all whitespace from name and lowercases the rest. Two
// product names with the same key refer to the same product.
func NormalizeKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// Tab returns the tab with the given id, or nil.
func (s *State) Tab(id string) *Tab {
	if id == "" {
		return nil
	}
	for i := range s.Tabs {
		if s.Tabs[i].ID == id {
			return &s.Tabs[i]
		}
	}
	return nil
}

// TabByName returns the tab whose name matches exactly, or nil.
func (s *State) TabByName(name string) *Tab {
	for i := range s.Tabs {
		if s.Tabs[i].Name == name {
			return &s.Tabs[i]
		}
	}
	return nil
}

// CurrentTab returns the selected tab, or nil.
func (s *State) CurrentTab() *Tab {
	return s.Tab(s.CurrentTabID)
}

// CurrentWell returns the selected well of the selected tab, or nil.
func (s *State) CurrentWell() *Well {
	tab := s.CurrentTab()
	if tab == nil || s.CurrentWellName == "" {
		return nil
	}
	return tab.Well(s.CurrentWellName)
}

// Well returns the well with the given name, or nil.
func (t *Tab) Well(name string) *Well {
	if t == nil {
		return nil
	}
	for i := range t.Wells {
		if t.Wells[i].Name == name {
			return &t.Wells[i]
		}
	}
	return nil
}

func (t *Tab) wellIndex(name string) int {
	for i := range t.Wells {
		if t.Wells[i].Name == name {
			return i
		}
	}
	return -1
}

// FirstWellName returns the name of the first well, or "" when the tab has
// none.
func (t *Tab) FirstWellName() string {
	if t == nil || len(t.Wells) == 0 {
		return ""
	}
	return t.Wells[0].Name
}

// ProductNames lists every product name in the tab, well by well, in stored
// order. Duplicates across wells are kept.
func (t *Tab) ProductNames() []string {
	if t == nil {
		return nil
	}
	var names []string
	for _, well := range t.Wells {
		for _, p := range well.Products {
			names = append(names, p.Name)
		}
	}
	return names
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	return State{
		Tabs:            CloneTabs(s.Tabs),
		CurrentTabID:    s.CurrentTabID,
		CurrentWellName: s.CurrentWellName,
	}
}

// CloneTabs deep-copies a tab collection. Nil slices stay nil.
func CloneTabs(tabs []Tab) []Tab {
	if tabs == nil {
		return nil
	}
	dup := make([]Tab, len(tabs))
	for i, tab := range tabs {
		dup[i] = Tab{ID: tab.ID, Name: tab.Name}
		if tab.Wells != nil {
			dup[i].Wells = make([]Well, len(tab.Wells))
			for j, well := range tab.Wells {
				dup[i].Wells[j] = Well{Name: well.Name}
				if well.Products != nil {
					dup[i].Wells[j].Products = append([]ProductEntry{}, well.Products...)
				}
			}
		}
	}
	return dup
}
