package inventory

import (
	"strings"

	"github.com/google/uuid"
)

// newID is swapped in tests for deterministic ids.
var newID = uuid.NewString

// AddTab appends an empty tab named name (trimmed) and selects it. It returns
// the new id, or "" when name is blank.
func (s *State) AddTab(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", nil
	}
	if s.TabByName(trimmed) != nil {
		return "", &DuplicateNameError{Kind: KindTab, Name: trimmed}
	}
	tab := Tab{ID: newID(), Name: trimmed, Wells: []Well{}}
	s.Tabs = append(s.Tabs, tab)
	s.CurrentTabID = tab.ID
	s.CurrentWellName = ""
	return tab.ID, nil
}

// RemoveTab deletes the tab. Removing the selected tab moves the selection to
// the first remaining tab and its first well, or clears it.
func (s *State) RemoveTab(id string) bool {
	idx := -1
	for i := range s.Tabs {
		if s.Tabs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	tabs := make([]Tab, 0, len(s.Tabs)-1)
	tabs = append(tabs, s.Tabs[:idx]...)
	s.Tabs = append(tabs, s.Tabs[idx+1:]...)
	if id != s.CurrentTabID {
		return true
	}
	if len(s.Tabs) == 0 {
		s.CurrentTabID = ""
		s.CurrentWellName = ""
		return true
	}
	s.CurrentTabID = s.Tabs[0].ID
	s.CurrentWellName = s.Tabs[0].FirstWellName()
	return true
}

// RenameTab renames the tab in place. Selection is by id and is unaffected.
func (s *State) RenameTab(id, newName string) (bool, error) {
	trimmed := strings.TrimSpace(newName)
	if trimmed == "" {
		return false, nil
	}
	tab := s.Tab(id)
	if tab == nil {
		return false, nil
	}
	if other := s.TabByName(trimmed); other != nil && other.ID != id {
		return false, &DuplicateNameError{Kind: KindTab, Name: trimmed}
	}
	if tab.Name == trimmed {
		return false, nil
	}
	tab.Name = trimmed
	return true, nil
}
