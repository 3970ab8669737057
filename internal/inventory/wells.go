package inventory

import "strings"

// AddWell appends an empty well to the tab.
func (s *State) AddWell(tabID, name string) (bool, error) {
	trimmed := strings.TrimSpace(name)
	tab := s.Tab(tabID)
	if trimmed == "" || tab == nil {
		return false, nil
	}
	if tab.Well(trimmed) != nil {
		return false, &DuplicateNameError{Kind: KindWell, Name: trimmed}
	}
	tab.Wells = append(tab.Wells, Well{Name: trimmed, Products: []ProductEntry{}})
	return true, nil
}

// RemoveWell deletes the well. If it was the selected well the selection moves
// to the first remaining well of the tab, or "".
func (s *State) RemoveWell(tabID, name string) bool {
	tab := s.Tab(tabID)
	if tab == nil {
		return false
	}
	idx := tab.wellIndex(name)
	if idx < 0 {
		return false
	}
	wells := make([]Well, 0, len(tab.Wells)-1)
	wells = append(wells, tab.Wells[:idx]...)
	tab.Wells = append(wells, tab.Wells[idx+1:]...)
	if tabID == s.CurrentTabID && name == s.CurrentWellName {
		s.CurrentWellName = tab.FirstWellName()
	}
	return true
}

// RenameWell renames oldName to newName (trimmed). Renaming a well to its own
// name is allowed and changes nothing. The selection follows the rename.
func (s *State) RenameWell(tabID, oldName, newName string) (bool, error) {
	trimmed := strings.TrimSpace(newName)
	tab := s.Tab(tabID)
	if trimmed == "" || tab == nil {
		return false, nil
	}
	well := tab.Well(oldName)
	if well == nil {
		return false, nil
	}
	if trimmed == oldName {
		return false, nil
	}
	if tab.Well(trimmed) != nil {
		return false, &DuplicateNameError{Kind: KindWell, Name: trimmed}
	}
	well.Name = trimmed
	if tabID == s.CurrentTabID && oldName == s.CurrentWellName {
		s.CurrentWellName = trimmed
	}
	return true, nil
}
