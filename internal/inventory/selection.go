package inventory

// SelectTab makes id the current tab and selects its first well. Unknown ids
// are ignored.
func (s *State) SelectTab(id string) bool {
	tab := s.Tab(id)
	if tab == nil {
		return false
	}
	s.CurrentTabID = id
	s.CurrentWellName = tab.FirstWellName()
	return true
}

// SelectWell selects a well of the current tab.
func (s *State) SelectWell(name string) bool {
	if s.CurrentTab().Well(name) == nil {
		return false
	}
	s.CurrentWellName = name
	return true
}

// Repair restores the structural invariants after a mutation:
//   - an empty tab list gets the default tab with one default well, selected;
//   - a missing or dangling current tab falls back to the first tab;
//   - a current well that does not exist in the current tab falls back to the
//     tab's first well, or "" when it has none.
//
// It reports whether the tab tree itself changed (only when the default tab
// was synthesized).
func (s *State) Repair() bool {
	synthesized := false
	if len(s.Tabs) == 0 {
		tab := Tab{
			ID:    newID(),
			Name:  DefaultTabName,
			Wells: []Well{{Name: DefaultWellName, Products: []ProductEntry{}}},
		}
		s.Tabs = []Tab{tab}
		s.CurrentTabID = tab.ID
		s.CurrentWellName = DefaultWellName
		synthesized = true
	}
	tab := s.CurrentTab()
	if tab == nil {
		tab = &s.Tabs[0]
		s.CurrentTabID = tab.ID
		s.CurrentWellName = tab.FirstWellName()
	}
	if tab.Well(s.CurrentWellName) == nil {
		s.CurrentWellName = tab.FirstWellName()
	}
	return synthesized
}
