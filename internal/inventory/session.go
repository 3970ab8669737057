package inventory

import (
	"github.com/atomicstack/barstock/internal/logging"
	"github.com/atomicstack/barstock/internal/logging/events"
)

// Gateway loads and saves the whole tab collection. Load never fails; Save
// is best effort and its error is only logged.
type Gateway interface {
	Load() []Tab
	Save(tabs []Tab) error
}

// Session owns the application state. Every mutation is applied to a copy,
// repaired, committed in one assignment and then persisted.
type Session struct {
	state   State
	gateway Gateway
}

// Open loads the persisted tabs, sanitizes them and repairs the selection,
// synthesizing the default tab when nothing usable was stored.
func Open(gateway Gateway) *Session {
	s := &Session{gateway: gateway}
	if gateway != nil {
		s.state.Tabs = Sanitize(gateway.Load())
	}
	synthesized := s.state.Repair()
	events.Inventory.Repaired(s.state.CurrentTabID, s.state.CurrentWellName, synthesized)
	if synthesized {
		s.persist()
	}
	return s
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() State {
	return s.state.Clone()
}

// CurrentTabID returns the selected tab id.
func (s *Session) CurrentTabID() string {
	return s.state.CurrentTabID
}

// CurrentWellName returns the selected well name.
func (s *Session) CurrentWellName() string {
	return s.state.CurrentWellName
}

// AdjustCurrent adds delta of rawName to the selected well.
func (s *Session) AdjustCurrent(rawName string, delta int) bool {
	return s.AddOrAdjustProduct(s.state.CurrentTabID, s.state.CurrentWellName, rawName, delta)
}

func (s *Session) AddOrAdjustProduct(tabID, wellName, rawName string, delta int) bool {
	changed, _ := s.apply("product.adjust", func(st *State) (bool, error) {
		return st.AddOrAdjustProduct(tabID, wellName, rawName, delta), nil
	})
	if changed {
		events.Inventory.ProductAdjusted(tabID, wellName, rawName, delta)
	}
	return changed
}

func (s *Session) RemoveProductAt(tabID, wellName string, index int) bool {
	changed, _ := s.apply("product.remove", func(st *State) (bool, error) {
		return st.RemoveProductAt(tabID, wellName, index), nil
	})
	if changed {
		events.Inventory.ProductRemoved(tabID, wellName, index)
	}
	return changed
}

func (s *Session) ClearWell(tabID, wellName string) bool {
	changed, _ := s.apply("well.clear", func(st *State) (bool, error) {
		return st.ClearWell(tabID, wellName), nil
	})
	if changed {
		events.Inventory.WellCleared(tabID, wellName)
	}
	return changed
}

func (s *Session) AddTab(name string) (string, error) {
	var id string
	_, err := s.apply("tab.add", func(st *State) (bool, error) {
		var err error
		id, err = st.AddTab(name)
		return id != "", err
	})
	if err != nil {
		return "", err
	}
	if id != "" {
		events.Inventory.TabAdded(id, s.state.Tab(id).Name)
	}
	return id, nil
}

func (s *Session) RemoveTab(id string) bool {
	changed, _ := s.apply("tab.remove", func(st *State) (bool, error) {
		return st.RemoveTab(id), nil
	})
	if changed {
		events.Inventory.TabRemoved(id)
	}
	return changed
}

func (s *Session) RenameTab(id, newName string) (bool, error) {
	changed, err := s.apply("tab.rename", func(st *State) (bool, error) {
		return st.RenameTab(id, newName)
	})
	if changed {
		events.Inventory.TabRenamed(id, newName)
	}
	return changed, err
}

func (s *Session) AddWell(tabID, name string) (bool, error) {
	changed, err := s.apply("well.add", func(st *State) (bool, error) {
		return st.AddWell(tabID, name)
	})
	if changed {
		events.Inventory.WellAdded(tabID, name)
	}
	return changed, err
}

func (s *Session) RemoveWell(tabID, name string) bool {
	changed, _ := s.apply("well.remove", func(st *State) (bool, error) {
		return st.RemoveWell(tabID, name), nil
	})
	if changed {
		events.Inventory.WellRemoved(tabID, name)
	}
	return changed
}

func (s *Session) RenameWell(tabID, oldName, newName string) (bool, error) {
	changed, err := s.apply("well.rename", func(st *State) (bool, error) {
		return st.RenameWell(tabID, oldName, newName)
	})
	if changed {
		events.Inventory.WellRenamed(tabID, oldName, newName)
	}
	return changed, err
}

// SelectTab switches tabs. Selection is not persisted.
func (s *Session) SelectTab(id string) bool {
	var ok bool
	s.apply("select.tab", func(st *State) (bool, error) {
		ok = st.SelectTab(id)
		return false, nil
	})
	if ok {
		events.Inventory.Selected(s.state.CurrentTabID, s.state.CurrentWellName)
	}
	return ok
}

// SelectWell switches wells within the current tab.
func (s *Session) SelectWell(name string) bool {
	var ok bool
	s.apply("select.well", func(st *State) (bool, error) {
		ok = st.SelectWell(name)
		return false, nil
	})
	if ok {
		events.Inventory.Selected(s.state.CurrentTabID, s.state.CurrentWellName)
	}
	return ok
}

func (s *Session) apply(op string, fn func(*State) (bool, error)) (bool, error) {
	next := s.state.Clone()
	changed, err := fn(&next)
	if err != nil {
		events.Inventory.Rejected(op, err)
		return false, err
	}
	if next.Repair() {
		changed = true
	}
	s.state = next
	if changed {
		s.persist()
	}
	return changed, nil
}

func (s *Session) persist() {
	if s.gateway == nil {
		return
	}
	if err := s.gateway.Save(CloneTabs(s.state.Tabs)); err != nil {
		logging.Error(err)
	}
}
