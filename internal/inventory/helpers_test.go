package inventory

import (
	"errors"
	"fmt"
	"testing"
)

// stubIDs makes newID deterministic for the duration of a test.
func stubIDs(t *testing.T) {
	t.Helper()
	prev := newID
	n := 0
	newID = func() string {
		n++
		return fmt.Sprintf("tab-%d", n)
	}
	t.Cleanup(func() { newID = prev })
}

type fakeGateway struct {
	tabs    []Tab
	saves   [][]Tab
	saveErr error
}

func (g *fakeGateway) Load() []Tab {
	return CloneTabs(g.tabs)
}

func (g *fakeGateway) Save(tabs []Tab) error {
	g.saves = append(g.saves, tabs)
	if g.saveErr != nil {
		return g.saveErr
	}
	g.tabs = CloneTabs(tabs)
	return nil
}

var errQuota = errors.New("quota exceeded")

func barState() State {
	return State{
		Tabs: []Tab{
			{ID: "a", Name: "Main Bar", Wells: []Well{
				{Name: "Well 1", Products: []ProductEntry{{Name: "Vodka", Quantity: 5}, {Name: "Gin", Quantity: 2}}},
				{Name: "Well 2", Products: []ProductEntry{}},
			}},
			{ID: "b", Name: "Patio", Wells: []Well{}},
		},
		CurrentTabID:    "a",
		CurrentWellName: "Well 1",
	}
}
