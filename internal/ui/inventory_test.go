package ui

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/inventory"
)

func newTestHarness(t *testing.T, session *inventory.Session) *Harness {
	t.Helper()
	if session == nil {
		session = inventory.Open(nil)
	}
	model := NewModel(session, Options{Clipboard: func(string) error { return nil }})
	return NewHarness(model)
}

func currentProducts(h *Harness) []inventory.ProductEntry {
	snap := h.Model().Session().Snapshot()
	well := snap.CurrentWell()
	if well == nil {
		return nil
	}
	return well.Products
}

func enterProduct(h *Harness, name, qty string) {
	h.Type(name)
	h.Press(tea.KeyEnter)
	h.Type(qty)
	h.Press(tea.KeyEnter)
}

func TestEntryAddsProduct(t *testing.T) {
	h := newTestHarness(t, nil)

	h.Type("Vodka")
	h.Press(tea.KeyEnter)
	if got := h.Model().Mode(); got != ModeQuantity {
		t.Fatalf("expected quantity mode after accepting a name, got %s", got)
	}
	h.Type("2")
	h.Press(tea.KeyEnter)

	want := []inventory.ProductEntry{{Name: "Vodka", Quantity: 2}}
	if got := currentProducts(h); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	m := h.Model()
	if m.Mode() != ModeInventory {
		t.Fatalf("expected inventory mode after submit, got %s", m.Mode())
	}
	if m.nameInput.Value() != "" {
		t.Fatalf("expected name input reset, got %q", m.nameInput.Value())
	}
	if m.infoMsg != "Vodka +2 in Well 1" {
		t.Fatalf("unexpected info %q", m.infoMsg)
	}
}

func TestEntryMergesNormalizedNames(t *testing.T) {
	h := newTestHarness(t, nil)

	enterProduct(h, "Grey Goose", "2")
	enterProduct(h, "greygoose", "3")

	want := []inventory.ProductEntry{{Name: "Grey Goose", Quantity: 5}}
	if got := currentProducts(h); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestSubtractRemovesProductAtZero(t *testing.T) {
	session := inventory.Open(nil)
	session.AdjustCurrent("Vodka", 5)
	h := newTestHarness(t, session)

	h.Type("vodka")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyCtrlT)
	h.Type("2")
	h.Press(tea.KeyEnter)

	want := []inventory.ProductEntry{{Name: "Vodka", Quantity: 3}}
	if got := currentProducts(h); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	if h.Model().sign != 1 {
		t.Fatalf("expected sign reset to +, got %d", h.Model().sign)
	}

	h.Type("vodka")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyCtrlT)
	h.Type("3")
	h.Press(tea.KeyEnter)
	if got := currentProducts(h); len(got) != 0 {
		t.Fatalf("expected product removed, got %#v", got)
	}
}

func TestSubtractMissingProductReportsIt(t *testing.T) {
	h := newTestHarness(t, nil)

	h.Type("Gin")
	h.Press(tea.KeyCtrlT)
	h.Press(tea.KeyEnter)
	h.Type("1")
	h.Press(tea.KeyEnter)

	if got := currentProducts(h); len(got) != 0 {
		t.Fatalf("expected no products, got %#v", got)
	}
	if h.Model().infoMsg != "Gin is not in Well 1" {
		t.Fatalf("unexpected info %q", h.Model().infoMsg)
	}
}

func TestQuantityIgnoresNonASCIIDigits(t *testing.T) {
	h := newTestHarness(t, nil)

	h.Type("Gin")
	h.Press(tea.KeyEnter)
	h.Type("٣3")
	if got := h.Model().qtyInput.Value(); got != "3" {
		t.Fatalf("expected only ASCII digits to be accepted, got %q", got)
	}
}

func TestInvalidQuantityKeepsQuantityStep(t *testing.T) {
	h := newTestHarness(t, nil)

	h.Type("Gin")
	h.Press(tea.KeyEnter)
	h.Type("x")
	if got := h.Model().qtyInput.Value(); got != "" {
		t.Fatalf("expected letters to be ignored, got %q", got)
	}
	h.Press(tea.KeyEnter)

	m := h.Model()
	if m.Mode() != ModeQuantity {
		t.Fatalf("expected to stay in quantity mode, got %s", m.Mode())
	}
	if m.errMsg != "Quantity must be a whole number above zero" {
		t.Fatalf("unexpected error %q", m.errMsg)
	}
	h.Type("0")
	h.Press(tea.KeyEnter)
	if h.Model().Mode() != ModeQuantity {
		t.Fatalf("expected zero to be rejected")
	}
	if got := currentProducts(h); len(got) != 0 {
		t.Fatalf("expected no products, got %#v", got)
	}
}

func TestEscapeInQuantityKeepsName(t *testing.T) {
	h := newTestHarness(t, nil)

	h.Type("Gin")
	h.Press(tea.KeyEnter)
	h.Press(tea.KeyCtrlT)
	h.Press(tea.KeyEsc)

	m := h.Model()
	if m.Mode() != ModeInventory {
		t.Fatalf("expected inventory mode, got %s", m.Mode())
	}
	if m.nameInput.Value() != "Gin" {
		t.Fatalf("expected typed name kept, got %q", m.nameInput.Value())
	}
	if m.sign != 1 {
		t.Fatalf("expected sign reset, got %d", m.sign)
	}
}

func TestEscapeClearsNameThenQuits(t *testing.T) {
	h := newTestHarness(t, nil)

	h.Type("Gin")
	h.Press(tea.KeyEsc)
	if h.Quit() {
		t.Fatalf("expected first escape to clear the name only")
	}
	if got := h.Model().nameInput.Value(); got != "" {
		t.Fatalf("expected name cleared, got %q", got)
	}
	h.Press(tea.KeyEsc)
	if !h.Quit() {
		t.Fatalf("expected second escape to quit")
	}
}

func TestEntryWithoutWellsShowsError(t *testing.T) {
	session := inventory.Open(nil)
	if _, err := session.AddTab("Patio"); err != nil {
		t.Fatalf("add tab: %v", err)
	}
	h := newTestHarness(t, session)

	h.Type("Gin")
	h.Press(tea.KeyEnter)

	m := h.Model()
	if m.Mode() != ModeInventory {
		t.Fatalf("expected to stay in inventory mode, got %s", m.Mode())
	}
	if !strings.Contains(m.errMsg, "no wells") {
		t.Fatalf("expected no wells error, got %q", m.errMsg)
	}
	if view := h.View(); !strings.Contains(view, "No wells in this tab.") {
		t.Fatalf("expected empty tab hint in view, got:\n%s", view)
	}
}

func TestCatalogSuggestionsAreCycledAndPicked(t *testing.T) {
	h := newTestHarness(t, nil)
	h.Send(catalogLoadedMsg{source: "test", items: []string{"Vodka", "Vermouth", "Gin"}})

	h.Type("v")
	m := h.Model()
	if want := []string{"Vodka", "Vermouth"}; !reflect.DeepEqual(m.suggestions.Items, want) {
		t.Fatalf("expected suggestions %v, got %v", want, m.suggestions.Items)
	}
	if m.suggestions.Index != -1 {
		t.Fatalf("expected no highlighted suggestion, got %d", m.suggestions.Index)
	}

	h.Press(tea.KeyUp)
	if got := h.Model().suggestions.Index; got != 1 {
		t.Fatalf("expected up to wrap to the last suggestion, got %d", got)
	}
	h.Press(tea.KeyDown)
	if got := h.Model().suggestions.Index; got != 0 {
		t.Fatalf("expected down to wrap to the first suggestion, got %d", got)
	}
	h.Press(tea.KeyDown)
	if view := h.View(); !strings.Contains(view, "› Vermouth") {
		t.Fatalf("expected highlighted suggestion in view, got:\n%s", view)
	}

	h.Press(tea.KeyEnter)
	m = h.Model()
	if m.Mode() != ModeQuantity || m.pendingName != "Vermouth" {
		t.Fatalf("expected Vermouth picked, got mode %s name %q", m.Mode(), m.pendingName)
	}
	h.Type("1")
	h.Press(tea.KeyEnter)
	want := []inventory.ProductEntry{{Name: "Vermouth", Quantity: 1}}
	if got := currentProducts(h); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
}

func TestSuggestionsIncludeActiveTabProducts(t *testing.T) {
	session := inventory.Open(nil)
	session.AdjustCurrent("Campari", 1)
	h := newTestHarness(t, session)

	h.Type("camp")
	if got := h.Model().suggestions.Items; !reflect.DeepEqual(got, []string{"Campari"}) {
		t.Fatalf("expected Campari suggested, got %v", got)
	}
	h.Send(tea.KeyMsg{Type: tea.KeyCtrlU})
	if got := h.Model().suggestions.Items; len(got) != 0 {
		t.Fatalf("expected no suggestions for a blank query, got %v", got)
	}
}

func TestRemoveProductAtCursor(t *testing.T) {
	session := inventory.Open(nil)
	session.AdjustCurrent("Vodka", 1)
	session.AdjustCurrent("Gin", 2)
	h := newTestHarness(t, session)

	h.Press(tea.KeyDown)
	if got := h.Model().products.Cursor; got != 1 {
		t.Fatalf("expected cursor on Gin, got %d", got)
	}
	h.Press(tea.KeyCtrlX)

	want := []inventory.ProductEntry{{Name: "Vodka", Quantity: 1}}
	if got := currentProducts(h); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %#v, got %#v", want, got)
	}
	if h.Model().infoMsg != "Removed Gin" {
		t.Fatalf("unexpected info %q", h.Model().infoMsg)
	}
}

func TestProductCursorWraps(t *testing.T) {
	session := inventory.Open(nil)
	session.AdjustCurrent("Vodka", 1)
	session.AdjustCurrent("Gin", 2)
	h := newTestHarness(t, session)

	h.Press(tea.KeyUp)
	if got := h.Model().products.Cursor; got != 1 {
		t.Fatalf("expected cursor to wrap to the last product, got %d", got)
	}
}

func TestClearWellAsksForConfirmation(t *testing.T) {
	session := inventory.Open(nil)
	session.AdjustCurrent("Vodka", 1)
	h := newTestHarness(t, session)

	h.Press(tea.KeyCtrlL)
	if h.Model().Mode() != ModeConfirm {
		t.Fatalf("expected confirm mode, got %s", h.Model().Mode())
	}
	if view := h.View(); !strings.Contains(view, "Clear every product from Well 1? [y/n]") {
		t.Fatalf("expected confirmation in view, got:\n%s", view)
	}

	h.Type("n")
	if h.Model().Mode() != ModeInventory {
		t.Fatalf("expected inventory mode after cancelling, got %s", h.Model().Mode())
	}
	if len(currentProducts(h)) != 1 {
		t.Fatalf("expected products kept after cancelling")
	}

	h.Press(tea.KeyCtrlL)
	h.Type("y")
	if got := currentProducts(h); len(got) != 0 {
		t.Fatalf("expected well cleared, got %#v", got)
	}
	m := h.Model()
	if m.Mode() != ModeInventory {
		t.Fatalf("expected inventory mode, got %s", m.Mode())
	}
	if m.infoMsg != "Cleared Well 1" {
		t.Fatalf("unexpected info %q", m.infoMsg)
	}
}

func TestClearEmptyWellSkipsConfirmation(t *testing.T) {
	h := newTestHarness(t, nil)

	h.Press(tea.KeyCtrlL)
	if h.Model().Mode() != ModeInventory {
		t.Fatalf("expected no confirmation for an empty well")
	}
	if h.Model().infoMsg != "Well 1 is already empty" {
		t.Fatalf("unexpected info %q", h.Model().infoMsg)
	}
}

func TestCopyWellWritesClipboard(t *testing.T) {
	session := inventory.Open(nil)
	session.AdjustCurrent("Vodka", 2)
	session.AdjustCurrent("Gin", 1)
	var copied string
	model := NewModel(session, Options{Clipboard: func(text string) error {
		copied = text
		return nil
	}})
	h := NewHarness(model)

	h.Press(tea.KeyCtrlY)

	if copied != "2 × Vodka\n1 × Gin" {
		t.Fatalf("unexpected clipboard text %q", copied)
	}
	if h.Model().infoMsg != "Copied 2 products" {
		t.Fatalf("unexpected info %q", h.Model().infoMsg)
	}
}

func TestCopyWellReportsClipboardFailure(t *testing.T) {
	session := inventory.Open(nil)
	session.AdjustCurrent("Vodka", 2)
	model := NewModel(session, Options{Clipboard: func(string) error { return errors.New("no display") }})
	h := NewHarness(model)

	h.Press(tea.KeyCtrlY)

	if h.Model().errMsg != "Copy failed: no display" {
		t.Fatalf("unexpected error %q", h.Model().errMsg)
	}
}

func TestTabKeyCyclesWells(t *testing.T) {
	session := inventory.Open(nil)
	if _, err := session.AddWell(session.CurrentTabID(), "Well 2"); err != nil {
		t.Fatalf("add well: %v", err)
	}
	session.AdjustCurrent("Vodka", 1)
	h := newTestHarness(t, session)

	h.Press(tea.KeyTab)
	if got := h.Model().Session().CurrentWellName(); got != "Well 2" {
		t.Fatalf("expected Well 2, got %q", got)
	}
	if got := currentProducts(h); len(got) != 0 {
		t.Fatalf("expected Well 2 to be empty, got %#v", got)
	}
	h.Press(tea.KeyTab)
	if got := h.Model().Session().CurrentWellName(); got != "Well 1" {
		t.Fatalf("expected wrap to Well 1, got %q", got)
	}
	h.Press(tea.KeyShiftTab)
	if got := h.Model().Session().CurrentWellName(); got != "Well 2" {
		t.Fatalf("expected shift+tab to wrap to Well 2, got %q", got)
	}
}

func TestCtrlNCyclesTabs(t *testing.T) {
	session := inventory.Open(nil)
	first := session.CurrentTabID()
	patio, err := session.AddTab("Patio")
	if err != nil {
		t.Fatalf("add tab: %v", err)
	}
	session.SelectTab(first)
	h := newTestHarness(t, session)

	h.Press(tea.KeyCtrlN)
	if got := h.Model().Session().CurrentTabID(); got != patio {
		t.Fatalf("expected Patio selected, got %q", got)
	}
	h.Press(tea.KeyCtrlN)
	if got := h.Model().Session().CurrentTabID(); got != first {
		t.Fatalf("expected wrap to the first tab, got %q", got)
	}
}
