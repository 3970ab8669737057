package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/inventory"
	"github.com/atomicstack/barstock/internal/logging/events"
	"github.com/atomicstack/barstock/internal/menu"
	"github.com/atomicstack/barstock/internal/suggest"
)

func (m *Model) handleInventoryKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Back):
		if m.nameInput.Value() != "" {
			m.resetEntry()
			return nil
		}
		return tea.Quit
	case key.Matches(msg, k.Up):
		if len(m.suggestions.Items) > 0 {
			m.suggestions.Up()
			return nil
		}
		m.moveProductCursor(-1)
	case key.Matches(msg, k.Down):
		if len(m.suggestions.Items) > 0 {
			m.suggestions.Down()
			return nil
		}
		m.moveProductCursor(1)
	case key.Matches(msg, k.PageUp):
		m.products.MoveCursorPageUp(m.maxVisibleProducts())
		m.syncViewport(m.products)
	case key.Matches(msg, k.PageDown):
		m.products.MoveCursorPageDown(m.maxVisibleProducts())
		m.syncViewport(m.products)
	case key.Matches(msg, k.Accept):
		return m.acceptName()
	case key.Matches(msg, k.ToggleSign):
		m.toggleSign()
	case key.Matches(msg, k.NextWell):
		m.cycleWell(1)
	case key.Matches(msg, k.PrevWell):
		m.cycleWell(-1)
	case key.Matches(msg, k.NextTab):
		m.cycleTab(1)
	case key.Matches(msg, k.PrevTab):
		m.cycleTab(-1)
	case key.Matches(msg, k.Remove):
		m.removeProductAtCursor()
	case key.Matches(msg, k.ClearWell):
		m.promptClearWell()
	case key.Matches(msg, k.Copy):
		m.copyWell()
	case key.Matches(msg, k.Configure):
		return m.openConfig()
	default:
		before := m.nameInput.Value()
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		if m.nameInput.Value() != before {
			m.errMsg = ""
			m.refreshSuggestions()
		}
		return cmd
	}
	return nil
}

func (m *Model) handleQuantityKey(msg tea.KeyMsg) tea.Cmd {
	k := m.keys
	switch {
	case key.Matches(msg, k.Back):
		m.cancelQuantity()
		return nil
	case key.Matches(msg, k.ToggleSign):
		m.toggleSign()
		return nil
	case key.Matches(msg, k.Accept):
		m.submitQuantity()
		return nil
	}
	if msg.Type == tea.KeyRunes && !digitsOnly(msg.Runes) {
		return nil
	}
	if msg.Type == tea.KeySpace {
		return nil
	}
	var cmd tea.Cmd
	m.qtyInput, cmd = m.qtyInput.Update(msg)
	m.errMsg = ""
	return cmd
}

// acceptName moves on to the quantity step, taking the highlighted
// suggestion in place of the typed text when there is one.
func (m *Model) acceptName() tea.Cmd {
	name := strings.TrimSpace(m.nameInput.Value())
	if picked, ok := m.suggestions.Selected(); ok {
		name = picked
		m.nameInput.SetValue(picked)
		m.nameInput.CursorEnd()
	}
	if name == "" {
		return nil
	}
	snap := m.session.Snapshot()
	if snap.CurrentWell() == nil {
		m.errMsg = "This tab has no wells yet. Press ctrl+o to add one."
		return nil
	}
	m.pendingName = name
	m.suggestions.Reset(nil)
	m.errMsg = ""
	m.nameInput.Blur()
	m.qtyInput.Reset()
	m.setMode(ModeQuantity)
	return m.qtyInput.Focus()
}

func (m *Model) submitQuantity() {
	qty, err := strconv.Atoi(strings.TrimSpace(m.qtyInput.Value()))
	if err != nil || qty <= 0 {
		m.errMsg = "Quantity must be a whole number above zero"
		return
	}
	name := m.pendingName
	well := m.session.CurrentWellName()
	delta := qty * m.sign
	if m.session.AdjustCurrent(name, delta) {
		m.setInfo(fmt.Sprintf("%s %s%d in %s", name, signText(m.sign), qty, well))
	} else {
		m.setInfo(fmt.Sprintf("%s is not in %s", name, well))
	}
	m.refreshProducts()
	m.focusProduct(name)
	m.resetEntry()
}

// cancelQuantity returns to the name step keeping the typed name.
func (m *Model) cancelQuantity() {
	m.pendingName = ""
	m.sign = 1
	m.qtyInput.Blur()
	m.qtyInput.Reset()
	m.errMsg = ""
	m.setMode(ModeInventory)
	m.nameInput.Focus()
	m.refreshSuggestions()
}

// resetEntry clears the name and quantity inputs and resets the sign to +.
func (m *Model) resetEntry() {
	m.pendingName = ""
	m.sign = 1
	m.nameInput.Reset()
	m.qtyInput.Blur()
	m.qtyInput.Reset()
	m.suggestions.Reset(nil)
	m.setMode(ModeInventory)
	m.nameInput.Focus()
}

func (m *Model) toggleSign() {
	m.sign = -m.sign
}

func (m *Model) refreshSuggestions() {
	query := m.nameInput.Value()
	if strings.TrimSpace(query) == "" {
		m.suggestions.Reset(nil)
		return
	}
	snap := m.session.Snapshot()
	items := suggest.Suggest(query, m.catalogItems, suggest.ActiveNames(snap.CurrentTab()))
	m.suggestions.Reset(items)
	events.UI.Suggest(query, len(items))
}

// refreshProducts rebuilds the product list from the session. The cursor is
// kept while the same well stays selected.
func (m *Model) refreshProducts() {
	snap := m.session.Snapshot()
	key := snap.CurrentTabID + "\x00" + snap.CurrentWellName
	var products []inventory.ProductEntry
	if well := snap.CurrentWell(); well != nil {
		products = well.Products
	}
	items := make([]menu.Item, len(products))
	for i, p := range products {
		items[i] = menu.Item{ID: strconv.Itoa(i), Label: p.Name}
	}
	if m.products == nil || m.productsKey != key {
		m.products = newLevel("products", snap.CurrentWellName, items, nil)
		m.productsKey = key
	} else {
		m.products.UpdateItems(items)
	}
	m.products.Data = products
	m.syncViewport(m.products)
}

func (m *Model) productEntries() []inventory.ProductEntry {
	if m.products == nil {
		return nil
	}
	entries, _ := m.products.Data.([]inventory.ProductEntry)
	return entries
}

func (m *Model) focusProduct(name string) {
	want := inventory.NormalizeKey(name)
	for i, item := range m.products.Items {
		if inventory.NormalizeKey(item.Label) == want {
			m.products.Cursor = i
			m.syncViewport(m.products)
			return
		}
	}
}

func (m *Model) moveProductCursor(delta int) {
	if m.products.MoveCursor(delta, true) {
		events.UI.MenuCursor(m.products.ID, m.products.Cursor)
	}
	m.syncViewport(m.products)
}

func (m *Model) cycleWell(delta int) {
	snap := m.session.Snapshot()
	tab := snap.CurrentTab()
	if tab == nil || len(tab.Wells) == 0 {
		return
	}
	next := cycleIndex(wellIndex(tab, snap.CurrentWellName), delta, len(tab.Wells))
	if m.session.SelectWell(tab.Wells[next].Name) {
		m.errMsg = ""
		m.refreshProducts()
	}
}

func (m *Model) cycleTab(delta int) {
	snap := m.session.Snapshot()
	if len(snap.Tabs) == 0 {
		return
	}
	current := -1
	for i, tab := range snap.Tabs {
		if tab.ID == snap.CurrentTabID {
			current = i
			break
		}
	}
	next := cycleIndex(current, delta, len(snap.Tabs))
	if m.session.SelectTab(snap.Tabs[next].ID) {
		m.errMsg = ""
		m.refreshProducts()
		m.refreshSuggestions()
	}
}

func (m *Model) removeProductAtCursor() {
	item, ok := m.products.Current()
	if !ok {
		return
	}
	idx := m.products.Cursor
	if m.session.RemoveProductAt(m.session.CurrentTabID(), m.session.CurrentWellName(), idx) {
		m.setInfo(fmt.Sprintf("Removed %s", item.Label))
		m.refreshProducts()
		m.refreshSuggestions()
	}
}

func (m *Model) promptClearWell() {
	snap := m.session.Snapshot()
	well := snap.CurrentWell()
	if well == nil {
		m.errMsg = "No well selected"
		return
	}
	if len(well.Products) == 0 {
		m.setInfo(fmt.Sprintf("%s is already empty", well.Name))
		return
	}
	m.startConfirm(menu.ClearWellPrompt(snap.CurrentTabID, well.Name))
}

func (m *Model) copyWell() {
	lines := wellLines(m.productEntries())
	if len(lines) == 0 {
		m.setInfo("Nothing to copy")
		return
	}
	err := m.clipboard(strings.Join(lines, "\n"))
	events.UI.Copy(len(lines), err)
	if err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", err)
		return
	}
	m.setInfo(fmt.Sprintf("Copied %d products", len(lines)))
}

// wellLines renders products as "quantity × name" lines.
func wellLines(products []inventory.ProductEntry) []string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%d × %s", p.Quantity, p.Name))
	}
	return lines
}

func wellIndex(tab *inventory.Tab, name string) int {
	for i, well := range tab.Wells {
		if well.Name == name {
			return i
		}
	}
	return -1
}

func cycleIndex(current, delta, n int) int {
	if current < 0 {
		return 0
	}
	return ((current+delta)%n + n) % n
}

func signText(sign int) string {
	if sign < 0 {
		return "-"
	}
	return "+"
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(runes) > 0
}
