package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/logging/events"
	"github.com/atomicstack/barstock/internal/menu"
	"github.com/atomicstack/barstock/internal/ui/command"
)

// openConfig shows the tabs & wells menu on top of the inventory screen.
func (m *Model) openConfig() tea.Cmd {
	root := newLevel(menu.RootID, defaultRootTitle, menu.RootItems(), m.registry.Root())
	m.stack = []*level{root}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.errMsg = ""
	m.nameInput.Blur()
	m.setMode(ModeConfig)
	m.syncViewport(root)
	return m.filterCursor.Focus()
}

// closeConfig drops the menu stack and returns to product entry.
func (m *Model) closeConfig() {
	m.stack = nil
	m.filterCursor.Blur()
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.setMode(ModeInventory)
	m.nameInput.Focus()
	m.refreshProducts()
	m.refreshSuggestions()
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	if m.handleTextInput(msg) {
		return nil
	}
	switch msg.String() {
	case "esc":
		return m.handleEscapeKey()
	case "enter":
		return m.handleEnterKey()
	case "up":
		m.moveCursor(-1)
	case "down":
		m.moveCursor(1)
	case "pgup":
		m.moveCursorPage(-1)
	case "pgdown":
		m.moveCursorPage(1)
	case "home":
		m.moveCursorEdge(false)
	case "end":
		m.moveCursorEdge(true)
	}
	return nil
}

func (m *Model) handleEscapeKey() tea.Cmd {
	current := m.currentLevel()
	if current == nil || len(m.stack) <= 1 {
		m.closeConfig()
		return nil
	}
	parent := m.stack[len(m.stack)-2]
	m.stack = m.stack[:len(m.stack)-1]
	m.loading = false
	m.pendingID = ""
	if parent.LastCursor >= 0 && parent.LastCursor < len(parent.Items) {
		parent.Cursor = parent.LastCursor
	} else if idx := parent.IndexOf(current.ID); idx >= 0 {
		parent.Cursor = idx
	}
	parent.LastCursor = -1
	m.syncViewport(parent)
	m.errMsg = ""
	m.forceClearInfo()
	return nil
}

func (m *Model) handleEnterKey() tea.Cmd {
	if m.loading {
		return nil
	}
	current := m.currentLevel()
	if current == nil {
		return nil
	}
	item, ok := current.Current()
	if !ok {
		return nil
	}
	ctx := m.menuContext()
	events.UI.MenuEnter(current.ID, item.ID, item.Label, current.Filter())
	before := current.Query.Pos()
	current.SetFilter("", 0)
	if before != current.Query.Pos() {
		m.filterCursorDirty = true
	}
	node := current.Node
	if node == nil {
		node, _ = m.registry.Find(current.ID)
	}
	if node == nil {
		return nil
	}
	if child, ok := node.Children[item.ID]; ok {
		if child.Loader != nil {
			current.LastCursor = current.Cursor
			m.beginPending(child.ID, item.Label)
			return m.loadMenuCmd(ctx, child.ID, item.Label, child.Loader)
		}
		if child.Action != nil {
			m.beginPending(child.ID, item.Label)
			return m.bus.Execute(ctx, command.Request{ID: child.ID, Label: item.Label, Handler: child.Action, Item: item})
		}
	}
	if node.Action != nil {
		m.beginPending(node.ID, item.Label)
		return m.bus.Execute(ctx, command.Request{ID: node.ID, Label: item.Label, Handler: node.Action, Item: item})
	}
	m.setInfo(fmt.Sprintf("Nothing to do for %s", item.Label))
	return nil
}

func (m *Model) beginPending(id, label string) {
	m.loading = true
	m.pendingID = id
	m.pendingLabel = label
	m.errMsg = ""
	m.forceClearInfo()
}

func (m *Model) moveCursor(delta int) {
	if current := m.currentLevel(); current != nil {
		if current.MoveCursor(delta, true) {
			events.UI.MenuCursor(current.ID, current.Cursor)
		}
		m.syncViewport(current)
	}
}

func (m *Model) moveCursorPage(direction int) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	moved := false
	if direction < 0 {
		moved = current.MoveCursorPageUp(m.maxVisibleItems())
	} else {
		moved = current.MoveCursorPageDown(m.maxVisibleItems())
	}
	if moved {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) moveCursorEdge(end bool) {
	current := m.currentLevel()
	if current == nil {
		return
	}
	moved := false
	if end {
		moved = current.MoveCursorEnd()
	} else {
		moved = current.MoveCursorHome()
	}
	if moved {
		events.UI.MenuCursor(current.ID, current.Cursor)
	}
	m.syncViewport(current)
}

func (m *Model) syncViewport(l *level) {
	if l == nil {
		return
	}
	if l == m.products {
		l.EnsureCursorVisible(m.maxVisibleProducts())
		return
	}
	l.EnsureCursorVisible(m.maxVisibleItems())
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if keyMsg.String() == "ctrl+c" {
		return tea.Quit
	}
	switch m.mode {
	case ModeConfig:
		return m.handleMenuKey(keyMsg)
	case ModeQuantity:
		return m.handleQuantityKey(keyMsg)
	case ModeInventory:
		return m.handleInventoryKey(keyMsg)
	}
	return nil
}

func (m *Model) handleCategoryLoadedMsg(msg tea.Msg) tea.Cmd {
	update, ok := msg.(categoryLoadedMsg)
	if !ok {
		return nil
	}
	if m.mode != ModeConfig || update.id != m.pendingID {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if update.err != nil {
		m.errMsg = update.err.Error()
		return nil
	}
	m.errMsg = ""
	node, _ := m.registry.Find(update.id)
	level := newLevel(update.id, update.title, update.items, node)
	m.syncViewport(level)
	m.stack = append(m.stack, level)
	if len(level.Items) == 0 {
		m.setInfo("No entries found.")
	} else if m.infoMsg != "" {
		m.clearInfo()
	}
	return nil
}

func (m *Model) currentLevel() *level {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}
