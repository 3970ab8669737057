package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/atomicstack/barstock/internal/logging/events"
	uistate "github.com/atomicstack/barstock/internal/ui/state"
)

func (m *Model) updateFilterCursorModel(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.filterCursor, cmd = m.filterCursor.Update(msg)
	return cmd
}

// editFilter applies op to the level's filter, tracing through trace when it
// changed something.
func (m *Model) editFilter(l *level, op func(*uistate.Query) bool, trace func(*level)) bool {
	before := l.Query.Pos()
	text := l.Filter()
	if !l.EditFilter(op) {
		return false
	}
	if before != l.Query.Pos() {
		m.filterCursorDirty = true
	}
	if text != l.Filter() {
		m.forceClearInfo()
		m.errMsg = ""
		m.syncViewport(l)
	}
	trace(l)
	return true
}

func traceCleared(l *level)       { events.Filter.Cleared(l.ID) }
func traceWordBackspace(l *level) { events.Filter.WordBackspace(l.ID, l.Filter()) }
func traceCursor(l *level)        { events.Filter.Cursor(l.ID, l.Query.Pos()) }
func traceCursorWord(l *level)    { events.Filter.CursorWord(l.ID, l.Query.Pos()) }
func traceAppend(l *level)        { events.Filter.Append(l.ID, l.Filter()) }
func traceBackspace(l *level)     { events.Filter.Backspace(l.ID, l.Filter()) }

// handleTextInput edits the filter of the current menu level. It reports
// whether the key was consumed.
func (m *Model) handleTextInput(msg tea.KeyMsg) bool {
	if m.loading {
		return false
	}
	current := m.currentLevel()
	if current == nil {
		return false
	}
	switch msg.String() {
	case "ctrl+u":
		return m.editFilter(current, (*uistate.Query).Clear, traceCleared)
	case "ctrl+w":
		return m.editFilter(current, (*uistate.Query).DeleteWordBackward, traceWordBackspace)
	case "ctrl+a":
		return m.editFilter(current, (*uistate.Query).Home, traceCursor)
	case "ctrl+e":
		return m.editFilter(current, (*uistate.Query).End, traceCursor)
	case "alt+b":
		return m.editFilter(current, (*uistate.Query).WordLeft, traceCursorWord)
	case "alt+f":
		return m.editFilter(current, (*uistate.Query).WordRight, traceCursorWord)
	}
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		return m.editFilter(current, (*uistate.Query).DeleteBackward, traceBackspace)
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return false
		}
		for _, r := range msg.Runes {
			if unicode.IsControl(r) || unicode.IsSpace(r) {
				return false
			}
		}
		text := string(msg.Runes)
		return m.editFilter(current, func(q *uistate.Query) bool { return q.Insert(text) }, traceAppend)
	case tea.KeySpace:
		return m.editFilter(current, func(q *uistate.Query) bool { return q.Insert(" ") }, traceAppend)
	case tea.KeyLeft:
		return m.editFilter(current, (*uistate.Query).Left, traceCursor)
	case tea.KeyRight:
		return m.editFilter(current, (*uistate.Query).Right, traceCursor)
	}
	return false
}

func (m *Model) filterPrompt() string {
	current := m.currentLevel()
	if current == nil {
		return ""
	}
	render := func(style *lipgloss.Style, value string) string {
		if style == nil || value == "" {
			return value
		}
		return style.Render(value)
	}
	if styles.Cursor != nil {
		m.filterCursor.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		m.filterCursor.TextStyle = styles.Filter.Copy()
	} else {
		m.filterCursor.TextStyle = lipgloss.Style{}
	}
	prompt := render(styles.FilterPrompt, "» ")
	runes := []rune(current.Filter())
	if len(runes) == 0 {
		placeholder := []rune("(type to filter)")
		if styles.FilterPlaceholder != nil {
			m.filterCursor.TextStyle = styles.FilterPlaceholder.Copy()
		}
		caret := m.renderFilterCursor(string(placeholder[0]))
		return prompt + caret + render(styles.FilterPlaceholder, string(placeholder[1:]))
	}
	pos := current.Query.Pos()
	before := render(styles.Filter, string(runes[:pos]))
	caretRune, after := " ", ""
	if pos < len(runes) {
		caretRune = string(runes[pos])
		after = render(styles.Filter, string(runes[pos+1:]))
	}
	return prompt + before + m.renderFilterCursor(caretRune) + after
}

func (m *Model) renderFilterCursor(char string) string {
	if char == "" {
		char = " "
	}
	m.filterCursor.SetChar(char)
	base := m.filterCursor.TextStyle.Copy().Inline(true)
	if m.filterCursor.Blink {
		return base.Render(char)
	}
	if styles.Cursor != nil {
		return base.Inherit(styles.Cursor.Copy().Inline(true)).Blink(false).Render(char)
	}
	return base.Reverse(true).Render(char)
}
