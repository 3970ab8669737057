package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/menu"
)

func (m *Model) startNameForm(prompt menu.NamePrompt) {
	m.nameForm = menu.NewNameForm(prompt)
	m.nameForm.SetCursorMode(m.cursorMode)
	m.returnMode = m.mode
	m.setMode(ModeNameForm)
}

// handleNameForm routes key presses to the open name form. Other messages
// with a registered handler are left to it.
func (m *Model) handleNameForm(msg tea.Msg) (bool, tea.Cmd) {
	if m.nameForm == nil {
		return false, nil
	}
	keyMsg, isKey := msg.(tea.KeyMsg)
	if !isKey && m.handlerFor(msg) != nil {
		return false, nil
	}
	if isKey && keyMsg.String() == "ctrl+c" {
		return true, tea.Quit
	}
	cmd, done, cancel := m.nameForm.Update(msg)
	if cancel {
		m.nameForm = nil
		m.setMode(m.returnMode)
		return true, cmd
	}
	if done {
		op := m.nameForm.Op()
		value := m.nameForm.Value()
		m.nameForm = nil
		m.setMode(m.returnMode)
		m.beginPending(string(op), value)
		return true, cmd
	}
	return true, cmd
}

func (m *Model) viewNameForm(header string) string {
	lines := []string{}
	if header != "" {
		lines = append(lines, styles.Header.Render(header))
	}
	lines = append(lines, m.nameForm.Title(), "", m.nameForm.InputView())
	if err := m.nameForm.Error(); err != "" {
		lines = append(lines, "", styles.Error.Render(err))
	}
	lines = append(lines, "", m.nameForm.Help())
	return strings.Join(lines, "\n")
}
