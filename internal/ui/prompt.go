package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/menu"
)

type promptResult struct {
	Cmd  tea.Cmd
	Info string
	Err  error
}

// withPrompt centralises the common prompt flow: settle the pending menu
// action, reset the status line and run the provided step.
func (m *Model) withPrompt(action func() promptResult) tea.Cmd {
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	m.forceClearInfo()
	m.errMsg = ""
	if action == nil {
		return nil
	}
	result := action()
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		return nil
	}
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	return result.Cmd
}

func (m *Model) handleNamePromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.NamePrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.startNameForm(prompt)
		return promptResult{}
	})
}

func (m *Model) handleConfirmPromptMsg(msg tea.Msg) tea.Cmd {
	prompt, ok := msg.(menu.ConfirmPrompt)
	if !ok {
		return nil
	}
	return m.withPrompt(func() promptResult {
		m.startConfirm(prompt)
		return promptResult{}
	})
}

func (m *Model) startConfirm(prompt menu.ConfirmPrompt) {
	p := prompt
	m.confirm = &p
	m.returnMode = m.mode
	m.nameInput.Blur()
	m.setMode(ModeConfirm)
}

// handleConfirm answers the pending yes/no question. Only key presses are
// consumed; other messages fall through to their handlers.
func (m *Model) handleConfirm(msg tea.Msg) (bool, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.confirm == nil {
		return false, nil
	}
	if keyMsg.String() == "ctrl+c" {
		return true, tea.Quit
	}
	switch {
	case key.Matches(keyMsg, m.keys.Yes):
		req := m.confirm.Request
		m.finishConfirm()
		return true, func() tea.Msg { return req }
	case key.Matches(keyMsg, m.keys.No):
		m.finishConfirm()
		m.setInfo("Cancelled")
		return true, nil
	}
	return true, nil
}

func (m *Model) finishConfirm() {
	m.confirm = nil
	m.setMode(m.returnMode)
	if m.mode == ModeInventory {
		m.nameInput.Focus()
	}
}
