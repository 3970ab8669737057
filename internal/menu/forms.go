package menu

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/logging/events"
)

// NameForm collects a tab or well name. Names must be unique within their
// scope by exact match; the form reports collisions before submitting, and
// the inventory rejects any that slip through.
type NameForm struct {
	input    textinput.Model
	existing map[string]struct{}
	prompt   NamePrompt
	err      string
	title    string
	help     string
}

func NewNameForm(prompt NamePrompt) *NameForm {
	ti := textinput.New()
	ti.CharLimit = 64
	ti.Focus()
	title, help := "", "Press Enter to save. Esc to cancel."
	kind := "Tab"
	existing := map[string]struct{}{}
	switch prompt.Op {
	case OpAddTab, OpRenameTab:
		ti.Placeholder = "tab name"
		for _, tab := range prompt.Context.State.Tabs {
			if tab.ID != prompt.TabID {
				existing[tab.Name] = struct{}{}
			}
		}
	case OpAddWell, OpRenameWell:
		kind = "Well"
		ti.Placeholder = "well name"
		if tab := prompt.Context.State.Tab(prompt.TabID); tab != nil {
			for _, well := range tab.Wells {
				if well.Name != prompt.Target {
					existing[well.Name] = struct{}{}
				}
			}
		}
	}
	switch prompt.Op {
	case OpRenameTab, OpRenameWell:
		title = fmt.Sprintf("Rename %s", prompt.Target)
		help = "Press Enter to rename. Esc to cancel."
	default:
		title = fmt.Sprintf("New %s", kind)
		help = "Press Enter to create. Esc to cancel."
	}
	if prompt.Initial != "" {
		ti.SetValue(prompt.Initial)
	}
	form := &NameForm{
		input:    ti,
		existing: existing,
		prompt:   prompt,
		title:    title,
		help:     help,
	}
	form.err = form.validate()
	return form
}

func (f *NameForm) Value() string     { return strings.TrimSpace(f.input.Value()) }
func (f *NameForm) InputView() string { return f.input.View() }
func (f *NameForm) Error() string     { return f.err }
func (f *NameForm) Title() string     { return f.title }
func (f *NameForm) Help() string      { return f.help }
func (f *NameForm) Op() Op            { return f.prompt.Op }

// SetCursorMode sets how the input cursor is drawn.
func (f *NameForm) SetCursorMode(mode cursor.Mode) tea.Cmd {
	return f.input.Cursor.SetMode(mode)
}

// Update handles a message. It reports done once a request has been issued
// and cancel when the form should close without one.
func (f *NameForm) Update(msg tea.Msg) (tea.Cmd, bool, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+u":
			if f.input.Value() != "" {
				f.input.SetValue("")
				f.input.CursorStart()
				f.err = f.validate()
			}
			return nil, false, false
		}
		switch key.Type {
		case tea.KeyEsc:
			events.Form.Cancel(string(f.prompt.Op), f.prompt.Target, "escape")
			return nil, false, true
		case tea.KeyEnter:
			value := f.Value()
			if value == "" {
				if f.isRename() {
					events.Form.Cancel(string(f.prompt.Op), f.prompt.Target, "empty")
					return nil, false, true
				}
				f.err = "Name required"
				return nil, false, false
			}
			if err := f.validateName(value); err != "" {
				f.err = err
				return nil, false, false
			}
			f.err = ""
			events.Form.Submit(string(f.prompt.Op), f.prompt.Target, value)
			req := Request{Op: f.prompt.Op, TabID: f.prompt.TabID, Target: f.prompt.Target, Name: value}
			return func() tea.Msg { return req }, true, false
		}
	}
	updated, cmd := f.input.Update(msg)
	f.input = updated
	f.err = f.validate()
	return cmd, false, false
}

func (f *NameForm) isRename() bool {
	return f.prompt.Op == OpRenameTab || f.prompt.Op == OpRenameWell
}

func (f *NameForm) validate() string {
	value := f.Value()
	if value == "" {
		return ""
	}
	return f.validateName(value)
}

func (f *NameForm) validateName(name string) string {
	if _, exists := f.existing[name]; exists {
		if f.prompt.Op == OpAddWell || f.prompt.Op == OpRenameWell {
			return "There is already a well with that name"
		}
		return "There is already a tab with that name"
	}
	return ""
}
