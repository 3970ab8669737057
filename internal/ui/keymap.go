package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the inventory screen and its overlays.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Accept     key.Binding
	ToggleSign key.Binding
	NextWell   key.Binding
	PrevWell   key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Remove     key.Binding
	ClearWell  key.Binding
	Copy       key.Binding
	Configure  key.Binding
	Back       key.Binding
	Quit       key.Binding
	Yes        key.Binding
	No         key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "move")),
		Down:       key.NewBinding(key.WithKeys("down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown")),
		Accept:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept")),
		ToggleSign: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "+/-")),
		NextWell:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "well")),
		PrevWell:   key.NewBinding(key.WithKeys("shift+tab")),
		NextTab:    key.NewBinding(key.WithKeys("ctrl+right", "ctrl+n"), key.WithHelp("ctrl+n/p", "tab")),
		PrevTab:    key.NewBinding(key.WithKeys("ctrl+left", "ctrl+p")),
		Remove:     key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "remove")),
		ClearWell:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear well")),
		Copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		Configure:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "tabs & wells")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Yes:        key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
		No:         key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	}
}

// helpFor returns the bindings worth showing in the footer for mode.
func (k KeyMap) helpFor(mode Mode) []key.Binding {
	switch mode {
	case ModeQuantity:
		return []key.Binding{k.Accept, k.ToggleSign, k.Back, k.Quit}
	case ModeConfig:
		return []key.Binding{k.Up, k.Accept, k.Back, k.Quit}
	case ModeConfirm:
		return []key.Binding{k.Yes, k.No}
	case ModeNameForm:
		return []key.Binding{k.Accept, k.Back}
	}
	return []key.Binding{k.Up, k.Accept, k.ToggleSign, k.NextWell, k.NextTab, k.Remove, k.ClearWell, k.Copy, k.Configure, k.Quit}
}
