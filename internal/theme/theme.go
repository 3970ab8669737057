package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Empty                 *lipgloss.Style
	Tab                   *lipgloss.Style
	ActiveTab             *lipgloss.Style
	Well                  *lipgloss.Style
	ActiveWell            *lipgloss.Style
	Suggestion            *lipgloss.Style
	ActiveSuggestion      *lipgloss.Style
	SignPlus              *lipgloss.Style
	SignMinus             *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style
	Confirm               *lipgloss.Style
}

var defaultStyles = Styles{
	Loading:               ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true)),
	Item:                  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	ItemIndicator:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
	SelectedItemIndicator: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238"))),
	SelectedItem:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true)),
	Empty:                 ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)),
	Tab:                   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)),
	ActiveTab:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Bold(true).Padding(0, 1)),
	Well:                  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)),
	ActiveWell:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Underline(true).Padding(0, 1)),
	Suggestion:            ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("246"))),
	ActiveSuggestion:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("117"))),
	SignPlus:              ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
	SignMinus:             ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
	Error:                 ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)),
	Info:                  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	Header:                ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)),
	Footer:                ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	Filter:                ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	FilterPrompt:          ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true)),
	FilterPlaceholder:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
	Cursor:                ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true)),
	Confirm:               ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
