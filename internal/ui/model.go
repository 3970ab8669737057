package ui

import (
	"reflect"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/catalog"
	"github.com/atomicstack/barstock/internal/inventory"
	"github.com/atomicstack/barstock/internal/logging/events"
	"github.com/atomicstack/barstock/internal/menu"
	"github.com/atomicstack/barstock/internal/suggest"
	"github.com/atomicstack/barstock/internal/theme"
	"github.com/atomicstack/barstock/internal/ui/command"
	uistate "github.com/atomicstack/barstock/internal/ui/state"
)

type level = uistate.Level

type Mode int

const (
	ModeInventory Mode = iota
	ModeQuantity
	ModeConfig
	ModeNameForm
	ModeConfirm
)

func (m Mode) String() string {
	switch m {
	case ModeQuantity:
		return "quantity"
	case ModeConfig:
		return "config"
	case ModeNameForm:
		return "name-form"
	case ModeConfirm:
		return "confirm"
	}
	return "inventory"
}

const (
	menuHeaderSeparator   = " → "
	defaultRootTitle      = "tabs & wells"
	defaultCatalogTimeout = 5 * time.Second
	quantityLimit         = 6
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

func newLevel(id, title string, items []menu.Item, node *menu.Node) *level {
	return uistate.NewLevel(id, title, items, node)
}

// Options tunes a Model. Zero values select the defaults.
type Options struct {
	Width          int
	Height         int
	ShowFooter     bool
	Verbose        bool
	Catalog        catalog.Source
	CatalogTimeout time.Duration
	Clipboard      func(string) error
}

// Model implements the Bubble Tea model for the inventory screen.
type Model struct {
	session *inventory.Session

	products     *level
	productsKey  string
	nameInput    textinput.Model
	qtyInput     textinput.Model
	pendingName  string
	sign         int
	suggestions  suggest.Cursor
	catalogItems []string

	catalogSource  catalog.Source
	catalogTimeout time.Duration
	catalogLoading bool
	clipboard      func(string) error

	stack        []*level
	loading      bool
	pendingID    string
	pendingLabel string
	nameForm     *menu.NameForm
	confirm      *menu.ConfirmPrompt
	returnMode   Mode

	errMsg      string
	infoMsg     string
	infoExpire  time.Time
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool
	verbose     bool
	keys        KeyMap
	help        help.Model

	filterCursor      cursor.Model
	filterCursorDirty bool
	cursorMode        cursor.Mode

	handlers map[reflect.Type]msgHandler

	registry *menu.Registry
	bus      *command.Bus
	mode     Mode
}

// NewModel builds the UI over session.
func NewModel(session *inventory.Session, opts Options) *Model {
	if session == nil {
		session = inventory.Open(nil)
	}
	registry := menu.BuildRegistry()
	m := &Model{
		session:        session,
		registry:       registry,
		bus:            command.New(session),
		sign:           1,
		catalogSource:  opts.Catalog,
		catalogTimeout: opts.CatalogTimeout,
		clipboard:      opts.Clipboard,
		showFooter:     opts.ShowFooter,
		verbose:        opts.Verbose,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		mode:           ModeInventory,
	}
	if m.catalogTimeout <= 0 {
		m.catalogTimeout = defaultCatalogTimeout
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
		m.help.Width = opts.Width
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "product name"
	m.nameInput.Prompt = ""
	m.nameInput.CharLimit = 80
	m.nameInput.Focus()

	m.qtyInput = textinput.New()
	m.qtyInput.Placeholder = "quantity"
	m.qtyInput.Prompt = ""
	m.qtyInput.CharLimit = quantityLimit

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.refreshProducts()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if cmd := m.loadCatalogCmd(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if m.mode == ModeConfig {
		if cmd := m.updateFilterCursorModel(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if handled, cmd := m.handleActiveForm(msg); handled {
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, m.finishUpdate(cmds)
	}

	if cmd := m.updateInputs(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) handleActiveForm(msg tea.Msg) (bool, tea.Cmd) {
	switch m.mode {
	case ModeNameForm:
		return m.handleNameForm(msg)
	case ModeConfirm:
		return m.handleConfirm(msg)
	default:
		return false, nil
	}
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(categoryLoadedMsg{}):  m.handleCategoryLoadedMsg,
		reflect.TypeOf(catalogLoadedMsg{}):   m.handleCatalogLoadedMsg,
		reflect.TypeOf(menu.ActionResult{}):  m.handleActionResultMsg,
		reflect.TypeOf(menu.Request{}):       m.handleRequestMsg,
		reflect.TypeOf(menu.NamePrompt{}):    m.handleNamePromptMsg,
		reflect.TypeOf(menu.ConfirmPrompt{}): m.handleConfirmPromptMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// updateInputs forwards non-key messages (cursor blinks) to the focused
// text input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case ModeInventory:
		m.nameInput, cmd = m.nameInput.Update(msg)
	case ModeQuantity:
		m.qtyInput, cmd = m.qtyInput.Update(msg)
	}
	return cmd
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	events.UI.Mode(m.mode.String(), mode.String())
	m.mode = mode
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Session exposes the inventory the model edits.
func (m *Model) Session() *inventory.Session {
	return m.session
}

// Mode reports the active screen.
func (m *Model) Mode() Mode {
	return m.mode
}

// SetCursorMode switches every text cursor between blinking, static and
// hidden.
func (m *Model) SetCursorMode(mode cursor.Mode) {
	m.cursorMode = mode
	m.nameInput.Cursor.SetMode(mode)
	m.qtyInput.Cursor.SetMode(mode)
	m.filterCursor.SetMode(mode)
	if m.nameForm != nil {
		m.nameForm.SetCursorMode(mode)
	}
}
