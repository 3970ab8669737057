package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/inventory"
)

// Item represents a selectable menu entry.
type Item struct {
	ID    string
	Label string
}

// Context carries the inventory snapshot loaders and actions work from.
type Context struct {
	State inventory.State
}

// CurrentTab returns the selected tab of the snapshot.
func (c Context) CurrentTab() *inventory.Tab {
	return c.State.CurrentTab()
}

// Loader populates submenu entries on demand.
type Loader func(Context) ([]Item, error)

type Action func(Context, Item) tea.Cmd

// Op names an inventory mutation requested from the configuration menu.
type Op string

const (
	OpAddTab     Op = "tabs:new"
	OpSelectTab  Op = "tabs:switch"
	OpRenameTab  Op = "tabs:rename"
	OpRemoveTab  Op = "tabs:remove"
	OpAddWell    Op = "wells:new"
	OpSelectWell Op = "wells:switch"
	OpRenameWell Op = "wells:rename"
	OpRemoveWell Op = "wells:remove"
	OpClearWell  Op = "wells:clear"
)

// Request asks the model to apply a mutation on its update loop. TabID and
// Target identify the subject; Name carries the new name for adds and
// renames.
type Request struct {
	Op     Op
	TabID  string
	Target string
	Name   string
}

// Label describes the request for status messages.
func (r Request) Label() string {
	switch r.Op {
	case OpAddTab:
		return fmt.Sprintf("Added tab %s", r.Name)
	case OpSelectTab:
		return fmt.Sprintf("Switched to %s", r.Name)
	case OpRenameTab, OpRenameWell:
		return fmt.Sprintf("Renamed %s to %s", r.Target, r.Name)
	case OpRemoveTab, OpRemoveWell:
		return fmt.Sprintf("Removed %s", r.Name)
	case OpAddWell:
		return fmt.Sprintf("Added well %s", r.Name)
	case OpSelectWell:
		return fmt.Sprintf("Switched to %s", r.Target)
	case OpClearWell:
		return fmt.Sprintf("Cleared %s", r.Target)
	}
	return string(r.Op)
}

// ActionResult communicates the outcome of executing a menu action.
type ActionResult struct {
	Info string
	Err  error
}

// NamePrompt requests a name from the user before a request is issued.
type NamePrompt struct {
	Context Context
	Op      Op
	TabID   string
	Target  string
	Initial string
}

// ConfirmPrompt asks for a yes/no answer before Request is applied.
type ConfirmPrompt struct {
	Request  Request
	Question string
}

// RootItems returns the top-level configuration entries.
func RootItems() []Item {
	return []Item{
		{ID: "tabs", Label: "tabs"},
		{ID: "wells", Label: "wells"},
	}
}

// CategoryLoaders lists submenu loaders keyed by root item ID.
func CategoryLoaders() map[string]Loader {
	return map[string]Loader{
		"tabs":  loadTabMenu,
		"wells": loadWellMenu,
	}
}

// ActionHandlers maps submenu identifiers to their execution logic.
func ActionHandlers() map[string]Action {
	return map[string]Action{
		string(OpAddTab):     TabNewAction,
		string(OpSelectTab):  TabSwitchAction,
		string(OpRenameTab):  TabRenameAction,
		string(OpRemoveTab):  TabRemoveAction,
		string(OpAddWell):    WellNewAction,
		string(OpSelectWell): WellSwitchAction,
		string(OpRenameWell): WellRenameAction,
		string(OpRemoveWell): WellRemoveAction,
		string(OpClearWell):  WellClearAction,
	}
}

// ActionLoaders enumerates loaders for nested submenu actions.
func ActionLoaders() map[string]Loader {
	return map[string]Loader{
		string(OpSelectTab):  loadTabTargets,
		string(OpRenameTab):  loadTabTargets,
		string(OpRemoveTab):  loadTabTargets,
		string(OpSelectWell): loadWellTargets,
		string(OpRenameWell): loadWellTargets,
		string(OpRemoveWell): loadWellTargets,
		string(OpClearWell):  loadWellTargets,
	}
}
