// Package command runs configuration menu actions and applies the inventory
// mutations they request.
package command

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/logging/events"
	"github.com/atomicstack/barstock/internal/menu"
)

// Request encapsulates an action invocation.
type Request struct {
	ID      string
	Label   string
	Handler menu.Action
	Item    menu.Item
}

// Inventory is the set of structural mutations the menu can request.
// *inventory.Session implements it.
type Inventory interface {
	AddTab(name string) (string, error)
	SelectTab(id string) bool
	RenameTab(id, newName string) (bool, error)
	RemoveTab(id string) bool
	AddWell(tabID, name string) (bool, error)
	SelectWell(name string) bool
	RenameWell(tabID, oldName, newName string) (bool, error)
	RemoveWell(tabID, name string) bool
	ClearWell(tabID, wellName string) bool
}

// Outcome reports what applying a menu request did.
type Outcome struct {
	Changed bool
	Err     error
}

// Bus coordinates the execution of menu actions.
type Bus struct {
	inv Inventory
}

// New initialises a command bus applying requests to inv.
func New(inv Inventory) *Bus {
	return &Bus{inv: inv}
}

// Execute wraps a menu action into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(ctx menu.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	return func() tea.Msg {
		if req.Handler == nil {
			events.Command.Skip(req.ID, req.Label)
			return nil
		}
		cmd := req.Handler(ctx, req.Item)
		if cmd == nil {
			events.Command.NoOp(req.ID, req.Label)
			return nil
		}
		msg := cmd()
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", msg))
		return msg
	}
}

// Apply performs req against the inventory. It must run on the update loop:
// the inventory is not safe for concurrent use.
func (b *Bus) Apply(req menu.Request) Outcome {
	if b.inv == nil {
		return Outcome{Err: fmt.Errorf("no inventory attached")}
	}
	var out Outcome
	switch req.Op {
	case menu.OpAddTab:
		var id string
		id, out.Err = b.inv.AddTab(req.Name)
		out.Changed = id != ""
	case menu.OpSelectTab:
		out.Changed = b.inv.SelectTab(req.TabID)
	case menu.OpRenameTab:
		out.Changed, out.Err = b.inv.RenameTab(req.TabID, req.Name)
	case menu.OpRemoveTab:
		out.Changed = b.inv.RemoveTab(req.TabID)
	case menu.OpAddWell:
		out.Changed, out.Err = b.inv.AddWell(req.TabID, req.Name)
	case menu.OpSelectWell:
		out.Changed = b.inv.SelectWell(req.Target)
	case menu.OpRenameWell:
		out.Changed, out.Err = b.inv.RenameWell(req.TabID, req.Target, req.Name)
	case menu.OpRemoveWell:
		out.Changed = b.inv.RemoveWell(req.TabID, req.Target)
	case menu.OpClearWell:
		out.Changed = b.inv.ClearWell(req.TabID, req.Target)
	default:
		out.Err = fmt.Errorf("unknown operation %q", req.Op)
	}
	if out.Err != nil {
		events.Action.Error(out.Err)
	} else if out.Changed {
		events.Action.Success(req.Label())
	}
	return out
}
