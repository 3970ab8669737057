package menu

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

var errNoTab = errors.New("no tab selected")

func loadWellMenu(Context) ([]Item, error) {
	return actionItems("well", "new", "switch", "rename", "remove", "clear"), nil
}

// loadWellTargets lists the wells of the current tab, with their product
// counts.
func loadWellTargets(ctx Context) ([]Item, error) {
	tab := ctx.CurrentTab()
	if tab == nil {
		return nil, errNoTab
	}
	items := make([]Item, 0, len(tab.Wells))
	for _, well := range tab.Wells {
		label := fmt.Sprintf("%s (%d)", well.Name, len(well.Products))
		if well.Name == ctx.State.CurrentWellName {
			label += " (current)"
		}
		items = append(items, Item{ID: well.Name, Label: label})
	}
	return items, nil
}

func WellNewAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		tab := ctx.CurrentTab()
		if tab == nil {
			return ActionResult{Err: errNoTab}
		}
		return NamePrompt{Context: ctx, Op: OpAddWell, TabID: tab.ID}
	}
}

func WellSwitchAction(ctx Context, item Item) tea.Cmd {
	return wellCmd(ctx, item, func(tabID, name string) tea.Msg {
		return Request{Op: OpSelectWell, TabID: tabID, Target: name}
	})
}

func WellRenameAction(ctx Context, item Item) tea.Cmd {
	return wellCmd(ctx, item, func(tabID, name string) tea.Msg {
		return NamePrompt{Context: ctx, Op: OpRenameWell, TabID: tabID, Target: name, Initial: name}
	})
}

func WellRemoveAction(ctx Context, item Item) tea.Cmd {
	return wellCmd(ctx, item, func(tabID, name string) tea.Msg {
		return ConfirmPrompt{
			Request:  Request{Op: OpRemoveWell, TabID: tabID, Target: name, Name: name},
			Question: fmt.Sprintf("Remove well %s and all products inside?", name),
		}
	})
}

func WellClearAction(ctx Context, item Item) tea.Cmd {
	return wellCmd(ctx, item, func(tabID, name string) tea.Msg {
		return ClearWellPrompt(tabID, name)
	})
}

// ClearWellPrompt builds the confirmation shown before a well is emptied.
func ClearWellPrompt(tabID, wellName string) ConfirmPrompt {
	return ConfirmPrompt{
		Request:  Request{Op: OpClearWell, TabID: tabID, Target: wellName},
		Question: fmt.Sprintf("Clear every product from %s?", wellName),
	}
}

func wellCmd(ctx Context, item Item, build func(tabID, name string) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		tab := ctx.CurrentTab()
		if tab == nil {
			return ActionResult{Err: errNoTab}
		}
		if tab.Well(item.ID) == nil {
			return ActionResult{Err: fmt.Errorf("well %s no longer exists", item.ID)}
		}
		return build(tab.ID, item.ID)
	}
}
