package menu

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func loadTabMenu(Context) ([]Item, error) {
	return actionItems("tab", "new", "switch", "rename", "remove"), nil
}

func loadTabTargets(ctx Context) ([]Item, error) {
	items := make([]Item, 0, len(ctx.State.Tabs))
	for _, tab := range ctx.State.Tabs {
		label := tab.Name
		if tab.ID == ctx.State.CurrentTabID {
			label += " (current)"
		}
		items = append(items, Item{ID: tab.ID, Label: label})
	}
	return items, nil
}

// TabNewAction prompts for the name of a new tab.
func TabNewAction(ctx Context, _ Item) tea.Cmd {
	return func() tea.Msg {
		return NamePrompt{Context: ctx, Op: OpAddTab}
	}
}

func TabSwitchAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		tab := ctx.State.Tab(item.ID)
		if tab == nil {
			return ActionResult{Err: fmt.Errorf("tab %s no longer exists", item.Label)}
		}
		return Request{Op: OpSelectTab, TabID: tab.ID, Name: tab.Name}
	}
}

func TabRenameAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		tab := ctx.State.Tab(item.ID)
		if tab == nil {
			return ActionResult{Err: fmt.Errorf("tab %s no longer exists", item.Label)}
		}
		return NamePrompt{Context: ctx, Op: OpRenameTab, TabID: tab.ID, Target: tab.Name, Initial: tab.Name}
	}
}

func TabRemoveAction(ctx Context, item Item) tea.Cmd {
	return func() tea.Msg {
		tab := ctx.State.Tab(item.ID)
		if tab == nil {
			return ActionResult{Err: fmt.Errorf("tab %s no longer exists", item.Label)}
		}
		return ConfirmPrompt{
			Request:  Request{Op: OpRemoveTab, TabID: tab.ID, Target: tab.Name, Name: tab.Name},
			Question: fmt.Sprintf("Remove tab %s? This will delete all wells and products in it.", tab.Name),
		}
	}
}
