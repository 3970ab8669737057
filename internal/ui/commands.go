package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/barstock/internal/catalog"
	"github.com/atomicstack/barstock/internal/logging"
	"github.com/atomicstack/barstock/internal/logging/events"
	"github.com/atomicstack/barstock/internal/menu"
)

func (m *Model) handleActionResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(menu.ActionResult)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.forceClearInfo()
		events.Action.Error(result.Err)
		return nil
	}
	if result.Info != "" {
		m.setInfo(result.Info)
	}
	events.Action.Success(result.Info)
	return nil
}

// handleRequestMsg applies a structural change on the update loop and
// returns to product entry once it succeeds.
func (m *Model) handleRequestMsg(msg tea.Msg) tea.Cmd {
	req, ok := msg.(menu.Request)
	if !ok {
		return nil
	}
	m.loading = false
	m.pendingID = ""
	m.pendingLabel = ""
	out := m.bus.Apply(req)
	if out.Err != nil {
		m.errMsg = out.Err.Error()
		m.forceClearInfo()
		m.refreshProducts()
		return nil
	}
	m.errMsg = ""
	m.closeConfig()
	if out.Changed {
		m.setInfo(req.Label())
	} else {
		m.setInfo("Nothing changed")
	}
	return nil
}

func (m *Model) loadMenuCmd(ctx menu.Context, id, title string, loader menu.Loader) tea.Cmd {
	return func() tea.Msg {
		items, err := loader(ctx)
		if err != nil {
			logging.Error(err)
		}
		return categoryLoadedMsg{id: id, title: title, items: items, err: err}
	}
}

// categoryLoadedMsg mirrors the async loader response.
type categoryLoadedMsg struct {
	id    string
	title string
	items []menu.Item
	err   error
}

// catalogLoadedMsg carries the accepted catalog items. A failed fetch
// arrives with no items.
type catalogLoadedMsg struct {
	source string
	items  []string
}

func (m *Model) loadCatalogCmd() tea.Cmd {
	src := m.catalogSource
	if src == nil {
		return nil
	}
	timeout := m.catalogTimeout
	m.catalogLoading = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return catalogLoadedMsg{source: src.String(), items: catalog.Load(ctx, src)}
	}
}

func (m *Model) handleCatalogLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded, ok := msg.(catalogLoadedMsg)
	if !ok {
		return nil
	}
	m.catalogLoading = false
	m.catalogItems = loaded.items
	if m.mode == ModeInventory {
		m.refreshSuggestions()
	}
	if m.verbose {
		m.setInfo(fmt.Sprintf("Catalog %s: %d items", loaded.source, len(loaded.items)))
	}
	return nil
}

func (m *Model) menuContext() menu.Context {
	return menu.Context{State: m.session.Snapshot()}
}
