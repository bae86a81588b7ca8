package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
)

func (a *App) cycleFocus() {
	switch a.State.FocusedPane {
	case PaneConnections:
		a.State.FocusedPane = PaneDiagnostics
	case PaneDiagnostics:
		a.State.FocusedPane = PaneConnections
	}
}

func (a *App) updateConnections(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	connCount := a.State.Connections.Len()
	visible := max(a.State.ConnectionsVisible, 1)

	switch {
	case key.Matches(msg, a.Keys.Up):
		if a.State.Selected > 0 {
			a.State.Selected--
			a.ensureConnectionVisible()
		}
	case key.Matches(msg, a.Keys.Down):
		if a.State.Selected < connCount-1 {
			a.State.Selected++
			a.ensureConnectionVisible()
		}
	case key.Matches(msg, a.Keys.PageUp):
		a.State.Selected = max(a.State.Selected-visible/2, 0)
		a.ensureConnectionVisible()
	case key.Matches(msg, a.Keys.PageDown):
		a.State.Selected = max(min(a.State.Selected+visible/2, connCount-1), 0)
		a.ensureConnectionVisible()
	case key.Matches(msg, a.Keys.ScrollToTop):
		a.State.Selected = 0
		a.State.ConnectionsScroll = 0
	case key.Matches(msg, a.Keys.ScrollToBottom):
		if connCount > 0 {
			a.State.Selected = connCount - 1
			a.ensureConnectionVisible()
		}
	case key.Matches(msg, a.Keys.View):
		if id := a.State.SelectedID(); id != "" {
			return a, a.viewConnectionCmd(id)
		}
	case key.Matches(msg, a.Keys.New):
		return a.showNewConnForm()
	case key.Matches(msg, a.Keys.Edit):
		return a.showEditConnForm()
	case key.Matches(msg, a.Keys.Delete):
		return a.showDeleteConfirm()
	case key.Matches(msg, a.Keys.Refresh):
		if a.State.Loading {
			return a, nil
		}
		return a, a.refresh()
	case key.Matches(msg, a.Keys.Copy):
		return a.copyServerAddress()
	}
	return a, nil
}

func (a *App) copyServerAddress() (tea.Model, tea.Cmd) {
	conn, ok := a.State.Connections.Get(a.State.SelectedID())
	if !ok {
		return a, nil
	}
	if err := helpers.CopyToClipboard(conn.ServerAddr); err != nil {
		a.recordFailure("copy server address", err)
		return a, nil
	}
	return a, a.setStatus("Copied " + conn.ServerAddr)
}

func (a *App) ensureConnectionVisible() {
	visible := max(a.State.ConnectionsVisible, 1)
	connCount := a.State.Connections.Len()

	if a.State.Selected < a.State.ConnectionsScroll {
		a.State.ConnectionsScroll = a.State.Selected
	}
	if a.State.Selected >= a.State.ConnectionsScroll+visible {
		a.State.ConnectionsScroll = a.State.Selected - visible + 1
	}
	maxScroll := max(connCount-visible, 0)
	a.State.ConnectionsScroll = max(min(a.State.ConnectionsScroll, maxScroll), 0)
}
