package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
)

const (
	opListConnections  = "list connections"
	opCreateConnection = "create connection"
	opUpdateConnection = "update connection"
	opDeleteConnection = "delete connection"
	opViewConnection   = "view connection"
)

func (a *App) loadConnectionsCmd() tea.Cmd {
	svc, ctx := a.Service, a.ctx
	return func() tea.Msg {
		conns, err := svc.ListConnections(ctx)
		if err != nil {
			return operationFailedMsg{Op: opListConnections, Err: err}
		}
		return connectionsLoadedMsg{Connections: conns}
	}
}

// submitConnectionCmd sends the serialized form. data is only carried so a
// failure can reopen the form; the request uses the fields snapshot.
func (a *App) submitConnectionCmd(kind FormKind, data *helpers.ConnectionFormData) tea.Cmd {
	svc, ctx := a.Service, a.ctx
	fields := data.ToFields()
	return func() tea.Msg {
		conn, created, err := svc.Submit(ctx, fields)
		if err != nil {
			return connectionSaveFailedMsg{Kind: kind, Data: data, Err: err}
		}
		return connectionSavedMsg{Connection: conn, Created: created}
	}
}

func (a *App) deleteConnectionCmd(id string) tea.Cmd {
	svc, ctx := a.Service, a.ctx
	return func() tea.Msg {
		if err := svc.DeleteConnection(ctx, id); err != nil {
			return operationFailedMsg{Op: opDeleteConnection, Err: err}
		}
		return connectionDeletedMsg{ID: id}
	}
}

func (a *App) viewConnectionCmd(id string) tea.Cmd {
	svc, ctx := a.Service, a.ctx
	return func() tea.Msg {
		conn, err := svc.GetConnection(ctx, id)
		if err != nil {
			return operationFailedMsg{Op: opViewConnection, Err: err}
		}
		return connectionDetailsMsg{Connection: conn}
	}
}
