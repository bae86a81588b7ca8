package app

import (
	"context"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiyani/lazyftp/pkg/models"
)

// ConnectionService is the remote side of the view. *api.Client implements it.
type ConnectionService interface {
	ListConnections(ctx context.Context) ([]models.Connection, error)
	GetConnection(ctx context.Context, id string) (models.Connection, error)
	Submit(ctx context.Context, fields models.Fields) (models.Connection, bool, error)
	DeleteConnection(ctx context.Context, id string) error
}

// DiagnosticSink receives every failed operation.
type DiagnosticSink interface {
	Record(op string, err error)
}

// RenderFunc is set externally to avoid import cycle
type RenderFunc func(state *State) string

type App struct {
	State       *State
	Keys        KeyMap
	RenderView  RenderFunc
	Service     ConnectionService
	Diagnostics DiagnosticSink
	// ConfigPath is where settings changes are saved; empty means the default location.
	ConfigPath string
	// UpdateCheck runs once at startup when set.
	UpdateCheck tea.Cmd

	ctx      context.Context
	viewport viewport.Model
}

func New(cfg *models.Config, svc ConnectionService, sink DiagnosticSink) *App {
	return &App{
		State:       NewState(cfg),
		Keys:        DefaultKeyMap(),
		Service:     svc,
		Diagnostics: sink,
		ctx:         context.Background(),
		viewport:    viewport.New(0, 0),
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.refresh()}
	if a.UpdateCheck != nil {
		cmds = append(cmds, a.UpdateCheck)
	}
	return tea.Batch(cmds...)
}

func (a *App) View() string {
	if a.RenderView == nil {
		return "Loading..."
	}
	a.State.OutputView = a.viewport.View()
	return a.RenderView(a.State)
}
