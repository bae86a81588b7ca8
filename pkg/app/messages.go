package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
	"github.com/asiyani/lazyftp/pkg/models"
)

type connectionsLoadedMsg struct {
	Connections []models.Connection
}

type connectionSavedMsg struct {
	Connection models.Connection
	Created    bool
}

// connectionSaveFailedMsg carries the form values back so the modal can be
// reopened as the user left it.
type connectionSaveFailedMsg struct {
	Kind FormKind
	Data *helpers.ConnectionFormData
	Err  error
}

type connectionDeletedMsg struct {
	ID string
}

type connectionDetailsMsg struct {
	Connection models.Connection
}

// operationFailedMsg is any failure that only needs to reach the diagnostics.
type operationFailedMsg struct {
	Op  string
	Err error
}

type statusClearMsg struct {
	Text string
}

const statusMessageTimeout = 3 * time.Second

func scheduleStatusClear(text string) tea.Cmd {
	return tea.Tick(statusMessageTimeout, func(time.Time) tea.Msg {
		return statusClearMsg{Text: text}
	})
}

type UpdateCheckMsg struct {
	Available bool
	Version   string
	Error     error
}

type UpdatePerformedMsg struct {
	Error error
}
