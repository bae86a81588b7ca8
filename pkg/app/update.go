package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiyani/lazyftp/pkg/ui"
)

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if a.State.FormOpen() {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			if keyMsg.String() == "ctrl+c" {
				return a, tea.Quit
			}
			// Keys are swallowed while the server has the record.
			if a.State.Submit == SubmitSubmitting {
				return a, nil
			}
			if key.Matches(keyMsg, a.Keys.Cancel) {
				a.State.clearForm()
				return a, nil
			}
		}
		if a.State.ActiveForm != nil {
			if _, ok := msg.(tea.KeyMsg); ok {
				return a.updateForm(msg)
			}
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)

	case connectionsLoadedMsg:
		return a.handleConnectionsLoaded(msg)

	case connectionSavedMsg:
		return a.handleConnectionSaved(msg)

	case connectionSaveFailedMsg:
		return a.handleConnectionSaveFailed(msg)

	case connectionDeletedMsg:
		return a.handleConnectionDeleted(msg)

	case connectionDetailsMsg:
		conn := msg.Connection
		a.State.Details = &conn
		return a, nil

	case operationFailedMsg:
		if msg.Op == opListConnections {
			a.State.Loading = false
		}
		a.recordFailure(msg.Op, msg.Err)
		return a, nil

	case statusClearMsg:
		if a.State.StatusText == msg.Text {
			a.State.StatusText = ""
		}
		return a, nil

	case UpdateCheckMsg:
		return a.handleUpdateCheck(msg)

	case UpdatePerformedMsg:
		return a.handleUpdatePerformed(msg)

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)
	}

	if a.State.ActiveForm != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a *App) refresh() tea.Cmd {
	a.State.Loading = true
	return a.loadConnectionsCmd()
}

// handleConnectionsLoaded replaces the store wholesale, so loading the same
// list twice never duplicates cards.
func (a *App) handleConnectionsLoaded(msg connectionsLoadedMsg) (tea.Model, tea.Cmd) {
	selectedID := a.State.SelectedID()

	a.State.Connections.Replace(msg.Connections)
	a.State.Loading = false
	a.State.Loaded = true

	if i := a.State.Connections.IndexOf(selectedID); i >= 0 {
		a.State.Selected = i
	}
	a.State.clampSelection()
	a.ensureConnectionVisible()
	return a, nil
}

func (a *App) handleConnectionDeleted(msg connectionDeletedMsg) (tea.Model, tea.Cmd) {
	conn, _ := a.State.Connections.Get(msg.ID)
	a.State.Connections.Remove(msg.ID)
	a.State.clampSelection()
	a.ensureConnectionVisible()
	return a, a.setStatus("Deleted " + conn.Name)
}

// recordFailure hands err to the sink and mirrors it in the diagnostics pane.
func (a *App) recordFailure(op string, err error) {
	if a.Diagnostics != nil {
		a.Diagnostics.Record(op, err)
	}
	a.appendDiagnostic(ui.LogError(fmt.Sprintf("[%s failed: %v]", op, err)))
}

func (a *App) appendDiagnostic(line string) {
	a.State.DiagnosticLines = append(a.State.DiagnosticLines, line)
	a.viewport.SetContent(a.renderOutput())
	a.viewport.GotoBottom()
}

func (a *App) renderOutput() string {
	var output string
	for _, line := range a.State.DiagnosticLines {
		output += line + "\n"
	}
	return output
}

func (a *App) setStatus(text string) tea.Cmd {
	a.State.StatusText = text
	return scheduleStatusClear(text)
}

func (a *App) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.State.Width = msg.Width
	a.State.Height = msg.Height

	totalHeight := msg.Height - 1
	diagnosticsHeight := max(totalHeight/3, 6)
	connectionsHeight := totalHeight - diagnosticsHeight

	a.viewport.Width = msg.Width - 4
	a.viewport.Height = max(diagnosticsHeight-3, 1)
	a.viewport.SetContent(a.renderOutput())

	// Each card takes its border plus three lines of content.
	a.State.ConnectionsVisible = max((connectionsHeight-3)/cardHeight, 1)
	a.ensureConnectionVisible()

	if a.State.ActiveForm != nil {
		a.State.ActiveForm = a.State.ActiveForm.WithWidth(a.formWidth())
	}
	return a, nil
}

const cardHeight = 5

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.State.Details != nil || a.State.ShowingHelp {
		if key.Matches(msg, a.Keys.Cancel) || key.Matches(msg, a.Keys.Help) || key.Matches(msg, a.Keys.View) {
			a.State.Details = nil
			a.State.ShowingHelp = false
			return a, nil
		}
		if key.Matches(msg, a.Keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.Keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.Keys.Help):
		a.State.ShowingHelp = true
		return a, nil

	case key.Matches(msg, a.Keys.TabFocus):
		a.cycleFocus()
		return a, nil

	case key.Matches(msg, a.Keys.FocusPane1):
		a.State.FocusedPane = PaneConnections
		return a, nil

	case key.Matches(msg, a.Keys.FocusPane2):
		a.State.FocusedPane = PaneDiagnostics
		return a, nil
	}

	switch a.State.FocusedPane {
	case PaneConnections:
		return a.updateConnections(msg)
	case PaneDiagnostics:
		return a.updateDiagnostics(msg)
	}
	return a, nil
}
