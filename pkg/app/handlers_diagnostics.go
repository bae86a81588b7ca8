package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
	"github.com/asiyani/lazyftp/pkg/ui"
)

func (a *App) updateDiagnostics(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.Keys.Export):
		return a.showExportDiagnosticsForm()
	case key.Matches(msg, a.Keys.CopyLogs):
		if err := helpers.CopyLinesToClipboard(a.State.DiagnosticLines); err != nil {
			a.recordFailure("copy diagnostics", err)
			return a, nil
		}
		a.appendDiagnostic(ui.LogSuccess("[Diagnostics copied to clipboard]"))
	case key.Matches(msg, a.Keys.ScrollUp):
		a.viewport.LineUp(1)
	case key.Matches(msg, a.Keys.ScrollDown):
		a.viewport.LineDown(1)
	case key.Matches(msg, a.Keys.PageUp):
		a.viewport.HalfViewUp()
	case key.Matches(msg, a.Keys.PageDown):
		a.viewport.HalfViewDown()
	case key.Matches(msg, a.Keys.ScrollToTop):
		a.viewport.GotoTop()
	case key.Matches(msg, a.Keys.ScrollToBottom):
		a.viewport.GotoBottom()
	}
	return a, nil
}
