package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
	"github.com/asiyani/lazyftp/pkg/ui"
)

func (a *App) handleUpdateCheck(msg UpdateCheckMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil || !msg.Available {
		return a, nil
	}

	a.State.UpdateAvailable = true
	a.State.UpdateVersion = msg.Version

	// Never cover a connection form the user is filling in.
	if a.State.FormOpen() || a.State.Config.Settings.SkipVersionUpdate == msg.Version {
		return a, nil
	}

	data := &UpdateNoticeData{Action: "later"}
	return a.openForm(FormUpdateNotice, data, NewUpdateNoticeForm(msg.Version, data, helpers.IsHomebrewInstall()))
}

func (a *App) handleUpdateFormComplete() (tea.Model, tea.Cmd) {
	data, ok := a.State.FormData.(*UpdateNoticeData)
	a.State.clearForm()
	if !ok {
		return a, nil
	}

	switch data.Action {
	case "update":
		a.appendDiagnostic(ui.LogWarning("[Downloading update...]"))
		return a, performUpdateCmd()

	case "skip":
		a.State.Config.Settings.SkipVersionUpdate = a.State.UpdateVersion
		a.saveSettings()
	}

	return a, nil
}

func (a *App) handleUpdatePerformed(msg UpdatePerformedMsg) (tea.Model, tea.Cmd) {
	if msg.Error != nil {
		a.recordFailure("update", msg.Error)
		return a, nil
	}

	fmt.Println("\n" + ui.LogSuccess("Update successful! Please restart lazyftp."))
	return a, tea.Quit
}

func CheckForUpdates() tea.Cmd {
	return func() tea.Msg {
		info, err := helpers.CheckForUpdate()
		if err != nil {
			return UpdateCheckMsg{Error: err}
		}
		return UpdateCheckMsg{
			Available: info.Available,
			Version:   info.Latest,
		}
	}
}

func performUpdateCmd() tea.Cmd {
	return func() tea.Msg {
		err := helpers.PerformUpdate()
		return UpdatePerformedMsg{Error: err}
	}
}
