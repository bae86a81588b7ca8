package app

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
	"github.com/asiyani/lazyftp/pkg/version"
)

func (a *App) formWidth() int {
	return max(min(a.State.Width/2, 60), 40)
}

func (a *App) openForm(kind FormKind, data any, form *huh.Form) (tea.Model, tea.Cmd) {
	a.State.ActiveForm = form
	a.State.FormKind = kind
	a.State.FormData = data
	a.State.Submit = SubmitIdle
	return a, form.Init()
}

func (a *App) openConnectionForm(kind FormKind, data *helpers.ConnectionFormData) (tea.Model, tea.Cmd) {
	form := helpers.NewConnectionForm(data, a.formWidth(), a.State.Config.Settings.PasswordEchoHidden())
	return a.openForm(kind, data, form)
}

func (a *App) showNewConnForm() (tea.Model, tea.Cmd) {
	return a.openConnectionForm(FormNewConn, helpers.NewConnectionFormData(nil))
}

// showEditConnForm resolves the selected id against the store rather than
// trusting whatever the card displayed.
func (a *App) showEditConnForm() (tea.Model, tea.Cmd) {
	conn, ok := a.State.Connections.Get(a.State.SelectedID())
	if !ok {
		return a, nil
	}
	return a.openConnectionForm(FormEditConn, helpers.NewConnectionFormData(&conn))
}

func (a *App) showDeleteConfirm() (tea.Model, tea.Cmd) {
	conn, ok := a.State.Connections.Get(a.State.SelectedID())
	if !ok {
		return a, nil
	}

	data := &helpers.DeleteConfirmData{}
	return a.openForm(FormDeleteConfirm, deleteRequest{ID: conn.ID, Data: data},
		helpers.NewDeleteConfirmForm(conn.Name, data, a.formWidth()))
}

type deleteRequest struct {
	ID   string
	Data *helpers.DeleteConfirmData
}

func (a *App) showExportDiagnosticsForm() (tea.Model, tea.Cmd) {
	data := helpers.NewExportFormData()
	return a.openForm(FormExportDiagnostics, data, helpers.NewExportDiagnosticsForm(data, a.formWidth()))
}

func (a *App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.State.ActiveForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.State.ActiveForm = f
	}

	switch a.State.ActiveForm.State {
	case huh.StateCompleted:
		return a.handleFormComplete()
	case huh.StateAborted:
		a.State.clearForm()
		return a, nil
	}

	return a, cmd
}

func (a *App) handleFormComplete() (tea.Model, tea.Cmd) {
	switch a.State.FormKind {
	case FormNewConn, FormEditConn:
		return a.submitForm()

	case FormDeleteConfirm:
		req := a.State.FormData.(deleteRequest)
		a.State.clearForm()
		if req.Data.Confirmed {
			return a, a.deleteConnectionCmd(req.ID)
		}

	case FormExportDiagnostics:
		data := a.State.FormData.(*helpers.ExportFormData)
		a.State.clearForm()
		if err := helpers.ExportLines(data.Path, a.State.DiagnosticLines); err != nil {
			a.recordFailure("export diagnostics", err)
			return a, nil
		}
		return a, a.setStatus("Diagnostics exported to " + data.Path)

	case FormUpdateNotice:
		return a.handleUpdateFormComplete()

	default:
		a.State.clearForm()
	}

	return a, nil
}

// submitForm moves Idle -> Submitting. The modal is hidden only once the
// server accepts the record; a second submit while one is in flight is dropped.
func (a *App) submitForm() (tea.Model, tea.Cmd) {
	if a.State.Submit == SubmitSubmitting {
		return a, nil
	}
	data, ok := a.State.FormData.(*helpers.ConnectionFormData)
	if !ok {
		a.State.clearForm()
		return a, nil
	}

	a.State.ActiveForm = nil
	a.State.Submit = SubmitSubmitting
	return a, a.submitConnectionCmd(a.State.FormKind, data)
}

func (a *App) handleConnectionSaved(msg connectionSavedMsg) (tea.Model, tea.Cmd) {
	a.State.clearForm()
	a.State.Selected = a.State.Connections.Upsert(msg.Connection)
	a.ensureConnectionVisible()

	verb := "Updated"
	if msg.Created {
		verb = "Created"
	}
	return a, a.setStatus(fmt.Sprintf("%s %s", verb, msg.Connection.Name))
}

// handleConnectionSaveFailed keeps the modal open with the values the user entered.
func (a *App) handleConnectionSaveFailed(msg connectionSaveFailedMsg) (tea.Model, tea.Cmd) {
	op := opUpdateConnection
	if msg.Data.Connection().IsNew() {
		op = opCreateConnection
	}
	a.recordFailure(op, msg.Err)

	if a.State.Submit != SubmitSubmitting {
		return a, nil
	}
	return a.openConnectionForm(msg.Kind, msg.Data)
}

type UpdateNoticeData struct {
	Action string
}

func NewUpdateNoticeForm(newVersion string, data *UpdateNoticeData, isHomebrew bool) *huh.Form {
	if isHomebrew {
		return huh.NewForm(
			huh.NewGroup(
				huh.NewNote().
					Title("Update Available").
					Description(fmt.Sprintf(
						"A new version is available!\n\n"+
							"  Current: v%s\n"+
							"  Latest:  v%s\n\n"+
							"Installed via Homebrew. Run:\n"+
							"  brew upgrade lazyftp",
						version.Current, newVersion,
					)),

				huh.NewSelect[string]().
					Key("action").
					Options(
						huh.NewOption("OK", "later"),
						huh.NewOption("Skip This Version", "skip"),
					).
					Value(&data.Action),
			),
		).WithShowHelp(true).WithTheme(huh.ThemeCharm()).WithWidth(50)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Update Available").
				Description(fmt.Sprintf(
					"A new version is available!\n\n"+
						"  Current: v%s\n"+
						"  Latest:  v%s",
					version.Current, newVersion,
				)),

			huh.NewSelect[string]().
				Key("action").
				Options(
					huh.NewOption("Update Now", "update"),
					huh.NewOption("Remind Me Later", "later"),
					huh.NewOption("Skip This Version", "skip"),
				).
				Value(&data.Action),
		),
	).WithShowHelp(true).WithTheme(huh.ThemeCharm()).WithWidth(50)
}

func (a *App) saveSettings() {
	if err := helpers.SaveConfig(a.ConfigPath, a.State.Config); err != nil {
		a.recordFailure("save settings", err)
	}
}
