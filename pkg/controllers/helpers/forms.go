package helpers

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/asiyani/lazyftp/pkg/models"
)

func formTheme() *huh.Theme {
	return huh.ThemeCharm()
}

// ConnectionFormData backs the connection form. ID is not editable; it rides
// along so submit can tell create from update.
type ConnectionFormData struct {
	ID         string
	Name       string
	ServerAddr string
	Username   string
	Password   string
}

func NewConnectionFormData(conn *models.Connection) *ConnectionFormData {
	if conn == nil {
		return &ConnectionFormData{}
	}
	return &ConnectionFormData{
		ID:         conn.ID,
		Name:       conn.Name,
		ServerAddr: conn.ServerAddr,
		Username:   conn.Username,
		Password:   conn.Password,
	}
}

// Connection is the record as currently entered in the form.
func (d *ConnectionFormData) Connection() models.Connection {
	return models.Connection{
		ID:         d.ID,
		Name:       d.Name,
		ServerAddr: d.ServerAddr,
		Username:   d.Username,
		Password:   d.Password,
	}
}

// ToFields serializes every form field by name. Values are passed through
// untouched.
func (d *ConnectionFormData) ToFields() models.Fields {
	return models.FieldsFromConnection(d.Connection())
}

func NewConnectionForm(data *ConnectionFormData, width int, hidePassword bool) *huh.Form {
	title := "New Connection"
	idText := "(assigned by server)"
	if !data.Connection().IsNew() {
		title = "Edit Connection"
		idText = data.ID
	}

	echo := huh.EchoModeNormal
	if hidePassword {
		echo = huh.EchoModePassword
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("ID").
				Description(idText),

			huh.NewInput().
				Title("Name").
				Prompt("> ").
				Value(&data.Name),

			huh.NewInput().
				Title("Server").
				Prompt("> ").
				Value(&data.ServerAddr).
				Description("host:port of the FTP server"),

			huh.NewInput().
				Title("Username").
				Prompt("> ").
				Value(&data.Username),

			huh.NewInput().
				Title("Password").
				Prompt("> ").
				EchoMode(echo).
				Value(&data.Password),
		).Title(title).Description(" "),
	).WithShowHelp(true).WithTheme(formTheme()).WithWidth(width)
}

type DeleteConfirmData struct {
	Confirmed bool
}

func NewDeleteConfirmForm(name string, data *DeleteConfirmData, width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %q?", name)).
				Description("The connection and its jobs are removed on the server.").
				Value(&data.Confirmed),
		),
	).WithShowHelp(true).WithTheme(formTheme()).WithWidth(width)
}

type ExportFormData struct {
	Path string
}

func NewExportFormData() *ExportFormData {
	return &ExportFormData{
		Path: DefaultExportPath(),
	}
}

func NewExportDiagnosticsForm(data *ExportFormData, width int) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Export Path").
				Prompt("> ").
				Value(&data.Path).
				Description("Path to save the diagnostics"),
		).Title("Export Diagnostics").Description(" "),
	).WithShowHelp(true).WithTheme(formTheme()).WithWidth(width)
}
