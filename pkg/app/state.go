package app

import (
	"github.com/charmbracelet/huh"

	"github.com/asiyani/lazyftp/pkg/models"
)

type FocusedPane int

const (
	PaneConnections FocusedPane = iota
	PaneDiagnostics
)

type FormKind int

const (
	FormNone FormKind = iota
	FormNewConn
	FormEditConn
	FormDeleteConfirm
	FormExportDiagnostics
	FormUpdateNotice
)

// SubmitState tracks the connection form submit cycle.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	SubmitSubmitting
)

type State struct {
	Config *models.Config

	Connections *Store
	Selected    int
	Loading     bool
	Loaded      bool

	FocusedPane        FocusedPane
	ConnectionsScroll  int
	ConnectionsVisible int
	DiagnosticLines    []string
	Width              int
	Height             int
	OutputView         string

	// The form stays conceptually open from intake until a successful
	// submit; ActiveForm is nil while the request is in flight.
	ActiveForm *huh.Form
	FormKind   FormKind
	FormData   any
	Submit     SubmitState

	Details     *models.Connection
	ShowingHelp bool
	StatusText  string

	UpdateAvailable bool
	UpdateVersion   string
}

func NewState(cfg *models.Config) *State {
	return &State{
		Config:          cfg,
		Connections:     NewStore(),
		FocusedPane:     PaneConnections,
		DiagnosticLines: []string{},
	}
}

func (s *State) SelectedConnection() *models.Connection {
	c, ok := s.Connections.At(s.Selected)
	if !ok {
		return nil
	}
	return &c
}

// SelectedID is what card actions carry; the record is looked up on use.
func (s *State) SelectedID() string {
	if c := s.SelectedConnection(); c != nil {
		return c.ID
	}
	return ""
}

// FormOpen reports whether the modal is showing or a submit is in flight.
func (s *State) FormOpen() bool {
	return s.ActiveForm != nil || s.Submit == SubmitSubmitting
}

func (s *State) clearForm() {
	s.ActiveForm = nil
	s.FormKind = FormNone
	s.FormData = nil
	s.Submit = SubmitIdle
}

func (s *State) clampSelection() {
	n := s.Connections.Len()
	if s.Selected >= n {
		s.Selected = n - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
}
