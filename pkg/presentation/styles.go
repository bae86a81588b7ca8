package presentation

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asiyani/lazyftp/pkg/ui"
)

var (
	borderStyle = lipgloss.RoundedBorder()

	PaneStyle = lipgloss.NewStyle().
			Border(borderStyle).
			BorderForeground(ui.ColorSecondary)

	PaneFocusedStyle = lipgloss.NewStyle().
				Border(borderStyle).
				BorderForeground(ui.ColorPrimary)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorPrimary)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ui.ColorBackground).
			Foreground(ui.ColorForeground).
			Padding(0, 1)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(ui.ColorDim).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ui.ColorPrimary).
				Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ui.ColorForeground)

	CardTextStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	HelpKeyStyle  = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	HelpDescStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)

	DimStyle = lipgloss.NewStyle().Foreground(ui.ColorDim)

	FormOverlayStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ui.ColorPrimary).
				Padding(1, 2).
				Background(ui.ColorBackground)

	ScrollbarTrackStyle = lipgloss.NewStyle().Foreground(ui.ColorDim)
	ScrollbarThumbStyle = lipgloss.NewStyle().Foreground(ui.ColorMuted)

	SuccessStyle = lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ui.ColorWarning)
	MutedStyle   = lipgloss.NewStyle().Foreground(ui.ColorMuted)
)
