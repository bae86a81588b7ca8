package presentation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/asiyani/lazyftp/pkg/app"
	"github.com/asiyani/lazyftp/pkg/controllers/helpers"
	"github.com/asiyani/lazyftp/pkg/models"
)

func Render(state *app.State) string {
	if state.Width == 0 || state.Height == 0 {
		return "Loading..."
	}

	if state.Width < 60 || state.Height < 15 {
		return fmt.Sprintf("Terminal too small (%dx%d)\nMinimum: 60x15", state.Width, state.Height)
	}

	totalHeight := state.Height - 1
	diagnosticsHeight := max(totalHeight/3, 6)
	connectionsHeight := totalHeight - diagnosticsHeight
	overlay := state.FormOpen() || state.Details != nil || state.ShowingHelp

	connectionsTitle := fmt.Sprintf("Connections (%d)", state.Connections.Len())
	if state.Loading {
		connectionsTitle += " " + WarningStyle.Render("loading...")
	}
	connectionsPane := renderPane(connectionsTitle, "1",
		renderConnectionsContent(state, connectionsHeight-3, state.Width-2),
		state.Width, connectionsHeight, state.FocusedPane == app.PaneConnections, overlay)

	diagnosticsPane := renderPane("Diagnostics", "2", renderDiagnosticsContent(state),
		state.Width, diagnosticsHeight, state.FocusedPane == app.PaneDiagnostics, overlay)

	main := lipgloss.JoinVertical(lipgloss.Left, connectionsPane, diagnosticsPane)

	switch {
	case state.ActiveForm != nil:
		main = overlayForm(main, state.ActiveForm.View(), state.Width, totalHeight)
	case state.Submit == app.SubmitSubmitting:
		main = overlayForm(main, WarningStyle.Render("Saving..."), state.Width, totalHeight)
	case state.Details != nil:
		main = overlayForm(main, renderDetails(*state.Details, state.Config.Settings.ShowPasswords), state.Width, totalHeight)
	case state.ShowingHelp:
		main = overlayForm(main, renderHelp(), state.Width, totalHeight)
	}

	statusBar := renderStatusBar(state, state.Width)

	return lipgloss.JoinVertical(lipgloss.Left, main, statusBar)
}

func renderPane(title, key, content string, width, height int, focused, overlayActive bool) string {
	innerWidth := width - 2
	innerHeight := height - 2

	style := PaneStyle.Width(innerWidth).Height(innerHeight)
	if focused && !overlayActive {
		style = PaneFocusedStyle.Width(innerWidth).Height(innerHeight)
	}

	titleLine := TitleStyle.Render(title) + " " + HelpKeyStyle.Render("["+key+"]")

	inner := titleLine + "\n" + content

	return style.Render(inner)
}

func renderConnectionsContent(state *app.State, maxLines, paneWidth int) string {
	connCount := state.Connections.Len()
	if connCount == 0 {
		if !state.Loaded {
			return MutedStyle.Render("Fetching connections...")
		}
		return MutedStyle.Render("No connections.\nPress [n] to add one.")
	}

	visible := state.ConnectionsVisible
	if visible < 1 {
		visible = maxLines / 5
	}
	visible = max(visible, 1)

	scroll := state.ConnectionsScroll
	maxScroll := max(connCount-visible, 0)
	scroll = max(min(scroll, maxScroll), 0)

	endIdx := min(scroll+visible, connCount)

	all := state.Connections.All()
	cards := RenderCards(all[scroll:endIdx], state.Selected-scroll, paneWidth-4)
	content := strings.Join(cards, "\n")

	if connCount > visible {
		content = addScrollbar(content, maxLines, paneWidth, scroll, connCount, visible)
	}

	return content
}

func addScrollbar(content string, height, paneWidth, scroll, total, visible int) string {
	lines := strings.Split(content, "\n")

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	targetWidth := paneWidth - 2

	trackHeight := max(height, 1)

	thumbSize := max((visible*trackHeight)/total, 1)

	scrollRange := max(total-visible, 1)
	thumbPos := (scroll * (trackHeight - thumbSize)) / scrollRange

	track := ScrollbarTrackStyle.Render("│")
	thumb := ScrollbarThumbStyle.Render("█")

	for i := 0; i < len(lines); i++ {
		char := track
		if i >= thumbPos && i < thumbPos+thumbSize {
			char = thumb
		}
		lineWidth := lipgloss.Width(lines[i])
		padLen := max(targetWidth-lineWidth, 0)
		padding := strings.Repeat(" ", padLen)
		lines[i] = lines[i] + padding + " " + char
	}

	return strings.Join(lines, "\n")
}

func renderDiagnosticsContent(state *app.State) string {
	if state.OutputView == "" || len(state.DiagnosticLines) == 0 {
		return MutedStyle.Render("No diagnostics.")
	}
	return state.OutputView
}

func renderDetails(conn models.Connection, showPassword bool) string {
	password := strings.Repeat("•", len(conn.Password))
	if showPassword {
		password = conn.Password
	}

	row := func(label, value string) string {
		return HelpDescStyle.Render(fmt.Sprintf("%-10s", label)) + " " + value
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render(conn.Name),
		"",
		row("ID", conn.ID),
		row("Server", conn.ServerAddr),
		row("Username", conn.Username),
		row("Password", password),
		"",
		MutedStyle.Render("[esc] close"),
	)
}

var helpEntries = [][2]string{
	{"j/k", "move selection / scroll"},
	{"enter, v", "view connection"},
	{"n", "new connection"},
	{"e", "edit connection"},
	{"x", "delete connection"},
	{"c", "copy server address"},
	{"r", "reload connections"},
	{"y", "copy diagnostics"},
	{"E", "export diagnostics"},
	{"1/2, tab", "switch pane"},
	{"q, ctrl+c", "quit"},
}

func renderHelp() string {
	lines := []string{TitleStyle.Render("Keys"), ""}
	for _, e := range helpEntries {
		lines = append(lines, HelpKeyStyle.Render(fmt.Sprintf("%-10s", e[0]))+" "+HelpDescStyle.Render(e[1]))
	}
	return strings.Join(lines, "\n")
}

func renderStatusBar(state *app.State, width int) string {
	var help string
	switch {
	case state.Submit == app.SubmitSubmitting:
		help = "saving..."
	case state.ActiveForm != nil:
		help = "[tab] next  [enter] save  [esc] cancel"
	case state.Details != nil, state.ShowingHelp:
		help = "[esc] close"
	case state.FocusedPane == app.PaneDiagnostics:
		help = "[j/k] scroll  [ctrl+d/u] page  [g/G] top/bottom  [y] copy  [E] export"
	default:
		help = "[j/k] nav  [enter] view  [n] new  [e] edit  [x] del  [c] copy  [r] reload  [?] help"
	}

	if state.StatusText != "" {
		help = SuccessStyle.Render(state.StatusText) + "  " + help
	}
	if state.UpdateAvailable {
		help += "  " + WarningStyle.Render("update v"+state.UpdateVersion)
	}

	return StatusBarStyle.Width(width).Render(help)
}

func overlayForm(base, form string, width, height int) string {
	styledForm := FormOverlayStyle.Render(form)

	dimmed := dimContent(base, height)

	return compositeOverlay(dimmed, styledForm, width, height)
}

func dimContent(content string, height int) string {
	lines := strings.Split(content, "\n")

	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	var result []string
	for _, line := range lines {
		plain := helpers.StripANSI(line)
		result = append(result, DimStyle.Render(plain))
	}

	return strings.Join(result, "\n")
}

func compositeOverlay(base, overlay string, width, height int) string {
	baseLines := strings.Split(base, "\n")
	overlayLines := strings.Split(overlay, "\n")

	for len(baseLines) < height {
		baseLines = append(baseLines, "")
	}

	overlayWidth := lipgloss.Width(overlay)
	overlayHeight := len(overlayLines)

	startY := max((height-overlayHeight)/2, 0)
	startX := max((width-overlayWidth)/2, 0)

	for i, overlayLine := range overlayLines {
		baseY := startY + i
		if baseY >= len(baseLines) {
			break
		}

		basePlain := helpers.StripANSI(baseLines[baseY])
		baseRunes := []rune(basePlain)

		for len(baseRunes) < width {
			baseRunes = append(baseRunes, ' ')
		}

		overlayRunes := []rune(overlayLine)
		overlayPlainWidth := lipgloss.Width(overlayLine)

		left := DimStyle.Render(string(baseRunes[:startX]))

		rightStart := startX + overlayPlainWidth
		var right string
		if rightStart < len(baseRunes) {
			right = DimStyle.Render(string(baseRunes[rightStart:]))
		}

		baseLines[baseY] = left + string(overlayRunes) + right
	}

	return strings.Join(baseLines[:height], "\n")
}
