package presentation

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/asiyani/lazyftp/pkg/models"
)

// RenderCards renders one card per record in the given order. selected is
// the index to highlight, or -1 for none. Cards show the name, server
// address and username; the password is never rendered.
func RenderCards(conns []models.Connection, selected, width int) []string {
	cards := make([]string, 0, len(conns))
	for i, conn := range conns {
		cards = append(cards, renderCard(conn, i == selected, width))
	}
	return cards
}

func renderCard(conn models.Connection, selected bool, width int) string {
	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	if width > 0 {
		// Width includes padding but not the border.
		style = style.Width(max(width-2, 10))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		CardTitleStyle.Render(conn.Name),
		CardTextStyle.Render(conn.ServerAddr),
		CardTextStyle.Render("Username: "+conn.Username),
	)
	return style.Render(body)
}
