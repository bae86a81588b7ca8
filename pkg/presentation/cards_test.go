package presentation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asiyani/lazyftp/pkg/models"
)

func TestRenderCards_Empty(t *testing.T) {
	assert.Empty(t, RenderCards(nil, -1, 40))
	assert.Empty(t, RenderCards([]models.Connection{}, 0, 40))
}

func TestRenderCards_ContentWithoutPassword(t *testing.T) {
	conns := []models.Connection{
		{ID: "1", Name: "DB1", ServerAddr: "10.0.0.1", Username: "root", Password: "hunter2"},
	}

	cards := RenderCards(conns, -1, 40)

	require.Len(t, cards, 1)
	assert.Contains(t, cards[0], "DB1")
	assert.Contains(t, cards[0], "10.0.0.1")
	assert.Contains(t, cards[0], "Username: root")
	assert.NotContains(t, cards[0], "hunter2")
}

func TestRenderCards_OneCardPerRecordInOrder(t *testing.T) {
	conns := []models.Connection{
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
		{ID: "3", Name: "Third"},
	}

	cards := RenderCards(conns, 1, 40)

	require.Len(t, cards, 3)
	for i, c := range conns {
		assert.Contains(t, cards[i], c.Name)
	}
	assert.True(t, strings.Index(strings.Join(cards, "\n"), "First") < strings.Index(strings.Join(cards, "\n"), "Third"))
}

func TestRenderCards_EmptyFieldsStillRender(t *testing.T) {
	cards := RenderCards([]models.Connection{{ID: "1"}}, 0, 0)

	require.Len(t, cards, 1)
	assert.Contains(t, cards[0], "Username:")
}
