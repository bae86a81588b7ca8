package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnection_IsNew(t *testing.T) {
	assert.True(t, Connection{Name: "draft"}.IsNew())
	assert.False(t, Connection{ID: "1"}.IsNew())
}

func TestFields_RoundTrip(t *testing.T) {
	conn := Connection{ID: "1", Name: "DB1", ServerAddr: "10.0.0.1", Username: "root", Password: "x"}

	fields := FieldsFromConnection(conn)

	assert.Len(t, fields, len(FieldNames))
	for _, name := range FieldNames {
		assert.Contains(t, fields, name)
	}
	assert.Equal(t, "1", fields.ID())
	assert.Equal(t, conn, fields.Connection())
}

func TestFields_ConnectionIgnoresUnknownKeys(t *testing.T) {
	fields := Fields{FieldName: "n", "jobs": "[]"}

	assert.Equal(t, Connection{Name: "n"}, fields.Connection())
	assert.Empty(t, fields.ID())
}
