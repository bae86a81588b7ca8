package helpers

import (
	"testing"

	"github.com/asiyani/lazyftp/pkg/models"
)

func TestConnectionFormData_ToFields(t *testing.T) {
	tests := []struct {
		name string
		conn *models.Connection
		want models.Fields
	}{
		{
			name: "create mode is blank with empty id",
			conn: nil,
			want: models.Fields{"id": "", "name": "", "server_add": "", "username": "", "password": ""},
		},
		{
			name: "edit mode carries every field",
			conn: &models.Connection{ID: "7", Name: "X", ServerAddr: "ftp:21", Username: "u", Password: " p "},
			want: models.Fields{"id": "7", "name": "X", "server_add": "ftp:21", "username": "u", "password": " p "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewConnectionFormData(tt.conn).ToFields()
			if len(got) != len(tt.want) {
				t.Fatalf("ToFields() has %d keys, want %d: %v", len(got), len(tt.want), got)
			}
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("ToFields()[%q] = %q, want %q", k, got[k], v)
				}
			}
		})
	}
}

func TestConnectionFormData_FieldNamesMatchModel(t *testing.T) {
	fields := NewConnectionFormData(nil).ToFields()
	for _, name := range models.FieldNames {
		if _, ok := fields[name]; !ok {
			t.Errorf("form is missing field %q", name)
		}
	}
}

func TestNewConnectionForm_Builds(t *testing.T) {
	for _, data := range []*ConnectionFormData{{}, {ID: "7", Name: "X"}} {
		if form := NewConnectionForm(data, 50, true); form == nil {
			t.Fatalf("NewConnectionForm(%+v) returned nil", data)
		}
	}
}

func TestConnectionFormData_ConnectionRoundTrip(t *testing.T) {
	conn := models.Connection{ID: "7", Name: "X", ServerAddr: "ftp:21", Username: "u", Password: "p"}

	data := NewConnectionFormData(&conn)
	if got := data.Connection(); got != conn {
		t.Errorf("Connection() = %+v, want %+v", got, conn)
	}
	if NewConnectionFormData(nil).Connection().IsNew() != true {
		t.Error("blank form data should describe a new record")
	}
}
