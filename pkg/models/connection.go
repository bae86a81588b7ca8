package models

// Connection is one record of the connections API. Password travels in
// plaintext, the backend owns the credential store.
type Connection struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ServerAddr string `json:"server_add"`
	Username   string `json:"username"`
	Password   string `json:"password"`
}

// IsNew reports whether the backend has not yet assigned an id.
func (c Connection) IsNew() bool {
	return c.ID == ""
}

const (
	FieldID         = "id"
	FieldName       = "name"
	FieldServerAddr = "server_add"
	FieldUsername   = "username"
	FieldPassword   = "password"
)

// FieldNames lists the form fields in display order.
var FieldNames = []string{FieldID, FieldName, FieldServerAddr, FieldUsername, FieldPassword}

// Fields is the flat name -> value mapping a submitted form serializes to.
// It is sent to the API as-is.
type Fields map[string]string

func FieldsFromConnection(c Connection) Fields {
	return Fields{
		FieldID:         c.ID,
		FieldName:       c.Name,
		FieldServerAddr: c.ServerAddr,
		FieldUsername:   c.Username,
		FieldPassword:   c.Password,
	}
}

// ID returns the identifier field, empty for a new record.
func (f Fields) ID() string {
	return f[FieldID]
}

// Connection maps the known fields back onto a record. Unknown keys are ignored.
func (f Fields) Connection() Connection {
	return Connection{
		ID:         f[FieldID],
		Name:       f[FieldName],
		ServerAddr: f[FieldServerAddr],
		Username:   f[FieldUsername],
		Password:   f[FieldPassword],
	}
}
