package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/asiyani/lazyftp/pkg/api/apitest"
	"github.com/asiyani/lazyftp/pkg/models"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := NewClient(Options{BaseURL: baseURL, Token: "secret-token"}, zaptest.NewLogger(t))
	require.NoError(t, err)
	return c
}

func TestNewClient_InvalidBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"no scheme", "localhost:3001"},
		{"ftp scheme", "ftp://example.com"},
		{"unparsable", "http://[::1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(Options{BaseURL: tt.baseURL}, nil)
			assert.Error(t, err)
		})
	}
}

func TestListConnections_PreservesOrder(t *testing.T) {
	srv := apitest.NewServer(
		models.Connection{ID: "b", Name: "Second"},
		models.Connection{ID: "a", Name: "First"},
	)
	defer srv.Close()

	conns, err := newTestClient(t, srv.URL).ListConnections(context.Background())
	require.NoError(t, err)
	require.Len(t, conns, 2)
	assert.Equal(t, "b", conns[0].ID)
	assert.Equal(t, "a", conns[1].ID)
}

func TestListConnections_DecodesRecord(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	srv.RespondRaw(apitest.RouteList,
		`[{"id":"1","name":"DB1","server_add":"10.0.0.1","username":"root","password":"x","jobs":[]}]`)

	conns, err := newTestClient(t, srv.URL).ListConnections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Connection{
		{ID: "1", Name: "DB1", ServerAddr: "10.0.0.1", Username: "root", Password: "x"},
	}, conns)
}

func TestListConnections_NullBodyIsEmpty(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()
	srv.RespondRaw(apitest.RouteList, "null")

	conns, err := newTestClient(t, srv.URL).ListConnections(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, conns)
	assert.Empty(t, conns)
}

func TestListConnections_Errors(t *testing.T) {
	t.Run("non-200 status", func(t *testing.T) {
		srv := apitest.NewServer()
		defer srv.Close()
		srv.FailWith(apitest.RouteList, http.StatusInternalServerError)

		_, err := newTestClient(t, srv.URL).ListConnections(context.Background())
		require.Error(t, err)
		assert.True(t, IsStatus(err, http.StatusInternalServerError))

		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.MethodGet, se.Method)
		assert.Equal(t, "/api/v1/connections", se.Path)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := apitest.NewServer()
		defer srv.Close()
		srv.RespondRaw(apitest.RouteList, "{not json")

		_, err := newTestClient(t, srv.URL).ListConnections(context.Background())
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("transport failure", func(t *testing.T) {
		srv := apitest.NewServer()
		url := srv.URL
		srv.Close()

		_, err := newTestClient(t, url).ListConnections(context.Background())
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("cancelled context", func(t *testing.T) {
		srv := apitest.NewServer()
		defer srv.Close()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newTestClient(t, srv.URL).ListConnections(ctx)
		assert.ErrorIs(t, err, ErrTransport)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestSubmit_CreateWhenIDEmpty(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	fields := models.Fields{"id": "", "name": "New", "server_add": "h", "username": "u", "password": "p"}
	conn, created, err := newTestClient(t, srv.URL).Submit(context.Background(), fields)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, conn.ID)
	assert.Equal(t, "New", conn.Name)

	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/api/v1/connection", req.Path)

	sent, err := req.Fields()
	require.NoError(t, err)
	assert.Equal(t, fields, sent)
}

func TestSubmit_UpdateWhenIDPresent(t *testing.T) {
	srv := apitest.NewServer(models.Connection{ID: "7", Name: "Old"})
	defer srv.Close()

	fields := models.Fields{"id": "7", "name": "X"}
	conn, created, err := newTestClient(t, srv.URL).Submit(context.Background(), fields)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "X", conn.Name)

	req, ok := srv.LastRequest()
	require.True(t, ok)
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, "/api/v1/connection/7", req.Path)

	sent, err := req.Fields()
	require.NoError(t, err)
	assert.Equal(t, models.Fields{"id": "7", "name": "X"}, sent)
	assert.Equal(t, models.Connection{ID: "7", Name: "X"}, sent.Connection())
}

func TestSubmit_UpdateChecksStatusBeforeParsing(t *testing.T) {
	srv := apitest.NewServer(models.Connection{ID: "7"})
	defer srv.Close()
	srv.FailWith(apitest.RouteUpdate, http.StatusInternalServerError)

	_, _, err := newTestClient(t, srv.URL).Submit(context.Background(), models.Fields{"id": "7"})
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.NotErrorIs(t, err, ErrMalformedResponse)
}

func TestUpdateConnection_EscapesID(t *testing.T) {
	srv := apitest.NewServer(models.Connection{ID: "a b"})
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).UpdateConnection(context.Background(), "a b", models.Fields{"id": "a b"})
	require.NoError(t, err)

	req, _ := srv.LastRequest()
	assert.Equal(t, "/api/v1/connection/a%20b", req.Path)
}

func TestSaveRejectsRecordWithoutID(t *testing.T) {
	tests := []struct {
		name   string
		route  string
		body   string
		fields models.Fields
	}{
		{"create empty object", apitest.RouteCreate, "{}", models.Fields{"name": "n"}},
		{"create null", apitest.RouteCreate, "null", models.Fields{"name": "n"}},
		{"update empty object", apitest.RouteUpdate, "{}", models.Fields{"id": "7", "name": "n"}},
		{"update other id", apitest.RouteUpdate, `{"id":"8","name":"n"}`, models.Fields{"id": "7", "name": "n"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := apitest.NewServer(models.Connection{ID: "7"})
			defer srv.Close()
			srv.RespondRaw(tt.route, tt.body)

			_, _, err := newTestClient(t, srv.URL).Submit(context.Background(), tt.fields)
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestRecordPath_RejectsDotIDs(t *testing.T) {
	srv := apitest.NewServer(models.Connection{ID: "1"})
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	for _, id := range []string{"", ".", ".."} {
		_, err := c.UpdateConnection(context.Background(), id, models.Fields{"id": id})
		assert.ErrorIs(t, err, ErrInvalidID, "update %q", id)

		_, err = c.GetConnection(context.Background(), id)
		assert.ErrorIs(t, err, ErrInvalidID, "get %q", id)

		assert.ErrorIs(t, c.DeleteConnection(context.Background(), id), ErrInvalidID, "delete %q", id)
	}
	assert.Empty(t, srv.Requests())
	assert.Len(t, srv.Connections(), 1)
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc..."},
		{"aé", 2, "a..."},
		{"日本語", 4, "日..."},
		{"日本語", 6, "日本..."},
	}
	for _, tt := range tests {
		got := truncate(tt.in, tt.n)
		assert.Equal(t, tt.want, got, "truncate(%q, %d)", tt.in, tt.n)
		assert.True(t, utf8.ValidString(got), "truncate(%q, %d) = %q", tt.in, tt.n, got)
	}
}

func TestGetAndDeleteConnection(t *testing.T) {
	srv := apitest.NewServer(models.Connection{ID: "1", Name: "DB1"})
	defer srv.Close()
	c := newTestClient(t, srv.URL)

	conn, err := c.GetConnection(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "DB1", conn.Name)

	require.NoError(t, c.DeleteConnection(context.Background(), "1"))
	assert.Empty(t, srv.Connections())

	err = c.DeleteConnection(context.Background(), "1")
	assert.True(t, IsStatus(err, http.StatusNotFound))
}

func TestRequestHeaders(t *testing.T) {
	srv := apitest.NewServer()
	defer srv.Close()

	_, _, err := newTestClient(t, srv.URL).Submit(context.Background(), models.Fields{"name": "n"})
	require.NoError(t, err)

	req, _ := srv.LastRequest()
	assert.Equal(t, "application/json", req.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "Bearer secret-token", req.Header.Get("Authorization"))
	assert.Len(t, req.Header.Get("X-Request-ID"), 36)
}

func TestBaseURLWithPrefix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL + "/ftp/"}, nil)
	require.NoError(t, err)
	_, err = c.ListConnections(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/ftp/api/v1/connections", gotPath)
}

func TestClientTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c, err := NewClient(Options{BaseURL: srv.URL, Timeout: 20 * time.Millisecond}, nil)
	require.NoError(t, err)
	_, err = c.ListConnections(context.Background())
	assert.True(t, errors.Is(err, ErrTransport))
}
