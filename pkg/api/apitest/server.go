// Package apitest runs an in-memory connections API for tests.
package apitest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gorilla/mux"

	"github.com/asiyani/lazyftp/pkg/models"
)

// Request is one call the server received.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Fields decodes the request body as a flat field mapping.
func (r Request) Fields() (models.Fields, error) {
	out := models.Fields{}
	if err := json.Unmarshal(r.Body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	conns    []models.Connection
	requests []Request
	nextID   int
	// forced maps a route name to a status returned instead of running the handler.
	forced map[string]int
	raw    map[string]string
}

// Route names accepted by FailWith and RespondRaw.
const (
	RouteList   = "list"
	RouteCreate = "create"
	RouteGet    = "get"
	RouteUpdate = "update"
	RouteDelete = "delete"
)

func NewServer(seed ...models.Connection) *Server {
	s := &Server{
		conns:  append([]models.Connection(nil), seed...),
		nextID: 100,
		forced: map[string]int{},
		raw:    map[string]string{},
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/connections", s.wrap(RouteList, s.list)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/connection", s.wrap(RouteCreate, s.create)).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/connection/{id}", s.wrap(RouteGet, s.get)).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/connection/{id}", s.wrap(RouteUpdate, s.update)).Methods(http.MethodPut)
	r.HandleFunc("/api/v1/connection/{id}", s.wrap(RouteDelete, s.remove)).Methods(http.MethodDelete)

	s.Server = httptest.NewServer(r)
	return s
}

// FailWith makes route answer with status until cleared with status 0.
func (s *Server) FailWith(route string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if status == 0 {
		delete(s.forced, route)
		return
	}
	s.forced[route] = status
}

// RespondRaw makes route answer 200 with body verbatim.
func (s *Server) RespondRaw(route, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw[route] = body
}

func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) Connections() []models.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Connection(nil), s.conns...)
}

func (s *Server) wrap(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.EscapedPath(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		status, forced := s.forced[route]
		raw, hasRaw := s.raw[route]
		s.mu.Unlock()

		if forced {
			http.Error(w, http.StatusText(status), status)
			return
		}
		if hasRaw {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, raw)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(body))
		h(w, r)
	}
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.Connections())
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var c models.Connection
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Error while decoding request body.", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.nextID++
	c.ID = strconv.Itoa(s.nextID)
	s.conns = append(s.conns, c)
	s.mu.Unlock()

	writeJSON(w, c)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.conns {
		if c.ID == id {
			writeJSON(w, c)
			return
		}
	}
	http.Error(w, "DB Error while restoring data", http.StatusNotFound)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var c models.Connection
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		http.Error(w, "Error while decoding request body.", http.StatusBadRequest)
		return
	}
	if c.ID != id {
		http.Error(w, "Connection ID in body and url is different.", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.conns {
		if s.conns[i].ID == id {
			s.conns[i] = c
			writeJSON(w, c)
			return
		}
	}
	// Store() in the original backend upserts.
	s.conns = append(s.conns, c)
	writeJSON(w, c)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.conns {
		if s.conns[i].ID == id {
			s.conns = append(s.conns[:i], s.conns[i+1:]...)
			w.WriteHeader(http.StatusOK)
			_, _ = io.WriteString(w, "OK")
			return
		}
	}
	http.Error(w, "not found", http.StatusNotFound)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
