package app

import "github.com/asiyani/lazyftp/pkg/models"

// Store is the single owned copy of the connection list. The connections
// pane is rendered from it; nothing reads state back from the screen.
type Store struct {
	conns []models.Connection
	index map[string]int
}

func NewStore() *Store {
	return &Store{index: map[string]int{}}
}

// Replace swaps the whole list, keeping the backend order. Records sharing
// an id collapse into the first position with the last value.
func (s *Store) Replace(conns []models.Connection) {
	s.conns = make([]models.Connection, 0, len(conns))
	s.index = make(map[string]int, len(conns))
	for _, c := range conns {
		s.Upsert(c)
	}
}

// Upsert updates the record in place when its id is known and appends it
// otherwise. It returns the record's position.
func (s *Store) Upsert(c models.Connection) int {
	if c.ID != "" {
		if i, ok := s.index[c.ID]; ok {
			s.conns[i] = c
			return i
		}
		s.index[c.ID] = len(s.conns)
	}
	s.conns = append(s.conns, c)
	return len(s.conns) - 1
}

func (s *Store) Remove(id string) bool {
	i, ok := s.index[id]
	if !ok {
		return false
	}
	s.conns = append(s.conns[:i], s.conns[i+1:]...)
	delete(s.index, id)
	for j := i; j < len(s.conns); j++ {
		if s.conns[j].ID != "" {
			s.index[s.conns[j].ID] = j
		}
	}
	return true
}

func (s *Store) Get(id string) (models.Connection, bool) {
	i, ok := s.index[id]
	if !ok {
		return models.Connection{}, false
	}
	return s.conns[i], true
}

// At returns the record at position i.
func (s *Store) At(i int) (models.Connection, bool) {
	if i < 0 || i >= len(s.conns) {
		return models.Connection{}, false
	}
	return s.conns[i], true
}

func (s *Store) IndexOf(id string) int {
	if i, ok := s.index[id]; ok {
		return i
	}
	return -1
}

// All returns a copy of the records in display order.
func (s *Store) All() []models.Connection {
	return append([]models.Connection(nil), s.conns...)
}

func (s *Store) Len() int {
	return len(s.conns)
}
