// Package answers holds the write-once record of interview answers for one
// generation run.
package answers

import (
	"errors"
	"fmt"
)

// ErrMissing is returned by Get for ids that were never written. The renderer
// treats this as a fatal internal-consistency error rather than substituting
// empty text.
var ErrMissing = errors.New("answer missing")

// Store maps question ids to the scalar answer chosen or entered for each.
// Entries are written exactly once and never mutated afterward.
type Store struct {
	values map[string]string
	order  []string
}

// New returns an empty store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Set records the answer for id. Writing the same id twice is a programming
// error in the question flow and is rejected.
func (s *Store) Set(id, value string) error {
	if id == "" {
		return fmt.Errorf("answers: empty id")
	}
	if _, exists := s.values[id]; exists {
		return fmt.Errorf("answers: id %q already set", id)
	}
	s.values[id] = value
	s.order = append(s.order, id)
	return nil
}

// Get returns the stored value for id, or an ErrMissing-wrapped error when
// the id was never written.
func (s *Store) Get(id string) (string, error) {
	v, ok := s.values[id]
	if !ok {
		return "", fmt.Errorf("answers: id %q: %w", id, ErrMissing)
	}
	return v, nil
}

// Lookup returns the stored value and whether it exists, for callers that
// treat absence as a normal condition.
func (s *Store) Lookup(id string) (string, bool) {
	v, ok := s.values[id]
	return v, ok
}

// Len returns the number of recorded answers.
func (s *Store) Len() int {
	return len(s.order)
}

// IDs returns the recorded ids in insertion order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.order...)
}

// Snapshot returns a copy of the answers as a plain map, for serialization.
func (s *Store) Snapshot() map[string]string {
	out := make(map[string]string, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// FromMap builds a store from a deserialized answers map, inserting in the
// order of ids. Ids absent from the map are skipped; the renderer will
// surface them as missing.
func FromMap(m map[string]string, ids []string) *Store {
	s := New()
	for _, id := range ids {
		if v, ok := m[id]; ok {
			// Set cannot fail here: ids are unique by construction.
			_ = s.Set(id, v)
		}
	}
	return s
}
