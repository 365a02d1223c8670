package store

import "maps"

// Store is an in-memory, type-erased map from K to arbitrary values. The zero
// value is an empty store ready to use.
type Store[K comparable] struct {
	data map[K]any
}

// NewStore constructs an empty store.
func NewStore[K comparable]() *Store[K] {
	return &Store[K]{data: make(map[K]any)}
}

// Put stores value under key, overwriting any previous entry.
func (s *Store[K]) Put(key K, value any) {
	if s.data == nil {
		s.data = make(map[K]any)
	}
	s.data[key] = value
}

// Get retrieves the value stored under key. The boolean is false when no
// entry exists; a stored nil is reported as present.
func (s *Store[K]) Get(key K) (any, bool) {
	v, ok := s.data[key]
	return v, ok
}

// Has reports whether key has an entry.
func (s *Store[K]) Has(key K) bool {
	_, ok := s.data[key]
	return ok
}

// Delete removes a key from the store and reports whether it was present.
func (s *Store[K]) Delete(key K) bool {
	if _, exists := s.data[key]; !exists {
		return false
	}
	delete(s.data, key)
	return true
}

// Clear removes all keys from the store.
func (s *Store[K]) Clear() {
	clear(s.data)
}

// Len returns the number of entries in the store.
func (s *Store[K]) Len() int {
	return len(s.data)
}

// Clone creates a new store holding the same entries. The map structure is
// new; the values themselves are shared with s.
func (s *Store[K]) Clone() *Store[K] {
	if s == nil || s.data == nil {
		return NewStore[K]()
	}
	return &Store[K]{data: maps.Clone(s.data)}
}
