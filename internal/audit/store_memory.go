package audit

import (
	"context"
	"sync"
)

// InMemoryStore keeps the ledger in process memory. Append order is the
// slice order; the mutex serializes writers so no entry is lost and readers
// never observe a partially-written entry.
type InMemoryStore struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

func (s *InMemoryStore) Append(_ context.Context, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry.clone())
	return nil
}

// Query returns matching entries newest-first. No match returns an empty
// slice, never an error.
func (s *InMemoryStore) Query(_ context.Context, filter Filter) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []Entry{}
	for i := len(s.entries) - 1; i >= 0; i-- {
		if filter.matches(s.entries[i]) {
			matched = append(matched, s.entries[i].clone())
		}
	}
	return matched, nil
}
