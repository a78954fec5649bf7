package history

import (
	"sync"

	"textprocessor/internal/model"
)

// Store is the in-memory log of processed results. It is append-only,
// unbounded, and lives for the lifetime of the process. Appends from
// concurrent requests are serialized by the mutex; records land in the
// order the calls completed.
type Store struct {
	mu      sync.Mutex
	results []model.ProcessingResult
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Append(result model.ProcessingResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)
}

// List returns a snapshot of all records in append order.
func (s *Store) List() []model.ProcessingResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.ProcessingResult, len(s.results))
	copy(out, s.results)
	return out
}
