package store

import (
	"context"
	"slices"
	"sync"

	"residents/internal/resident/models"
	"residents/pkg/platform/sentinel"
)

// InMemory keeps residents in insertion order for the life of the process.
// A single lock guards both the collection and the ID counter, so ID
// assignment and append happen as one step.
type InMemory struct {
	mu        sync.RWMutex
	residents []models.Resident
	nextID    int64
	onResize  func(size int)
}

type Option func(*InMemory)

// WithSizeObserver registers fn to receive the collection size after every
// mutation. fn runs while the store lock is held, so successive calls observe
// sizes in mutation order; it must not call back into the store.
func WithSizeObserver(fn func(size int)) Option {
	return func(s *InMemory) {
		s.onResize = fn
	}
}

// NewInMemory creates an empty store whose first assigned ID is 1.
func NewInMemory(opts ...Option) *InMemory {
	s := &InMemory{
		residents: make([]models.Resident, 0),
		nextID:    1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create assigns the next ID and appends the resident.
func (s *InMemory) Create(_ context.Context, in models.NewResident) (models.Resident, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := models.Resident{ID: s.nextID, Name: in.Name, Age: in.Age}
	s.nextID++
	s.residents = append(s.residents, r)
	s.resized()
	return r, nil
}

// List returns a snapshot of all residents in insertion order. Never nil.
func (s *InMemory) List(_ context.Context) ([]models.Resident, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Resident, len(s.residents))
	copy(out, s.residents)
	return out, nil
}

// Delete removes the resident with the given ID. The ID counter is untouched.
func (s *InMemory) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.IndexFunc(s.residents, func(r models.Resident) bool { return r.ID == id })
	if idx < 0 {
		return sentinel.ErrNotFound
	}
	s.residents = slices.Delete(s.residents, idx, idx+1)
	s.resized()
	return nil
}

// Count returns the number of stored residents.
func (s *InMemory) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.residents), nil
}

// resized must be called with mu held for writing.
func (s *InMemory) resized() {
	if s.onResize != nil {
		s.onResize(len(s.residents))
	}
}
