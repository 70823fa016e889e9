package repository

import (
	"context"
	"sync"

	"github.com/lumina-reserve/backend/internal/models"
)

// InMemoryOverrideStore keeps the encoded entry in memory. Nothing survives
// a restart.
type InMemoryOverrideStore struct {
	mu   sync.RWMutex
	data []byte
}

// NewInMemoryOverrideStore creates an empty in-memory store
func NewInMemoryOverrideStore() *InMemoryOverrideStore {
	return &InMemoryOverrideStore{}
}

// Load decodes the stored entry
func (s *InMemoryOverrideStore) Load(ctx context.Context) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return decodeOverrides(s.data)
}

// Save replaces the stored entry
func (s *InMemoryOverrideStore) Save(ctx context.Context, events []models.Event) error {
	data, err := encodeOverrides(events)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = data
	return nil
}
