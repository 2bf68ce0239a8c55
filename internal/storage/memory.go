package storage

import (
	"sync"

	"github.com/kamstrup/intmap"
)

// MemoryStore keeps high score records in process memory.
// It is the fallback when the database cannot be opened; records are lost on exit.
type MemoryStore struct {
	mu     sync.Mutex
	scores *intmap.Map[uint32, int64]
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scores: intmap.New[uint32, int64](4)}
}

// LoadHighScore returns the record for id, or 0.
func (m *MemoryStore) LoadHighScore(id uint32) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, _ := m.scores.Get(id)
	return v, nil
}

// SaveHighScore overwrites the record for id.
func (m *MemoryStore) SaveHighScore(id uint32, value int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scores.Put(id, value)
	return nil
}
