package memory

import (
	"context"
	"sync"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs"
)

// Store is an in-memory preference store
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// New creates a new in-memory preference store
func New() *Store {
	return &Store{
		values: make(map[string]string),
	}
}

// Ensure Store implements the interface
var _ prefs.Store = (*Store)(nil)

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", model.ErrPreferenceNotFound
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}
