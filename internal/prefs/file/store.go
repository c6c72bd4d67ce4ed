package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs"
)

// Store keeps preferences in a JSON object on disk.
// The file is re-read on every Get so writes from other processes are seen.
type Store struct {
	mu   sync.Mutex
	path string
}

// New creates a file-backed preference store. The file is created on first Set.
func New(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns ~/.tttclient/prefs.json, falling back to a relative path
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".tttclient", "prefs.json")
	}
	return filepath.Join(home, ".tttclient", "prefs.json")
}

// Ensure Store implements the interface
var _ prefs.Store = (*Store)(nil)

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", model.ErrPreferenceNotFound
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.load()
	if err != nil {
		return err
	}
	values[key] = value

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *Store) load() (map[string]string, error) {
	values := make(map[string]string)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil // No file yet is fine
		}
		return nil, err
	}

	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences %s: %w", s.path, err)
	}
	return values, nil
}
