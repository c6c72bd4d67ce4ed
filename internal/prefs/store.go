package prefs

import (
	"context"
	"errors"

	"github.com/mcoot/tictactoe-client/internal/model"
)

// Store is a small key/value preference store scoped to one client
// (a browser, a CLI profile). Values survive across view loads.
type Store interface {
	// Get returns model.ErrPreferenceNotFound if key has never been set
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Lookup reads key and folds "not found" into the empty string
func Lookup(ctx context.Context, s Store, key string) (string, error) {
	value, err := s.Get(ctx, key)
	if errors.Is(err, model.ErrPreferenceNotFound) {
		return "", nil
	}
	return value, err
}
