package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tictactoe-client/internal/model"
)

func TestGetBeforeFileExists(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "prefs.json"))

	_, err := s.Get(context.Background(), model.GameKeyPreference)
	assert.ErrorIs(t, err, model.ErrPreferenceNotFound)
}

func TestSetCreatesDirectoriesAndPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	ctx := context.Background()

	require.NoError(t, New(path).Set(ctx, model.GameKeyPreference, "abc123"))

	// A second store over the same file sees the value, like a new view load
	value, err := New(path).Get(ctx, model.GameKeyPreference)
	require.NoError(t, err)
	assert.Equal(t, "abc123", value)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestSetKeepsOtherKeys(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "prefs.json"))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "theme", "dark"))
	require.NoError(t, s.Set(ctx, model.GameKeyPreference, "abc123"))

	theme, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", theme)
}

func TestExternalWriteIsObserved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	s := New(path)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, model.GameKeyPreference, "first"))
	require.NoError(t, os.WriteFile(path, []byte(`{"game_url_key":"second"}`), 0600))

	value, err := s.Get(ctx, model.GameKeyPreference)
	require.NoError(t, err)
	assert.Equal(t, "second", value)
}

func TestCorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0600))

	_, err := New(path).Get(context.Background(), model.GameKeyPreference)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, model.ErrPreferenceNotFound)
}
