package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tictactoe-client/internal/gameapi"
	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/prefs/file"
	"github.com/mcoot/tictactoe-client/internal/testutil"
)

type cliHarness struct {
	t         *testing.T
	fake      *testutil.FakeService
	prefsFile string
}

func newCLIHarness(t *testing.T) *cliHarness {
	t.Helper()
	t.Cleanup(func() { _ = closeApp() })
	return &cliHarness{
		t:         t,
		fake:      testutil.NewFakeService(t),
		prefsFile: filepath.Join(t.TempDir(), "prefs.json"),
	}
}

// run executes one CLI invocation in-process and returns stdout
func (h *cliHarness) run(args ...string) (string, error) {
	h.t.Helper()

	var stdout bytes.Buffer
	err := h.runContext(context.Background(), &stdout, args...)
	return stdout.String(), err
}

func (h *cliHarness) runContext(ctx context.Context, stdout io.Writer, args ...string) error {
	var stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{
		"--server", h.fake.URL(),
		"--prefs", "file",
		"--prefs-file", h.prefsFile,
	}, args...))

	err := cmd.ExecuteContext(ctx)
	_ = closeApp()
	return err
}

// syncBuffer is written from the update loop while the test reads it
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestUserCreate(t *testing.T) {
	h := newCLIHarness(t)

	out, err := h.run("user", "create", "--name", "alice", "--email", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, "[success] User alice created!\n", out)
	assert.Equal(t, 1, h.fake.Calls("create_user"))
}

func TestUserCreateConflict(t *testing.T) {
	h := newCLIHarness(t)
	h.fake.AddUser("alice", "")

	_, err := h.run("user", "create", "--name", "alice")
	require.Error(t, err)
	assert.Equal(t, "Failed to create a user : A User with that name already exists!", err.Error())
}

func TestUserCreateInvalidEmailNeverCallsService(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("user", "create", "--name", "alice", "--email", "nope")
	require.ErrorIs(t, err, model.ErrInvalidForm)
	assert.Equal(t, 0, h.fake.Calls("create_user"))
}

func TestGameNewStoresCurrentGame(t *testing.T) {
	h := newCLIHarness(t)
	h.fake.AddUser("alice", "")
	h.fake.AddUser("bob", "")

	out, err := h.run("--output", "json", "game", "new", "--player1", "alice", "--player2", "bob")
	require.NoError(t, err)

	var result NewGameResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, model.Succeeded("New game has been created! Players : alice bob"), result.Status)
	assert.Equal(t, model.GameKey("game-1"), result.GameKey)

	// A later invocation is a fresh view load and reads the key back
	out, err = h.run("--output", "json", "game", "current")
	require.NoError(t, err)

	var current CurrentGame
	require.NoError(t, json.Unmarshal([]byte(out), &current))
	assert.Equal(t, model.GameKey("game-1"), current.GameKey)
}

func TestGameGetDefaultsToCurrentGame(t *testing.T) {
	h := newCLIHarness(t)
	h.fake.AddUser("alice", "")
	h.fake.AddUser("bob", "")

	_, err := h.run("game", "new", "--player1", "alice", "--player2", "bob")
	require.NoError(t, err)

	out, err := h.run("--output", "json", "game", "get")
	require.NoError(t, err)

	var view GameView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, model.Table{URLSafeGameKey: "game-1", CurrentPlayer: model.PlayerX}, view.Table)
	assert.Equal(t, model.AlertSuccess, view.Status.AlertStatus)
	assert.True(t, view.Board.IsEmpty())
}

func TestGameGetExplicitKeyText(t *testing.T) {
	h := newCLIHarness(t)
	h.fake.AddGame(gameapi.GameForm{URLSafeKey: "abc123", CurrentPlayer: model.PlayerO, Message: "Your move"})

	out, err := h.run("game", "get", "abc123")
	require.NoError(t, err)
	assert.Contains(t, out, "[success] Get game succeded : Your move\n")
	assert.Contains(t, out, "Game: abc123\n")
	assert.Contains(t, out, "To play: PLAYER_O\n")
	assert.Contains(t, out, " 0 | .  .  . |")
}

func TestGameGetFailure(t *testing.T) {
	h := newCLIHarness(t)
	h.fake.Fail("get_game", "not found")

	_, err := h.run("game", "get", "abc123")
	require.Error(t, err)
	assert.Equal(t, "Failed to get game : not found", err.Error())
}

func TestGameGetWithoutCurrentGame(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("game", "get")
	require.Error(t, err)
	assert.Equal(t, 0, h.fake.Calls("get_game"))
}

func TestGameCurrentWhenNoneStored(t *testing.T) {
	h := newCLIHarness(t)

	out, err := h.run("game", "current")
	require.NoError(t, err)
	assert.Equal(t, "No current game\n", out)
}

func TestInvalidPrefsType(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("--prefs", "cloud", "game", "current")
	assert.Error(t, err)
}

func TestGameWatchPrintsKeyChanges(t *testing.T) {
	h := newCLIHarness(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var out syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- h.runContext(ctx, &out, "--output", "json", "game", "watch", "--interval", "10ms")
	}()

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte(`"game_key":""`))
	}, 2*time.Second, 10*time.Millisecond)

	// Another client stores a new current game in the same preference file
	require.NoError(t, file.New(h.prefsFile).Set(context.Background(), model.GameKeyPreference, "game-9"))

	require.Eventually(t, func() bool {
		return bytes.Contains([]byte(out.String()), []byte(`"game_key":"game-9"`))
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
}

func TestPrefsSetSwitchesCurrentGame(t *testing.T) {
	h := newCLIHarness(t)

	_, err := h.run("prefs", "get")
	require.Error(t, err)

	_, err = h.run("prefs", "set", "game_url_key", "game-42")
	require.NoError(t, err)

	out, err := h.run("prefs", "get")
	require.NoError(t, err)
	assert.Equal(t, "game-42\n", out)

	out, err = h.run("game", "current")
	require.NoError(t, err)
	assert.Equal(t, "Current game: game-42\n", out)
}
