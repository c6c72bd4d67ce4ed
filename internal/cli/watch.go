package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/viewstate"
)

func newGameWatchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the current game key whenever it changes",
		Long: `Watch the preference store and print the current game key each time it
changes, for example when another terminal or browser creates a new game
against the same store.

Press Ctrl+C to stop.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return watchCurrentGame(ctx, cmd.OutOrStdout(), interval)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", time.Second, "How often to re-check the store")

	return cmd
}

// KeyChange is one observed change of the current game key
type KeyChange struct {
	Time     time.Time     `json:"time"`
	GameKey  model.GameKey `json:"game_key"`
	Previous model.GameKey `json:"previous,omitempty"`
}

func watchCurrentGame(ctx context.Context, w io.Writer, interval time.Duration) error {
	// The callbacks run on the loop; bind what they need up front
	app, format := app, cfg.Output

	var scope *viewstate.Scope
	if err := app.Loop.Do(ctx, func() {
		scope = app.Root.Scope().New()
		viewstate.Watch(scope, app.Root.CurrentGameKey, func(value, previous model.GameKey) {
			if value == previous {
				previous = ""
			}
			printKeyChange(w, format, KeyChange{Time: app.Clock.Now(), GameKey: value, Previous: previous})
		})
	}); err != nil {
		return err
	}
	defer app.Loop.Post(scope.Destroy)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			// Any task triggers a digest, which re-reads the store
			app.Loop.Post(func() {})
		}
	}
}

func printKeyChange(w io.Writer, format string, change KeyChange) {
	if format == "json" {
		data, _ := json.Marshal(change)
		_, _ = fmt.Fprintln(w, string(data))
		return
	}

	timestamp := change.Time.Format("2006-01-02 15:04:05")
	if change.GameKey == "" {
		_, _ = fmt.Fprintf(w, "[%s] no current game\n", timestamp)
		return
	}
	_, _ = fmt.Fprintf(w, "[%s] current game: %s\n", timestamp, change.GameKey)
}
