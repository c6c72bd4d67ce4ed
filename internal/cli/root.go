package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-client/internal/factory"
)

var (
	cfg  *Config
	app  *factory.App
	stop context.CancelFunc
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "tttclient",
		Short: "CLI client for the tic_tac_toe game API",
		Long: `tttclient drives the tic_tac_toe game API from the terminal.

It creates users, starts games and loads them. The key of the most recently
created game is remembered in a preference store (a file by default, or redis)
so later commands can refer to "the current game".`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			fc := cfg.FactoryConfig()
			fc.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			var err error
			app, err = factory.New(fc)
			if err != nil {
				return err
			}

			var ctx context.Context
			ctx, stop = context.WithCancel(cmd.Context())
			app.Start(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return closeApp()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Game API base URL (env: TTT_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.Prefs, "prefs", cfg.Prefs, "Preference store: file, redis, memory (env: TTT_PREFS)")
	rootCmd.PersistentFlags().StringVar(&cfg.PrefsFile, "prefs-file", cfg.PrefsFile, "Preference file path (env: TTT_PREFS_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL for --prefs=redis (env: TTT_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.Profile, "profile", cfg.Profile, "Preference profile for --prefs=redis (env: TTT_PROFILE)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newPrefsCmd())

	return rootCmd
}

// closeApp stops the update loop and releases the preference store.
// Cobra skips post-run hooks when a command fails, so Execute calls it too.
func closeApp() error {
	if stop != nil {
		stop()
		stop = nil
	}
	if app == nil {
		return nil
	}
	err := app.Close()
	app = nil
	return err
}

// Execute runs the root command
func Execute() {
	err := NewRootCmd().Execute()
	_ = closeApp()
	if err != nil {
		os.Exit(1)
	}
}
