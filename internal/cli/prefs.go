package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-client/internal/model"
)

func newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Read and write the preference store",
	}

	cmd.AddCommand(newPrefsGetCmd())
	cmd.AddCommand(newPrefsSetCmd())

	return cmd
}

func newPrefsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Print a preference (game_url_key when no key is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := model.GameKeyPreference
			if len(args) == 1 {
				key = args[0]
			}

			value, err := app.Store.Get(cmd.Context(), key)
			if errors.Is(err, model.ErrPreferenceNotFound) {
				return fmt.Errorf("%s is not set", key)
			}
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		},
	}
}

func newPrefsSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a preference, e.g. to switch the current game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Store.Set(cmd.Context(), args[0], args[1])
		},
	}
}
