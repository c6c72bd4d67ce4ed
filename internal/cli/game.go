package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/viewstate"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameNewCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameCurrentCmd())
	cmd.AddCommand(newGameWatchCmd())

	return cmd
}

func newGameNewCmd() *cobra.Command {
	var player1, player2 string

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a new game between two existing users",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := submitDialog(cmd.Context(), viewstate.DialogNewGame, func(d *viewstate.Dialog) *viewstate.Pending {
				h := d.NewGame()
				h.NewGame = model.NewGameForm{UserName1: player1, UserName2: player2}
				return h.Submit(cmd.Context(), h.NewGame.Validate())
			})
			if err != nil {
				return err
			}

			view, err := rootView(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(NewGameResult{Status: status, GameKey: view.CurrentGameKey})
			return nil
		},
	}

	cmd.Flags().StringVar(&player1, "player1", "", "First player's user name (required)")
	cmd.Flags().StringVar(&player2, "player2", "", "Second player's user name (required)")
	_ = cmd.MarkFlagRequired("player1")
	_ = cmd.MarkFlagRequired("player2")

	return cmd
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [key]",
		Short: "Load a game (the current game when no key is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			view, err := rootView(ctx)
			if err != nil {
				return err
			}

			key := view.CurrentGameKey
			if len(args) == 1 {
				key = model.GameKey(args[0])
			}
			if key == "" {
				return errors.New("no current game: pass a key or create one with 'game new'")
			}

			if err := getGame(ctx, key); err != nil {
				return err
			}

			view, err = rootView(ctx)
			if err != nil {
				return err
			}
			if err := statusErr(view.Status); err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(view)
			return nil
		},
	}
}

func newGameCurrentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show the key of the most recently created game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := rootView(cmd.Context())
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(CurrentGame{GameKey: view.CurrentGameKey})
			return nil
		},
	}
}

func getGame(ctx context.Context, key model.GameKey) error {
	var pending *viewstate.Pending
	if err := app.Loop.Do(ctx, func() {
		pending = app.Root.GetGame(ctx, key)
	}); err != nil {
		return err
	}
	return pending.Wait(ctx)
}
