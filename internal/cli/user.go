package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/viewstate"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User commands",
	}

	cmd.AddCommand(newUserCreateCmd())

	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user (names must be unique)",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := submitDialog(cmd.Context(), viewstate.DialogCreateUser, func(d *viewstate.Dialog) *viewstate.Pending {
				h := d.CreateUser()
				h.User = model.UserForm{UserName: name, Email: email}
				return h.Submit(cmd.Context(), h.User.Validate())
			})
			if err != nil {
				return err
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(status)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "User name (required)")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
