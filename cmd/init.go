package cmd

import (
	"fmt"

	"github.com/bnema/webex-claude-bridge/internal/config"
	"github.com/spf13/cobra"
)

func newInitCmd(app *app) *cobra.Command {
	var (
		force  bool
		emails []string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}

			cfg := config.Defaults(app.home)
			cfg.Auth.AllowedEmails = emails
			if err := app.repo.Init(cmd.Context(), cfg, force); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "Wrote %s\n", app.repo.Path()); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out, "Next: store the bot token with `wcb token set` and allow senders with `wcb allow add <email>`.")
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().StringSliceVar(&emails, "allow", nil, "Email allowed to talk to the bot (repeatable)")

	return cmd
}
