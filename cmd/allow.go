package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAllowCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "allow",
		Short: "Manage the emails allowed to talk to the bot",
		Long:  "Edits auth.allowed_emails in the config file. A running bot picks up the change without a restart.",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "Show allowed emails",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := app.load(cmd); err != nil {
					return err
				}
				emails, err := app.repo.AllowedEmails(cmd.Context())
				if err != nil {
					return err
				}
				return writeEmails(cmd, emails)
			},
		},
		&cobra.Command{
			Use:   "add <email>...",
			Short: "Allow one or more emails",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.load(cmd); err != nil {
					return err
				}
				for _, email := range args {
					if !strings.Contains(email, "@") {
						return fmt.Errorf("%q is not an email address", email)
					}
				}
				emails, err := app.repo.AddAllowedEmails(cmd.Context(), args...)
				if err != nil {
					return err
				}
				return writeEmails(cmd, emails)
			},
		},
		&cobra.Command{
			Use:   "remove <email>...",
			Short: "Revoke one or more emails",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := app.load(cmd); err != nil {
					return err
				}
				emails, err := app.repo.RemoveAllowedEmails(cmd.Context(), args...)
				if err != nil {
					return err
				}
				return writeEmails(cmd, emails)
			},
		},
	)

	return cmd
}

func writeEmails(cmd *cobra.Command, emails []string) error {
	if len(emails) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No allowed emails; the bot ignores everyone.")
		return err
	}
	for _, email := range emails {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), email); err != nil {
			return err
		}
	}
	return nil
}
