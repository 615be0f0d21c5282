package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newTokenCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Manage the stored Webex bot token",
	}

	cmd.AddCommand(newTokenSetCmd(app), newTokenRemoveCmd(app))
	return cmd
}

func newTokenSetCmd(app *app) *cobra.Command {
	var value string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store the bot token (reads stdin when --value is omitted)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}

			token := value
			if token == "" {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read token from stdin: %w", err)
				}
				token = line
			}
			if strings.TrimSpace(token) == "" {
				return errors.New("no token given: pass --value or pipe it on stdin")
			}

			creds := app.credentials()
			if err := creds.StoreBotToken(cmd.Context(), token); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Stored bot token as %s\n", creds.Ref())
			return err
		},
	}

	cmd.Flags().StringVar(&value, "value", "", "Bot token value")
	return cmd
}

func newTokenRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the stored bot token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}

			creds := app.credentials()
			if err := creds.RemoveBotToken(cmd.Context()); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Removed bot token %s\n", creds.Ref())
			return err
		},
	}
}
