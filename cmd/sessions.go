package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/adapters/render/card"
	sessionsview "github.com/bnema/webex-claude-bridge/internal/adapters/render/sessions"
	"github.com/bnema/webex-claude-bridge/internal/application"
	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type sessionOutput struct {
	Index        int       `json:"index" yaml:"index"`
	ID           string    `json:"id" yaml:"id"`
	Label        string    `json:"label" yaml:"label"`
	Project      string    `json:"project" yaml:"project"`
	CWD          string    `json:"cwd" yaml:"cwd"`
	LastActivity time.Time `json:"last_activity" yaml:"last_activity"`
}

func newSessionsCmd(app *app) *cobra.Command {
	var (
		limit  int
		format string
		sendTo string
		all    bool
		showID bool
	)

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "List recent Claude sessions the bot can connect to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}

			fetch := max(limit, application.DefaultSessionFetchSize)
			sessions, err := app.catalog().ListRecent(cmd.Context(), fetch)
			if err != nil {
				return fmt.Errorf("list sessions: %w", err)
			}
			if all {
				if len(sessions) > limit {
					sessions = sessions[:limit]
				}
			} else {
				sessions = domain.PickListedSessions(sessions, limit)
			}

			if sendTo != "" {
				return sendSessionCard(cmd, app, sendTo, sessions)
			}

			return writeSessionsOutput(cmd, app, sessions, format, showID)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", application.DefaultSessionListSize, "Number of sessions to show")
	cmd.Flags().StringVar(&format, "format", formatTable, "Output format: table, json, yaml")
	cmd.Flags().StringVar(&sendTo, "send-to", "", "Send the session card to this Webex user instead of printing it")
	cmd.Flags().BoolVar(&all, "all", false, "Include sessions opened only for meta commands")
	cmd.Flags().BoolVar(&showID, "ids", false, "Show full session ids in the table")

	return cmd
}

func writeSessionsOutput(cmd *cobra.Command, app *app, sessions []domain.Session, format string, showID bool) error {
	switch normalizeFormat(format) {
	case formatJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(toSessionOutputs(sessions))
	case formatYAML:
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(toSessionOutputs(sessions)); err != nil {
			return err
		}
		return enc.Close()
	case formatTable, "":
		rendered, err := sessionsview.Render(sessions, sessionsview.RenderOptions{
			Now:     app.now(),
			Home:    app.home,
			ShowIDs: showID,
		})
		if err != nil {
			return fmt.Errorf("render sessions: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return err
	default:
		return fmt.Errorf("unknown format %q (want table, json or yaml)", format)
	}
}

func sendSessionCard(cmd *cobra.Command, app *app, email string, sessions []domain.Session) error {
	email = strings.TrimSpace(email)
	if len(sessions) == 0 {
		return fmt.Errorf("no recent sessions to send")
	}

	token, err := app.botToken(cmd.Context())
	if err != nil {
		return err
	}

	body, fallback := card.Renderer{Home: app.home}.RenderSessionList(sessions, app.now())
	if err := app.webexClient(token).SendCardToEmail(cmd.Context(), email, body, fallback); err != nil {
		return fmt.Errorf("send session card to %s: %w", email, err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Sent %d sessions to %s\n", len(sessions), email)
	return err
}

func toSessionOutputs(sessions []domain.Session) []sessionOutput {
	out := make([]sessionOutput, 0, len(sessions))
	for i, s := range sessions {
		out = append(out, sessionOutput{
			Index:        i + 1,
			ID:           s.ID,
			Label:        s.Label(),
			Project:      s.ProjectName(),
			CWD:          s.CWD,
			LastActivity: s.LastActivity,
		})
	}
	return out
}
