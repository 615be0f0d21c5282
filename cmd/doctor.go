package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type checkResult struct {
	name   string
	ok     bool
	warn   bool
	detail string
}

type doctorCheck struct {
	name string
	run  func(ctx context.Context) checkResult
}

func newDoctorCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the token, the Claude CLI and the session catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}
			// Findings go to the report; log lines would garble the spinner.
			app.logger = zap.NewNop()

			results, err := runChecks(cmd.Context(), cmd.ErrOrStderr(), app.doctorChecks())
			if err != nil {
				return err
			}

			return writeDoctorReport(cmd, results)
		},
	}
}

func (a *app) doctorChecks() []doctorCheck {
	return []doctorCheck{
		{name: "webex", run: a.checkWebex},
		{name: "claude", run: a.checkClaude},
		{name: "catalog", run: a.checkCatalog},
		{name: "allow-list", run: a.checkAllowlist},
	}
}

func (a *app) checkWebex(ctx context.Context) checkResult {
	token, err := a.botToken(ctx)
	if err != nil {
		return checkResult{name: "webex", detail: err.Error()}
	}

	identity, err := a.webexClient(token).Start(ctx)
	if err != nil {
		return checkResult{name: "webex", detail: err.Error()}
	}

	return checkResult{name: "webex", ok: true, detail: fmt.Sprintf("authenticated as %s", identity.DisplayName)}
}

func (a *app) checkClaude(_ context.Context) checkResult {
	path, err := a.bridge().Available()
	if err != nil {
		return checkResult{name: "claude", detail: err.Error()}
	}
	return checkResult{name: "claude", ok: true, detail: path}
}

func (a *app) checkCatalog(ctx context.Context) checkResult {
	if _, err := os.Stat(a.cfg.Claude.Home); err != nil {
		return checkResult{name: "catalog", detail: fmt.Sprintf("claude home %s: %v", a.cfg.Claude.Home, err)}
	}

	sessions, err := a.catalog().ListRecent(ctx, 0)
	if err != nil {
		return checkResult{name: "catalog", detail: err.Error()}
	}
	if len(sessions) == 0 {
		return checkResult{name: "catalog", ok: true, warn: true, detail: "no resumable sessions yet"}
	}
	return checkResult{name: "catalog", ok: true, detail: fmt.Sprintf("%d resumable sessions", len(sessions))}
}

func (a *app) checkAllowlist(_ context.Context) checkResult {
	n := len(a.cfg.Auth.AllowedEmails)
	if n == 0 {
		return checkResult{name: "allow-list", ok: true, warn: true, detail: "empty; the bot will ignore every sender"}
	}
	return checkResult{name: "allow-list", ok: true, detail: fmt.Sprintf("%d allowed emails", n)}
}

func writeDoctorReport(cmd *cobra.Command, results []checkResult) error {
	var (
		okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
		warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
		failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
		nameStyle = lipgloss.NewStyle().Width(12)
	)

	failed := 0
	for _, r := range results {
		mark := okStyle.Render("ok  ")
		switch {
		case !r.ok:
			mark = failStyle.Render("FAIL")
			failed++
		case r.warn:
			mark = warnStyle.Render("warn")
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", mark, nameStyle.Render(r.name), r.detail); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d checks failed", failed, len(results))
	}
	return nil
}
