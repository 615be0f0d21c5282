package sessions

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/adapters/render/card"
	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	defaultLabelWidth = 40
	projectWidth      = 20
	pathWidth         = 36
	ellipsis          = "…"
	ageFadeWindow     = 7 * 24 * time.Hour
)

type RenderOptions struct {
	Now        time.Time
	Home       string
	LabelWidth int
	ShowIDs    bool
}

func renderView(sessions []domain.Session, cols columns, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Recent Claude sessions"),
		s.header.Render(fmt.Sprintf("sessions: %d", len(sessions))),
	}

	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No recent sessions found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, "")
	for i, session := range sessions {
		lines = append(lines, renderRow(i+1, session, cols, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRow(number int, session domain.Session, cols columns, opts RenderOptions, s styles) string {
	cells := []string{
		s.index.Render(fmt.Sprintf("%2d.", number)),
		s.label.Render(fitCell(session.Label(), cols.label)),
		s.project.Render(fitCell(session.ProjectName(), cols.project)),
		s.path.Render(fitCell(card.ShortPath(session.CWD, opts.Home), cols.path)),
		ageStyle(session.LastActivity, opts.Now).Render(ageLabel(session.LastActivity, opts.Now)),
	}
	if opts.ShowIDs {
		cells = append(cells, s.id.Render(session.ID))
	}

	return strings.Join(cells, "  ")
}

func cellWidth(text string) int {
	return runewidth.StringWidth(strings.Join(strings.Fields(text), " "))
}

// fitCell truncates or pads text to exactly width terminal columns.
func fitCell(text string, width int) string {
	text = strings.Join(strings.Fields(text), " ")
	if runewidth.StringWidth(text) > width {
		text = runewidth.Truncate(text, width, ellipsis)
	}
	return runewidth.FillRight(text, width)
}

func ageLabel(at, now time.Time) string {
	if at.IsZero() {
		return "unknown"
	}
	if now.IsZero() {
		return at.Format("2006-01-02 15:04")
	}
	return card.RelativeTime(at, now)
}

// ageStyle brightens recent sessions and fades older ones over a week.
func ageStyle(at, now time.Time) lipgloss.Style {
	if at.IsZero() || now.IsZero() {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	}

	fresh := ageFadeWindow.Seconds() - now.Sub(at).Seconds()
	return lipgloss.NewStyle().Foreground(interpolateColor(fresh, 0, ageFadeWindow.Seconds()))
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 is the faded end of the greyscale ramp, 255 the brightest.
	baseColor := 240.0
	targetColor := 255.0
	colorCode := int(baseColor + (targetColor-baseColor)*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}
