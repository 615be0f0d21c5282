package card

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
)

const (
	schemaURL   = "http://adaptivecards.io/schemas/adaptive-card.json"
	cardVersion = "1.2"
	listTitle   = "Recent Sessions"
)

// Renderer builds the session list card. Home shortens paths under the
// user's home directory.
type Renderer struct {
	Home string
}

var _ ports.SessionListRenderer = Renderer{}

func (r Renderer) RenderSessionList(sessions []domain.Session, now time.Time) (ports.Card, string) {
	body := []any{
		map[string]any{
			"type":   "TextBlock",
			"text":   listTitle,
			"size":   "Medium",
			"weight": "Bolder",
		},
	}

	lines := []string{listTitle + "\n"}
	for i, s := range sessions {
		number := i + 1
		detail := fmt.Sprintf("%s · %s", ShortPath(s.CWD, r.Home), RelativeTime(s.LastActivity, now))

		body = append(body, sessionRow(number, s.Label(), detail))
		lines = append(lines, fmt.Sprintf("%d. %s", number, s.Label()), fmt.Sprintf("   %s\n", detail))
	}

	body = append(body, map[string]any{
		"type":      "Container",
		"separator": true,
		"style":     "accent",
		"items": []any{
			map[string]any{
				"type":   "TextBlock",
				"text":   "Reply with `/connect N` to connect to a session",
				"weight": "Bolder",
				"wrap":   true,
			},
		},
	})
	lines = append(lines, "Use /connect N to connect to a session.")

	card := ports.Card{
		"$schema": schemaURL,
		"type":    "AdaptiveCard",
		"version": cardVersion,
		"body":    body,
	}
	return card, strings.Join(lines, "\n")
}

func sessionRow(number int, label, detail string) map[string]any {
	return map[string]any{
		"type":      "Container",
		"separator": true,
		"items": []any{
			map[string]any{
				"type": "ColumnSet",
				"columns": []any{
					map[string]any{
						"type":  "Column",
						"width": "auto",
						"items": []any{
							map[string]any{"type": "TextBlock", "text": fmt.Sprint(number), "weight": "Bolder"},
						},
					},
					map[string]any{
						"type":  "Column",
						"width": "stretch",
						"items": []any{
							map[string]any{"type": "TextBlock", "text": label, "wrap": true},
							map[string]any{"type": "TextBlock", "text": detail, "size": "Small", "isSubtle": true, "spacing": "None"},
						},
					},
				},
			},
		},
	}
}

// RelativeTime renders the age of at relative to now in coarse buckets.
func RelativeTime(at, now time.Time) string {
	diff := now.Sub(at)
	if diff < time.Minute {
		return "just now"
	}

	minutes := int(diff / time.Minute)
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	days := hours / 24
	if days < 30 {
		return fmt.Sprintf("%dd ago", days)
	}
	return fmt.Sprintf("%dmo ago", days/30)
}

// ShortPath shows cwd relative to home when possible, otherwise its last two
// components.
func ShortPath(cwd, home string) string {
	if home != "" {
		home = filepath.Clean(home)
		if cwd == home {
			return "~"
		}
		if rel, ok := strings.CutPrefix(cwd, home+string(filepath.Separator)); ok {
			return "~/" + rel
		}
	}

	parts := strings.Split(strings.Trim(filepath.ToSlash(cwd), "/"), "/")
	if len(parts) > 2 {
		return ".../" + strings.Join(parts[len(parts)-2:], "/")
	}
	return cwd
}
