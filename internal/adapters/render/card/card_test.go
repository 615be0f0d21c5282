package card

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "future", at: now.Add(time.Hour), want: "just now"},
		{name: "seconds", at: now.Add(-59 * time.Second), want: "just now"},
		{name: "minutes", at: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours", at: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days", at: now.Add(-49 * time.Hour), want: "2d ago"},
		{name: "months", at: now.Add(-65 * 24 * time.Hour), want: "2mo ago"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, RelativeTime(tt.at, now))
		})
	}
}

func TestShortPath(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "~/src/bridge", ShortPath("/home/me/src/bridge", "/home/me"))
	assert.Equal(t, "~", ShortPath("/home/me", "/home/me"))
	assert.Equal(t, ".../srv/tool", ShortPath("/opt/srv/tool", "/home/me"))
	assert.Equal(t, ".../meta/x", ShortPath("/home/meta/x", "/home/me"))
	assert.Equal(t, "/tmp", ShortPath("/tmp", "/home/me"))
	assert.Equal(t, "/a/b", ShortPath("/a/b", ""))
}

func TestRenderSessionList(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
	sessions := []domain.Session{
		{ID: "sess-1", DisplayName: "fix login", CWD: "/home/me/app", LastActivity: now.Add(-10 * time.Minute)},
		{ID: "0123456789abcdef", CWD: "/opt/x/y/z", LastActivity: now.Add(-2 * time.Hour)},
	}

	card, fallback := Renderer{Home: "/home/me"}.RenderSessionList(sessions, now)

	assert.Equal(t, "Recent Sessions\n\n"+
		"1. fix login\n"+
		"   ~/app · 10m ago\n\n"+
		"2. 0123456789ab\n"+
		"   .../y/z · 2h ago\n\n"+
		"Use /connect N to connect to a session.", fallback)

	assert.Equal(t, "AdaptiveCard", card["type"])
	assert.Equal(t, "1.2", card["version"])

	encoded, err := json.Marshal(card)
	require.NoError(t, err)

	var decoded struct {
		Body []struct {
			Type  string `json:"type"`
			Text  string `json:"text"`
			Style string `json:"style"`
		} `json:"body"`
	}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Len(t, decoded.Body, 4)
	assert.Equal(t, "Recent Sessions", decoded.Body[0].Text)
	assert.Equal(t, "Container", decoded.Body[1].Type)
	assert.Equal(t, "accent", decoded.Body[3].Style)
	assert.Contains(t, string(encoded), "~/app · 10m ago")
}
