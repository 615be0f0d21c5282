package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTranscript(t *testing.T, home, project, id, body string) string {
	t.Helper()

	dir := filepath.Join(home, "projects", project)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, id+".jsonl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func writeHistory(t *testing.T, home string, lines ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(home, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "history.jsonl"), []byte(strings.Join(lines, "\n")+"\n"), 0o644))
}

func TestListRecentOrdersByLastActivity(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	writeTranscript(t, home, "-home-me-api", "sess-a", `{"cwd":"/home/me/api"}`)
	writeTranscript(t, home, "-home-me-web", "sess-b", `{"cwd":"/home/me/web"}`)
	writeHistory(t, home,
		`{"display":"first prompt","timestamp":1700000000000,"project":"/home/me/api","sessionId":"sess-a"}`,
		`{"display":"web work","timestamp":1700000100000,"project":"/home/me/web","sessionId":"sess-b"}`,
		`{"display":"latest api prompt","timestamp":1700000200000,"project":"/home/me/api","sessionId":"sess-a"}`,
		`not json`,
		`{"display":"deleted session","timestamp":1700000300000,"project":"/tmp","sessionId":"sess-gone"}`,
	)

	catalog := NewCatalog(home, nil)
	sessions, err := catalog.ListRecent(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, sessions, 2)

	assert.Equal(t, "sess-a", sessions[0].ID)
	assert.Equal(t, "latest api prompt", sessions[0].DisplayName)
	assert.Equal(t, "/home/me/api", sessions[0].CWD)
	assert.Equal(t, time.UnixMilli(1700000200000), sessions[0].LastActivity)
	assert.Equal(t, "sess-b", sessions[1].ID)
}

func TestListRecentIncludesTranscriptsMissingFromHistory(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	path := writeTranscript(t, home, "-srv-tool", "sess-c", "{\"type\":\"file-history-snapshot\"}\n{\"cwd\":\"/srv/tool\",\"sessionId\":\"sess-c\"}\n")
	modTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, modTime, modTime))

	sessions, err := NewCatalog(home, nil).ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "/srv/tool", sessions[0].CWD)
	assert.Empty(t, sessions[0].DisplayName)
	assert.True(t, modTime.Equal(sessions[0].LastActivity))
}

func TestListRecentAppliesLimit(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	for _, id := range []string{"a", "b", "c"} {
		writeTranscript(t, home, "p", id, `{"cwd":"/p"}`)
	}

	sessions, err := NewCatalog(home, nil).ListRecent(context.Background(), 2)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestListRecentEmptyHome(t *testing.T) {
	t.Parallel()

	sessions, err := NewCatalog(filepath.Join(t.TempDir(), "missing"), nil).ListRecent(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	path := writeTranscript(t, home, "-home-me-api", "sess-a", `{"cwd":"/home/me/api"}`)
	writeHistory(t, home, `{"display":"hello","timestamp":1700000000000,"project":"/home/me/api","sessionId":"sess-a"}`)
	catalog := NewCatalog(home, nil)

	session, err := catalog.GetByID(context.Background(), "sess-a")
	require.NoError(t, err)
	assert.Equal(t, "hello", session.DisplayName)

	require.NoError(t, os.Remove(path))
	_, err = catalog.GetByID(context.Background(), "sess-a")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestListRecentHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	writeTranscript(t, home, "p", "a", `{"cwd":"/p"}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCatalog(home, nil).ListRecent(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestListRecentSkipsOversizedHistoryLine(t *testing.T) {
	t.Parallel()

	home := t.TempDir()
	writeTranscript(t, home, "-home-me-api", "sess-a", `{"cwd":"/home/me/api"}`)
	huge := `{"display":"` + strings.Repeat("x", maxLineBytes) + `","timestamp":1700000100000,"project":"/home/me/api","sessionId":"sess-a"}`
	writeHistory(t, home,
		`{"display":"before","timestamp":1700000000000,"project":"/home/me/api","sessionId":"sess-a"}`,
		huge,
		`{"display":"after","timestamp":1700000200000,"project":"/home/me/api","sessionId":"sess-a"}`,
	)

	catalog := NewCatalog(home, nil)
	sessions, err := catalog.ListRecent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "after", sessions[0].DisplayName)

	session, err := catalog.GetByID(context.Background(), "sess-a")
	require.NoError(t, err)
	assert.Equal(t, "/home/me/api", session.CWD)
}

func TestReadLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		max   int
		want  []string
	}{
		{name: "plain", input: "a\nbb\nccc\n", max: 8, want: []string{"a", "bb", "ccc"}},
		{name: "no trailing newline", input: "a\nbb", max: 8, want: []string{"a", "bb"}},
		{name: "line at limit kept", input: "abcd\nx\n", max: 4, want: []string{"abcd", "x"}},
		{name: "long line dropped", input: "a\nabcdefgh\nb\n", max: 4, want: []string{"a", "b"}},
		{name: "crlf", input: "a\r\nb\r\n", max: 4, want: []string{"a", "b"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got []string
			err := readLines(strings.NewReader(tt.input), tt.max, func(line []byte) bool {
				got = append(got, string(line))
				return true
			})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadLinesDropsLineLongerThanReaderBuffer(t *testing.T) {
	t.Parallel()

	input := "keep\n" + strings.Repeat("y", 200*1024) + "\nlast\n"
	var got []string
	err := readLines(strings.NewReader(input), 100*1024, func(line []byte) bool {
		got = append(got, string(line))
		return true
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep", "last"}, got)
}
