package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bnema/webex-claude-bridge/internal/application"
	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestVersionPrintsBuildVersion(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestInitWritesConfigOnceUnlessForced(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "init", "--allow", "Alice@Example.com")
	require.NoError(t, err)
	configPath := filepath.Join(home, ".config", "wcb", "config.toml")
	assert.Contains(t, stdout, configPath)

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "alice@example.com")
	assert.Contains(t, string(data), "webexapis.com")

	_, _, err = executeCLI(t, home, "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = executeCLI(t, home, "init", "--force")
	require.NoError(t, err)
}

func TestInitHonorsConfigFlag(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(home, "custom", "wcb.toml")

	_, _, err := executeCLI(t, home, "--config", custom, "init")
	require.NoError(t, err)
	assert.FileExists(t, custom)
}

func TestAllowAddListRemove(t *testing.T) {
	home := t.TempDir()

	stdout, _, err := executeCLI(t, home, "allow", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ignores everyone")

	stdout, _, err = executeCLI(t, home, "allow", "add", "bob@example.com", "Alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com\nalice@example.com\n", stdout)

	_, _, err = executeCLI(t, home, "allow", "add", "not-an-email")
	require.Error(t, err)

	stdout, _, err = executeCLI(t, home, "allow", "remove", "BOB@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com\n", stdout)

	stdout, _, err = executeCLI(t, home, "allow", "list")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com\n", stdout)
}

func TestTokenSetAndRemoveUseFileBackend(t *testing.T) {
	home := t.TempDir()
	tokenPath := filepath.Join(home, ".config", "wcb", "secrets", "webex", "bot_token")

	stdout, _, err := executeCLI(t, home, "token", "set", "--value", "bot-secret")
	require.NoError(t, err)
	assert.Contains(t, stdout, application.DefaultTokenRef)

	data, err := os.ReadFile(tokenPath)
	require.NoError(t, err)
	assert.Equal(t, "bot-secret\n", string(data))

	_, _, err = executeCLI(t, home, "token", "remove")
	require.NoError(t, err)
	assert.NoFileExists(t, tokenPath)
}

func TestTokenSetReadsStdin(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLIWithInput(t, home, strings.NewReader("piped-secret\n"), "token", "set")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".config", "wcb", "secrets", "webex", "bot_token"))
	require.NoError(t, err)
	assert.Equal(t, "piped-secret\n", string(data))

	_, _, err = executeCLIWithInput(t, home, strings.NewReader(""), "token", "set")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no token given")
}

func TestSessionsTableListsCatalog(t *testing.T) {
	home := t.TempDir()
	writeCatalogFixture(t, home)

	stdout, _, err := executeCLI(t, home, "sessions")
	require.NoError(t, err)
	assert.Contains(t, stdout, "sessions: 2")
	assert.Contains(t, stdout, "refactor the poller")
	assert.Contains(t, stdout, "~/src/api")
	assert.NotContains(t, stdout, "/help")
}

func TestSessionsJSONAndYAMLOutput(t *testing.T) {
	home := t.TempDir()
	writeCatalogFixture(t, home)

	stdout, _, err := executeCLI(t, home, "sessions", "--format", "json")
	require.NoError(t, err)

	var sessions []sessionOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &sessions))
	require.Len(t, sessions, 2)
	assert.Equal(t, 1, sessions[0].Index)
	assert.Equal(t, "sess-api", sessions[0].ID)
	assert.Equal(t, "api", sessions[0].Project)

	stdout, _, err = executeCLI(t, home, "sessions", "--format", "yaml", "--limit", "1", "--all")
	require.NoError(t, err)

	var fromYAML []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &fromYAML))
	require.Len(t, fromYAML, 1)
	assert.Equal(t, "sess-api", fromYAML[0]["id"])

	_, _, err = executeCLI(t, home, "sessions", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestSessionsSendToPostsCardToEmail(t *testing.T) {
	home := t.TempDir()
	writeCatalogFixture(t, home)

	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "Bearer env-token", r.Header.Get("Authorization"))
		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(raw, &body))
		_, _ = w.Write([]byte(`{"id":"msg-1"}`))
	}))
	t.Cleanup(server.Close)

	t.Setenv("WCB_WEBEX_BASE_URL", server.URL)
	t.Setenv("WEBEX_BOT_TOKEN", "env-token")

	stdout, _, err := executeCLI(t, home, "sessions", "--send-to", "alice@example.com")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Sent 2 sessions to alice@example.com")
	assert.Equal(t, "alice@example.com", body["toPersonEmail"])
	assert.Contains(t, body["text"], "refactor the poller")
	assert.NotEmpty(t, body["attachments"])
}

func TestRunFailsWithoutToken(t *testing.T) {
	clearTokenEnv(t)
	_, _, err := executeCLI(t, t.TempDir(), "run")
	require.ErrorIs(t, err, application.ErrNoToken)
}

func TestRunStopsWhenTokenIsRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"The request requires a valid access token."}`))
	}))
	t.Cleanup(server.Close)

	t.Setenv("WCB_WEBEX_BASE_URL", server.URL)
	t.Setenv("WEBEX_BOT_TOKEN", "expired-token")

	_, _, err := executeCLI(t, t.TempDir(), "run")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDoctorReportsEveryCheck(t *testing.T) {
	home := t.TempDir()
	writeCatalogFixture(t, home)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people/me", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"bot-1","displayName":"Claude Bridge","emails":["bridge@webex.bot"]}`))
	}))
	t.Cleanup(server.Close)

	t.Setenv("WCB_WEBEX_BASE_URL", server.URL)
	t.Setenv("WEBEX_BOT_TOKEN", "env-token")
	t.Setenv("WCB_CLAUDE_BINARY", "sh")
	t.Setenv("WCB_AUTH_ALLOWED_EMAILS", "alice@example.com")

	stdout, _, err := executeCLI(t, home, "doctor")
	require.NoError(t, err, stdout)
	assert.Contains(t, stdout, "authenticated as Claude Bridge")
	assert.Contains(t, stdout, "3 resumable sessions")
	assert.Contains(t, stdout, "1 allowed emails")
	assert.NotContains(t, stdout, "FAIL")
}

func TestDoctorFailsWhenChecksFail(t *testing.T) {
	home := t.TempDir()
	clearTokenEnv(t)
	t.Setenv("WCB_CLAUDE_BINARY", "definitely-not-a-real-claude-binary")

	stdout, _, err := executeCLI(t, home, "doctor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checks failed")
	assert.Contains(t, stdout, "FAIL")
	assert.Contains(t, stdout, "wcb token set")
}

func TestInvalidConfigIsReported(t *testing.T) {
	home := t.TempDir()
	t.Setenv("WCB_POLL_INTERVAL", "-1s")

	_, _, err := executeCLI(t, home, "sessions")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poll.interval")
}

func clearTokenEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WEBEX_BOT_TOKEN", "")
	t.Setenv("WCB_WEBEX_TOKEN", "")
}

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	return executeCLIWithInput(t, home, strings.NewReader(""), args...)
}

func executeCLIWithInput(t *testing.T, home string, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("WCB_SECRETS_BACKEND", "file")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCatalogFixture(t *testing.T, home string) {
	t.Helper()

	claudeHome := filepath.Join(home, ".claude")
	transcripts := map[string]string{
		"sess-api":  filepath.Join(home, "src", "api"),
		"sess-web":  filepath.Join(home, "src", "web"),
		"sess-help": filepath.Join(home, "src", "web"),
	}
	for id, cwd := range transcripts {
		dir := filepath.Join(claudeHome, "projects", strings.ReplaceAll(cwd, string(filepath.Separator), "-"))
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, id+".jsonl"), []byte(`{"cwd":"`+cwd+`"}`+"\n"), 0o644))
	}

	history := strings.Join([]string{
		`{"display":"web styling","timestamp":1700000000000,"project":"` + transcripts["sess-web"] + `","sessionId":"sess-web"}`,
		`{"display":"/help","timestamp":1700000100000,"project":"` + transcripts["sess-help"] + `","sessionId":"sess-help"}`,
		`{"display":"refactor the poller","timestamp":1700000200000,"project":"` + transcripts["sess-api"] + `","sessionId":"sess-api"}`,
	}, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(claudeHome, "history.jsonl"), []byte(history), 0o644))
}
