package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runWCB(t, binaryPath, home, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	_, stderr, err = runWCB(t, binaryPath, home, "init", "--allow", "alice@example.com")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.FileExists(t, filepath.Join(home, ".config", "wcb", "config.toml"))

	stdout, stderr, err = runWCB(t, binaryPath, home, "allow", "list")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "alice@example.com\n", stdout)

	_, stderr, err = runWCB(t, binaryPath, home, "token", "set", "--value", "smoke-token")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runWCB(t, binaryPath, home, "sessions")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "No recent sessions found.")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "wcb-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/wcb")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build wcb binary: %s", string(output))
	return binaryPath
}

func runWCB(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "WCB_SECRETS_BACKEND=file", "WEBEX_BOT_TOKEN=")

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
