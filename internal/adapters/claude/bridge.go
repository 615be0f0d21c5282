package claude

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultBinary  = "claude"
	DefaultTimeout = 5 * time.Minute

	nestedSessionEnv = "CLAUDECODE"
	waitDelay        = 5 * time.Second
	maxLoggedStderr  = 4096
)

const (
	noOutputMessage = "Claude completed the request but returned no output."
	credentialsHint = "\n\nThis may be an AWS credentials issue. Check your credentials."
	canceledMessage = "Request was cancelled before Claude finished."
)

type Config struct {
	Binary  string
	Timeout time.Duration
}

// Bridge runs one print-mode turn of the claude CLI per message.
type Bridge struct {
	binary   string
	timeout  time.Duration
	logger   *zap.Logger
	lookPath func(string) (string, error)
}

var _ ports.Backend = (*Bridge)(nil)

func NewBridge(cfg Config, logger *zap.Logger) *Bridge {
	if cfg.Binary == "" {
		cfg.Binary = DefaultBinary
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Bridge{
		binary:   cfg.Binary,
		timeout:  cfg.Timeout,
		logger:   logger,
		lookPath: exec.LookPath,
	}
}

// Available reports whether the CLI can be found.
func (b *Bridge) Available() (string, error) {
	path, err := b.lookPath(b.binary)
	if err != nil {
		return "", fmt.Errorf("locate %s: %w", b.binary, err)
	}
	return path, nil
}

func (b *Bridge) Invoke(ctx context.Context, req ports.BackendRequest) string {
	path, err := b.lookPath(b.binary)
	if err != nil {
		b.logger.Error("claude CLI not found", zap.String("binary", b.binary), zap.Error(err))
		return notFoundMessage(b.binary)
	}

	runCtx, cancel := context.WithTimeout(ctx, b.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, path, buildArgs(req)...)
	cmd.Dir = req.WorkDir
	cmd.Env = withoutEnv(os.Environ(), nestedSessionEnv)
	cmd.WaitDelay = waitDelay
	setupProcessGroup(cmd)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger := b.logger.With(zap.String("session_id", req.SessionID), zap.String("cwd", req.WorkDir))
	logger.Info("invoking claude CLI", zap.Bool("skip_permissions", req.SkipPermissions))

	err = cmd.Run()
	switch {
	case ctx.Err() != nil:
		logger.Warn("claude CLI canceled", zap.Error(ctx.Err()))
		return canceledMessage
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		logger.Warn("claude CLI timed out, process killed", zap.Duration("timeout", b.timeout))
		return timeoutMessage(b.timeout)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			logger.Error("claude CLI failed to start", zap.Error(err))
			return fmt.Sprintf("Error: could not start the '%s' CLI. Check the bot logs for details.", b.binary)
		}

		errText := strings.TrimSpace(stderr.String())
		logger.Error("claude CLI exited with an error",
			zap.Int("exit_code", exitErr.ExitCode()),
			zap.String("stderr", truncate(errText, maxLoggedStderr)),
		)
		return exitMessage(exitErr.ExitCode(), errText)
	}

	if errText := strings.TrimSpace(stderr.String()); errText != "" {
		logger.Debug("claude CLI stderr", zap.String("stderr", truncate(errText, maxLoggedStderr)))
	}

	output := strings.TrimSpace(string(bytes.ToValidUTF8(stdout.Bytes(), []byte("\uFFFD"))))
	if output == "" {
		return noOutputMessage
	}
	return output
}

func buildArgs(req ports.BackendRequest) []string {
	args := []string{"--print", "--output-format", "text", "--resume", req.SessionID}
	if req.SkipPermissions {
		args = append(args, "--dangerously-skip-permissions")
	}
	return append(args, "--", req.Message)
}

func withoutEnv(env []string, name string) []string {
	prefix := name + "="
	out := make([]string, 0, len(env))
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return out
}

func notFoundMessage(binary string) string {
	return fmt.Sprintf("Error: '%s' CLI not found on PATH. Make sure Claude Code is installed.", binary)
}

func timeoutMessage(timeout time.Duration) string {
	seconds := strconv.FormatFloat(timeout.Seconds(), 'f', -1, 64)
	return fmt.Sprintf("Error: CLI timed out after %s seconds. The process was killed.", seconds)
}

func exitMessage(code int, stderr string) string {
	msg := fmt.Sprintf("Claude encountered an error (exit code %d). Try sending your message again, or disconnect and reconnect.", code)
	lowered := strings.ToLower(stderr)
	if strings.Contains(lowered, "expired") || strings.Contains(lowered, "credential") {
		msg += credentialsHint
	}
	return msg
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
