package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	AppDir    = "wcb"
	FileName  = "config.toml"
	EnvPrefix = "WCB"

	LegacyTokenEnv = "WEBEX_BOT_TOKEN"
)

const (
	KeyWebexBaseURL         = "webex.base_url"
	KeyWebexToken           = "webex.token"
	KeyWebexTokenRef        = "webex.token_ref"
	KeyWebexRequestTimeout  = "webex.request_timeout"
	KeyWebexMaxMessageBytes = "webex.max_message_bytes"
	KeyPollInterval         = "poll.interval"
	KeyPollMaxRooms         = "poll.max_rooms"
	KeyPollMaxMessages      = "poll.max_messages"
	KeyClaudeBinary         = "claude.binary"
	KeyClaudeTimeout        = "claude.timeout"
	KeyClaudeHome           = "claude.home"
	KeyAuthAllowedEmails    = "auth.allowed_emails"
	KeyLoggingLevel         = "logging.level"
	KeyLoggingFormat        = "logging.format"
	KeySecretsDir           = "secrets.dir"
	KeySecretsBackend       = "secrets.backend"
)

const (
	SecretsBackendAuto = "auto"
	SecretsBackendPass = "pass"
	SecretsBackendFile = "file"
)

type Config struct {
	Webex   WebexConfig
	Poll    PollConfig
	Claude  ClaudeConfig
	Auth    AuthConfig
	Logging LoggingConfig
	Secrets SecretsConfig
}

type WebexConfig struct {
	BaseURL         string
	Token           string
	TokenRef        string
	RequestTimeout  time.Duration
	MaxMessageBytes int
}

type PollConfig struct {
	Interval    time.Duration
	MaxRooms    int
	MaxMessages int
}

type ClaudeConfig struct {
	Binary  string
	Timeout time.Duration
	Home    string
}

type AuthConfig struct {
	AllowedEmails []string
}

type LoggingConfig struct {
	Level  string
	Format string
}

// SecretsConfig selects where the bot token is kept. auto tries pass first
// and falls back to files under Dir.
type SecretsConfig struct {
	Dir     string
	Backend string
}

// Defaults returns the settings used when neither the config file nor the
// environment provide a value. home is the user's home directory.
func Defaults(home string) Config {
	return Config{
		Webex: WebexConfig{
			BaseURL:         "https://webexapis.com/v1",
			TokenRef:        "webex/bot_token",
			RequestTimeout:  30 * time.Second,
			MaxMessageBytes: 7000,
		},
		Poll: PollConfig{
			Interval:    3 * time.Second,
			MaxRooms:    50,
			MaxMessages: 10,
		},
		Claude: ClaudeConfig{
			Binary:  "claude",
			Timeout: 5 * time.Minute,
			Home:    filepath.Join(home, ".claude"),
		},
		Auth:    AuthConfig{AllowedEmails: []string{}},
		Logging: LoggingConfig{Level: "info", Format: "console"},
		Secrets: SecretsConfig{
			Dir:     filepath.Join(home, ".config", AppDir, "secrets"),
			Backend: SecretsBackendAuto,
		},
	}
}

// DefaultPath is ~/.config/wcb/config.toml.
func DefaultPath(home string) string {
	return filepath.Join(home, ".config", AppDir, FileName)
}

// Register installs defaults and environment bindings on v. Environment
// variables use the WCB_ prefix with dots replaced by underscores, and the
// bot token is also read from WEBEX_BOT_TOKEN.
func Register(v *viper.Viper, home string) error {
	d := Defaults(home)

	v.SetDefault(KeyWebexBaseURL, d.Webex.BaseURL)
	v.SetDefault(KeyWebexToken, "")
	v.SetDefault(KeyWebexTokenRef, d.Webex.TokenRef)
	v.SetDefault(KeyWebexRequestTimeout, d.Webex.RequestTimeout)
	v.SetDefault(KeyWebexMaxMessageBytes, d.Webex.MaxMessageBytes)
	v.SetDefault(KeyPollInterval, d.Poll.Interval)
	v.SetDefault(KeyPollMaxRooms, d.Poll.MaxRooms)
	v.SetDefault(KeyPollMaxMessages, d.Poll.MaxMessages)
	v.SetDefault(KeyClaudeBinary, d.Claude.Binary)
	v.SetDefault(KeyClaudeTimeout, d.Claude.Timeout)
	v.SetDefault(KeyClaudeHome, d.Claude.Home)
	v.SetDefault(KeyAuthAllowedEmails, d.Auth.AllowedEmails)
	v.SetDefault(KeyLoggingLevel, d.Logging.Level)
	v.SetDefault(KeyLoggingFormat, d.Logging.Format)
	v.SetDefault(KeySecretsDir, d.Secrets.Dir)
	v.SetDefault(KeySecretsBackend, d.Secrets.Backend)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv(KeyWebexToken, EnvPrefix+"_WEBEX_TOKEN", LegacyTokenEnv); err != nil {
		return fmt.Errorf("bind %s: %w", KeyWebexToken, err)
	}

	return nil
}

// FromViper reads and validates the effective settings.
func FromViper(v *viper.Viper) (Config, error) {
	home, _ := os.UserHomeDir()

	cfg := Config{
		Webex: WebexConfig{
			BaseURL:         strings.TrimRight(strings.TrimSpace(v.GetString(KeyWebexBaseURL)), "/"),
			Token:           strings.TrimSpace(v.GetString(KeyWebexToken)),
			TokenRef:        strings.TrimSpace(v.GetString(KeyWebexTokenRef)),
			RequestTimeout:  v.GetDuration(KeyWebexRequestTimeout),
			MaxMessageBytes: v.GetInt(KeyWebexMaxMessageBytes),
		},
		Poll: PollConfig{
			Interval:    v.GetDuration(KeyPollInterval),
			MaxRooms:    v.GetInt(KeyPollMaxRooms),
			MaxMessages: v.GetInt(KeyPollMaxMessages),
		},
		Claude: ClaudeConfig{
			Binary:  strings.TrimSpace(v.GetString(KeyClaudeBinary)),
			Timeout: v.GetDuration(KeyClaudeTimeout),
			Home:    ExpandHome(v.GetString(KeyClaudeHome), home),
		},
		Auth: AuthConfig{AllowedEmails: NormalizeEmails(v.GetStringSlice(KeyAuthAllowedEmails))},
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLoggingLevel),
			Format: v.GetString(KeyLoggingFormat),
		},
		Secrets: SecretsConfig{
			Dir:     ExpandHome(v.GetString(KeySecretsDir), home),
			Backend: strings.ToLower(strings.TrimSpace(v.GetString(KeySecretsBackend))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.Webex.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeyWebexBaseURL))
	}
	if c.Webex.RequestTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyWebexRequestTimeout))
	}
	if c.Webex.MaxMessageBytes <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyWebexMaxMessageBytes))
	}
	if c.Poll.Interval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPollInterval))
	}
	if c.Poll.MaxRooms <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPollMaxRooms))
	}
	if c.Poll.MaxMessages <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyPollMaxMessages))
	}
	if c.Claude.Binary == "" {
		errs = append(errs, fmt.Errorf("%s is empty", KeyClaudeBinary))
	}
	if c.Claude.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", KeyClaudeTimeout))
	}
	switch c.Secrets.Backend {
	case SecretsBackendAuto, SecretsBackendPass, SecretsBackendFile:
	default:
		errs = append(errs, fmt.Errorf("%s must be one of auto, pass, file", KeySecretsBackend))
	}
	return errors.Join(errs...)
}

// NormalizeEmails lowercases and trims addresses, dropping blanks and
// duplicates while keeping the first-seen order.
func NormalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	seen := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email == "" {
			continue
		}
		if _, ok := seen[email]; ok {
			continue
		}
		seen[email] = struct{}{}
		out = append(out, email)
	}
	return out
}

func ExpandHome(path, home string) string {
	path = strings.TrimSpace(path)
	if home == "" {
		return path
	}
	if path == "~" {
		return home
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(home, rest)
	}
	return path
}
