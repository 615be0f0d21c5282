package toml

import (
	"fmt"

	"github.com/bnema/webex-claude-bridge/internal/config"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Webex   webexSchema   `toml:"webex"`
	Poll    pollSchema    `toml:"poll"`
	Claude  claudeSchema  `toml:"claude"`
	Auth    authSchema    `toml:"auth"`
	Logging loggingSchema `toml:"logging"`
	Secrets secretsSchema `toml:"secrets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Auth.AllowedEmails == nil {
		s.Auth.AllowedEmails = []string{}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported config schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

// Token is carried through updates of a hand-edited file; Init never fills it.
type webexSchema struct {
	BaseURL         string `toml:"base_url,omitempty"`
	Token           string `toml:"token,omitempty"`
	TokenRef        string `toml:"token_ref,omitempty"`
	RequestTimeout  string `toml:"request_timeout,omitempty"`
	MaxMessageBytes int    `toml:"max_message_bytes,omitempty"`
}

type pollSchema struct {
	Interval    string `toml:"interval,omitempty"`
	MaxRooms    int    `toml:"max_rooms,omitempty"`
	MaxMessages int    `toml:"max_messages,omitempty"`
}

type claudeSchema struct {
	Binary  string `toml:"binary,omitempty"`
	Timeout string `toml:"timeout,omitempty"`
	Home    string `toml:"home,omitempty"`
}

type authSchema struct {
	AllowedEmails []string `toml:"allowed_emails"`
}

type loggingSchema struct {
	Level  string `toml:"level,omitempty"`
	Format string `toml:"format,omitempty"`
}

type secretsSchema struct {
	Dir     string `toml:"dir,omitempty"`
	Backend string `toml:"backend,omitempty"`
}

func toSchema(cfg config.Config) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Webex: webexSchema{
			BaseURL:         cfg.Webex.BaseURL,
			TokenRef:        cfg.Webex.TokenRef,
			RequestTimeout:  formatDuration(cfg.Webex.RequestTimeout),
			MaxMessageBytes: cfg.Webex.MaxMessageBytes,
		},
		Poll: pollSchema{
			Interval:    formatDuration(cfg.Poll.Interval),
			MaxRooms:    cfg.Poll.MaxRooms,
			MaxMessages: cfg.Poll.MaxMessages,
		},
		Claude: claudeSchema{
			Binary:  cfg.Claude.Binary,
			Timeout: formatDuration(cfg.Claude.Timeout),
			Home:    cfg.Claude.Home,
		},
		Auth:    authSchema{AllowedEmails: config.NormalizeEmails(cfg.Auth.AllowedEmails)},
		Logging: loggingSchema{Level: cfg.Logging.Level, Format: cfg.Logging.Format},
		Secrets: secretsSchema{Dir: cfg.Secrets.Dir, Backend: cfg.Secrets.Backend},
	}
	file.applyDefaults()
	return file
}
