package toml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/config"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	configType      = "toml"
	configFileMode  = 0o600
	configDirMode   = 0o700
	tempFilePattern = ".config-*.toml.tmp"
)

var ErrConfigExists = errors.New("config file already exists")

// Repository owns the on-disk config file. Writes go through a temp file and
// a rename so a watcher never observes a partial file.
type Repository struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// NewRepository points cfg at the config file and reads it when present. An
// explicit file set with SetConfigFile wins over the default location.
func NewRepository(cfg *viper.Viper, home string) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.ConfigFileUsed()
	if path == "" {
		if home == "" {
			return nil, errors.New("resolve config path: home directory is empty")
		}
		path = config.DefaultPath(home)
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	cfg.SetConfigFile(path)
	cfg.SetConfigType(configType)

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return &Repository{path: path, mu: lockForPath(path)}, nil
}

func (r *Repository) Path() string {
	return r.path
}

func (r *Repository) Exists() bool {
	_, err := os.Stat(r.path)
	return err == nil
}

// Init writes cfg as a fresh config file. It refuses to replace an existing
// file unless force is set.
func (r *Repository) Init(ctx context.Context, cfg config.Config, force bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !force {
		if _, err := os.Stat(r.path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, r.path)
		}
	}

	return r.writeSchema(toSchema(cfg))
}

func (r *Repository) AllowedEmails(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	return config.NormalizeEmails(file.Auth.AllowedEmails), nil
}

// AddAllowedEmails appends the addresses not already present and returns
// the resulting list.
func (r *Repository) AddAllowedEmails(ctx context.Context, emails ...string) ([]string, error) {
	return r.updateAllowedEmails(ctx, func(current []string) []string {
		return config.NormalizeEmails(append(current, emails...))
	})
}

func (r *Repository) RemoveAllowedEmails(ctx context.Context, emails ...string) ([]string, error) {
	drop := make(map[string]struct{}, len(emails))
	for _, email := range config.NormalizeEmails(emails) {
		drop[email] = struct{}{}
	}

	return r.updateAllowedEmails(ctx, func(current []string) []string {
		kept := make([]string, 0, len(current))
		for _, email := range config.NormalizeEmails(current) {
			if _, ok := drop[email]; !ok {
				kept = append(kept, email)
			}
		}
		return kept
	})
}

func (r *Repository) updateAllowedEmails(ctx context.Context, update func([]string) []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	file.Auth.AllowedEmails = update(file.Auth.AllowedEmails)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := r.writeSchema(file); err != nil {
		return nil, err
	}

	return file.Auth.AllowedEmails, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read config file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode config file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.path), configDirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp config file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp config file: %w", err)
	}

	if err := tempFile.Chmod(configFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp config file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp config file: %w", err)
	}

	if err := os.Rename(tempName, r.path); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// formatDuration renders d the way a person would type it: 5m rather than
// 5m0s.
func formatDuration(d time.Duration) string {
	if d <= 0 {
		return ""
	}
	s := d.String()
	if strings.HasSuffix(s, "m0s") {
		s = strings.TrimSuffix(s, "0s")
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}
