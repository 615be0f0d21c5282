package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/adapters/catalog"
	"github.com/bnema/webex-claude-bridge/internal/adapters/claude"
	tomlrepo "github.com/bnema/webex-claude-bridge/internal/adapters/repo/toml"
	chainstore "github.com/bnema/webex-claude-bridge/internal/adapters/secrets/chain"
	filestore "github.com/bnema/webex-claude-bridge/internal/adapters/secrets/file"
	passstore "github.com/bnema/webex-claude-bridge/internal/adapters/secrets/pass"
	"github.com/bnema/webex-claude-bridge/internal/adapters/webex"
	"github.com/bnema/webex-claude-bridge/internal/application"
	"github.com/bnema/webex-claude-bridge/internal/config"
	"github.com/bnema/webex-claude-bridge/internal/logutil"
	"github.com/bnema/webex-claude-bridge/internal/ports"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

// app holds the settings and adapters shared by commands. It is loaded on
// first use so flags are parsed before the config is read.
type app struct {
	flags  rootFlags
	viper  *viper.Viper
	home   string
	cfg    config.Config
	repo   *tomlrepo.Repository
	logger *zap.Logger
	now    func() time.Time
	loaded bool
}

func newApp() *app {
	return &app{
		viper: viper.New(),
		now:   time.Now,
	}
}

// load reads the config file and environment. Logs go to the command's
// stderr.
func (a *app) load(cmd *cobra.Command) error {
	if a.loaded {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	a.home = home

	if err := config.Register(a.viper, home); err != nil {
		return err
	}
	if a.flags.configPath != "" {
		a.viper.SetConfigFile(config.ExpandHome(a.flags.configPath, home))
	}

	repo, err := tomlrepo.NewRepository(a.viper, home)
	if err != nil {
		return fmt.Errorf("wire config repository: %w", err)
	}
	a.repo = repo

	if a.flags.logLevel != "" {
		a.viper.Set(config.KeyLoggingLevel, a.flags.logLevel)
	}
	if a.flags.logFormat != "" {
		a.viper.Set(config.KeyLoggingFormat, a.flags.logFormat)
	}

	cfg, err := config.FromViper(a.viper)
	if err != nil {
		return fmt.Errorf("invalid configuration in %s: %w", repo.Path(), err)
	}
	a.cfg = cfg

	logger, err := logutil.New(logutil.ConfigFromViper(a.viper), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger

	a.loaded = true
	return nil
}

func (a *app) secretStore() ports.SecretStore {
	switch a.cfg.Secrets.Backend {
	case config.SecretsBackendPass:
		return passstore.NewStore()
	case config.SecretsBackendFile:
		return filestore.NewStore(a.cfg.Secrets.Dir)
	default:
		return chainstore.NewPassFirstWithFileFallback(a.cfg.Secrets.Dir)
	}
}

func (a *app) credentials() *application.Credentials {
	return application.NewCredentials(a.secretStore(), a.cfg.Webex.TokenRef)
}

func (a *app) botToken(ctx context.Context) (string, error) {
	return a.credentials().BotToken(ctx, a.cfg.Webex.Token)
}

func (a *app) webexClient(token string) *webex.Client {
	return webex.NewClient(token,
		webex.WithBaseURL(a.cfg.Webex.BaseURL),
		webex.WithHTTPClient(&http.Client{Timeout: a.cfg.Webex.RequestTimeout}),
		webex.WithLogger(a.logger.Named("webex")),
	)
}

func (a *app) catalog() *catalog.Catalog {
	return catalog.NewCatalog(a.cfg.Claude.Home, a.logger.Named("catalog"))
}

func (a *app) bridge() *claude.Bridge {
	return claude.NewBridge(claude.Config{
		Binary:  a.cfg.Claude.Binary,
		Timeout: a.cfg.Claude.Timeout,
	}, a.logger.Named("claude"))
}

func normalizeFormat(format string) string {
	return strings.ToLower(strings.TrimSpace(format))
}
