package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bnema/webex-claude-bridge/internal/adapters/allowlist"
	"github.com/bnema/webex-claude-bridge/internal/adapters/render/card"
	"github.com/bnema/webex-claude-bridge/internal/application"
	"github.com/bnema/webex-claude-bridge/internal/config"
	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the bot and poll Webex until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.load(cmd); err != nil {
				return err
			}
			logger := app.logger
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			token, err := app.botToken(ctx)
			if err != nil {
				return err
			}

			client := app.webexClient(token)
			if _, err := client.Start(ctx); err != nil {
				return err
			}

			allowed := allowlist.New(app.cfg.Auth.AllowedEmails)
			if allowed.Len() == 0 {
				logger.Warn("allow-list is empty; every sender will be ignored", zap.String("config", app.repo.Path()))
			}
			app.watchAllowlist(allowed)

			bridge := app.bridge()
			if path, err := bridge.Available(); err != nil {
				logger.Warn("claude CLI not found; turns will fail until it is installed", zap.Error(err))
			} else {
				logger.Info("claude CLI found", zap.String("path", path))
			}

			bot := application.NewBot(application.BotDeps{
				Chat:     client,
				Catalog:  app.catalog(),
				Backend:  bridge,
				Renderer: card.Renderer{Home: app.home},
				Clock:    ports.SystemClock{},
				Logger:   logger.Named("bot"),
			}, application.NewConversationStore(), application.BotConfig{
				MaxMessageBytes: app.cfg.Webex.MaxMessageBytes,
			})

			poller := application.NewPoller(client, allowed, bot, application.PollerConfig{
				Interval:    app.cfg.Poll.Interval,
				MaxRooms:    app.cfg.Poll.MaxRooms,
				MaxMessages: app.cfg.Poll.MaxMessages,
			}, logger.Named("poller"))

			if err := poller.Run(ctx); err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					return fmt.Errorf("webex rejected the bot token: %w", err)
				}
				return err
			}

			logger.Info("shutdown complete")
			return nil
		},
	}
}

// watchAllowlist reloads the allow-list whenever the config file changes.
// Other settings need a restart.
func (a *app) watchAllowlist(allowed *allowlist.Allowlist) {
	if !a.repo.Exists() {
		return
	}

	logger := a.logger.Named("config")
	a.viper.OnConfigChange(func(event fsnotify.Event) {
		if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
			return
		}
		emails := config.NormalizeEmails(a.viper.GetStringSlice(config.KeyAuthAllowedEmails))
		allowed.Replace(emails)
		logger.Info("allow-list reloaded", zap.String("file", event.Name), zap.Int("emails", len(emails)))
	})
	a.viper.WatchConfig()
}
