package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 3 * time.Second
	DefaultMaxRooms     = 50
	DefaultMaxMessages  = 10
)

type PollerConfig struct {
	Interval    time.Duration
	MaxRooms    int
	MaxMessages int
}

// Poller watches the bot's direct rooms and feeds new messages to the Bot.
// A cycle handles every new message of every room in chronological order,
// running turns to completion before moving on.
type Poller struct {
	chat    ports.ChatAPI
	auth    ports.Authorizer
	bot     *Bot
	cursors *CursorStore
	cfg     PollerConfig
	logger  *zap.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

func NewPoller(chat ports.ChatAPI, auth ports.Authorizer, bot *Bot, cfg PollerConfig, logger *zap.Logger) *Poller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultPollInterval
	}
	if cfg.MaxRooms <= 0 {
		cfg.MaxRooms = DefaultMaxRooms
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = DefaultMaxMessages
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Poller{
		chat:    chat,
		auth:    auth,
		bot:     bot,
		cursors: NewCursorStore(),
		cfg:     cfg,
		logger:  logger,
		sleep:   sleepWithContext,
	}
}

// Run polls until ctx is done, returning nil, or until the platform rejects
// the bot token.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("polling started", zap.Duration("interval", p.cfg.Interval))
	for {
		if err := p.PollOnce(ctx); err != nil {
			switch {
			case ctx.Err() != nil:
				return nil
			case errors.Is(err, domain.ErrUnauthorized):
				return err
			default:
				p.logger.Error("poll cycle failed", zap.Error(err))
			}
		}

		if err := p.sleep(ctx, p.cfg.Interval); err != nil {
			p.logger.Info("polling stopped")
			return nil
		}
	}
}

// PollOnce runs a single cycle over all direct rooms.
func (p *Poller) PollOnce(ctx context.Context) error {
	rooms, err := p.chat.ListDirectRooms(ctx, p.cfg.MaxRooms)
	if err != nil {
		return err
	}

	for _, room := range rooms {
		messages, err := p.chat.ListMessages(ctx, room.ID, p.cfg.MaxMessages)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) || ctx.Err() != nil {
				return err
			}
			p.logger.Warn("skip room this cycle", zap.String("room_id", room.ID), zap.Error(err))
			continue
		}

		initialized := p.cursors.Initialized(room.ID)
		fresh := p.cursors.Advance(room.ID, messages)
		if !initialized && len(messages) > 0 {
			p.logger.Info("tracking room", zap.String("room_id", room.ID), zap.String("title", room.Title))
		}

		for _, msg := range fresh {
			if err := p.handle(ctx, room.ID, msg); err != nil {
				return fmt.Errorf("room %s: %w", room.ID, err)
			}
		}
	}
	return nil
}

func (p *Poller) handle(ctx context.Context, roomID string, msg domain.Message) error {
	if msg.PersonID == p.chat.BotID() {
		return nil
	}
	if !p.auth.IsAuthorized(msg.PersonEmail) {
		p.logger.Debug("ignoring message from unauthorized sender", zap.String("room_id", roomID), zap.String("email", msg.PersonEmail))
		return nil
	}
	text := msg.Body()
	if text == "" {
		return nil
	}

	p.logger.Info("message received", zap.String("room_id", roomID), zap.String("email", msg.PersonEmail), zap.Int("length", len(text)))

	turn, err := p.bot.Dispatch(ctx, roomID, text)
	if err != nil {
		return err
	}
	if turn == nil {
		return nil
	}
	return turn.Run(ctx)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
