package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
	"go.uber.org/zap"
)

// Turn is one accepted conversational message. The room stays busy until Run
// returns.
type Turn struct {
	bot     *Bot
	roomID  string
	guard   *TurnGuard
	request ports.BackendRequest
}

// Run posts a placeholder, invokes the backend and delivers the reply in
// chunks, replacing the placeholder with the first one. Failures are
// reported in the room; only unrecoverable errors are returned.
func (t *Turn) Run(ctx context.Context) error {
	defer t.guard.End()

	logger := t.bot.logger.With(zap.String("room_id", t.roomID), zap.String("session_id", t.request.SessionID))

	placeholder, err := t.bot.chat.SendMessage(ctx, t.roomID, placeholderReply)
	if err != nil {
		return t.fail(ctx, logger, "", err)
	}

	started := time.Now()
	output := t.bot.backend.Invoke(ctx, t.request)
	chunks := domain.SplitMessage(output, t.bot.cfg.MaxMessageBytes)
	logger.Info("turn completed", zap.Duration("elapsed", time.Since(started)), zap.Int("chunks", len(chunks)))

	if err := t.deliverFirst(ctx, logger, placeholder.ID, chunks[0]); err != nil {
		return t.fail(ctx, logger, placeholder.ID, err)
	}

	for _, chunk := range chunks[1:] {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		if _, err := t.bot.chat.SendMessage(ctx, t.roomID, chunk); err != nil {
			return t.fail(ctx, logger, placeholder.ID, err)
		}
	}
	return nil
}

func (t *Turn) deliverFirst(ctx context.Context, logger *zap.Logger, placeholderID string, first string) error {
	if placeholderID != "" {
		err := t.bot.chat.EditMessage(ctx, placeholderID, t.roomID, first)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrUnauthorized) {
			return err
		}
		logger.Warn("could not replace placeholder, sending a new message", zap.String("message_id", placeholderID), zap.Error(err))
	}

	_, err := t.bot.chat.SendMessage(ctx, t.roomID, first)
	return err
}

func (t *Turn) fail(ctx context.Context, logger *zap.Logger, placeholderID string, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	if ctx.Err() != nil {
		logger.Warn("turn abandoned", zap.Error(err))
		return nil
	}

	logger.Error("turn failed", zap.Error(err))

	var notifyErr error
	if placeholderID != "" {
		notifyErr = t.bot.chat.EditMessage(ctx, placeholderID, t.roomID, genericErrorReply)
	}
	if placeholderID == "" || notifyErr != nil {
		_, notifyErr = t.bot.chat.SendMessage(ctx, t.roomID, genericErrorReply)
	}
	if notifyErr != nil {
		if errors.Is(notifyErr, domain.ErrUnauthorized) {
			return notifyErr
		}
		logger.Warn("could not report turn failure", zap.Error(notifyErr))
	}
	return nil
}
