package ports

import (
	"context"

	"github.com/bnema/webex-claude-bridge/internal/domain"
)

// Card is an Adaptive Card body as sent in a message attachment.
type Card map[string]any

type ChatAPI interface {
	BotID() string
	ListDirectRooms(ctx context.Context, max int) ([]domain.Room, error)
	// ListMessages returns the newest messages of a room, newest first.
	ListMessages(ctx context.Context, roomID string, max int) ([]domain.Message, error)
	SendMessage(ctx context.Context, roomID string, markdown string) (domain.Message, error)
	SendCard(ctx context.Context, roomID string, card Card, fallback string) error
	EditMessage(ctx context.Context, messageID string, roomID string, markdown string) error
}

type Authorizer interface {
	IsAuthorized(email string) bool
}
