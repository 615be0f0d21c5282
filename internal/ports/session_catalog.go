package ports

import (
	"context"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
)

type SessionCatalog interface {
	// ListRecent returns sessions ordered by last activity, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.Session, error)
	GetByID(ctx context.Context, id string) (domain.Session, error)
}

type SessionListRenderer interface {
	RenderSessionList(sessions []domain.Session, now time.Time) (Card, string)
}
