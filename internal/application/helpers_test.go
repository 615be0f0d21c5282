package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/adapters/render/card"
	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const testRoom = "room-1"

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type botFixture struct {
	bot     *Bot
	chat    *mocks.MockChatAPI
	catalog *mocks.MockSessionCatalog
	backend *mocks.MockBackend
	sent    *sentLog
}

// sentLog records SendMessage bodies in order.
type sentLog struct {
	mu   sync.Mutex
	msgs []string
}

func (l *sentLog) add(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, text)
}

func (l *sentLog) all() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.msgs...)
}

func newBotFixture(t *testing.T, cfg BotConfig) botFixture {
	t.Helper()

	chat := mocks.NewMockChatAPI(t)
	catalog := mocks.NewMockSessionCatalog(t)
	backend := mocks.NewMockBackend(t)

	bot := NewBot(BotDeps{
		Chat:     chat,
		Catalog:  catalog,
		Backend:  backend,
		Renderer: card.Renderer{Home: "/home/me"},
		Clock:    fixedClock{now: testNow},
		Logger:   zaptest.NewLogger(t),
	}, NewConversationStore(), cfg)

	return botFixture{bot: bot, chat: chat, catalog: catalog, backend: backend, sent: &sentLog{}}
}

// recordReplies accepts any SendMessage and records its text.
func (f botFixture) recordReplies() {
	f.chat.EXPECT().SendMessage(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, markdown string) (domain.Message, error) {
			f.sent.add(markdown)
			return domain.Message{ID: "sent-" + markdown}, nil
		}).Maybe()
}

func (f botFixture) connect(t *testing.T, session domain.Session) {
	t.Helper()

	f.bot.store.CacheSessionList(testRoom, []domain.Session{session})
	f.catalog.EXPECT().GetByID(mock.Anything, session.ID).Return(session, nil).Once()
	_, _, err := f.bot.store.Connect(context.Background(), testRoom, 1, f.catalog)
	require.NoError(t, err)
}

func dispatch(t *testing.T, f botFixture, text string) *Turn {
	t.Helper()

	turn, err := f.bot.Dispatch(context.Background(), testRoom, text)
	require.NoError(t, err)
	return turn
}

var apiSession = domain.Session{
	ID:           "sess-api-0001",
	DisplayName:  "add rate limiting",
	CWD:          "/home/me/src/api",
	LastActivity: testNow.Add(-15 * time.Minute),
}
