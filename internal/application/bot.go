package application

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
	"go.uber.org/zap"
)

const (
	commandPrefix = "/"

	DefaultMaxMessageBytes  = 7000
	DefaultSessionListSize  = 5
	DefaultSessionFetchSize = 20
)

type commandKind int

const (
	commandHelp commandKind = iota
	commandSessions
	commandConnect
	commandDisconnect
	commandStatus
	commandSafe
)

var commands = map[string]commandKind{
	"/start":      commandHelp,
	"/help":       commandHelp,
	"/sessions":   commandSessions,
	"/connect":    commandConnect,
	"/disconnect": commandDisconnect,
	"/status":     commandStatus,
	"/safe":       commandSafe,
}

type BotConfig struct {
	MaxMessageBytes  int
	SessionListSize  int
	SessionFetchSize int
}

type BotDeps struct {
	Chat     ports.ChatAPI
	Catalog  ports.SessionCatalog
	Backend  ports.Backend
	Renderer ports.SessionListRenderer
	Clock    ports.Clock
	Logger   *zap.Logger
}

// Bot routes chat messages to commands or conversational turns.
type Bot struct {
	chat     ports.ChatAPI
	catalog  ports.SessionCatalog
	backend  ports.Backend
	renderer ports.SessionListRenderer
	clock    ports.Clock
	logger   *zap.Logger
	store    *ConversationStore
	cfg      BotConfig
}

func NewBot(deps BotDeps, store *ConversationStore, cfg BotConfig) *Bot {
	if deps.Clock == nil {
		deps.Clock = ports.SystemClock{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if store == nil {
		store = NewConversationStore()
	}
	if cfg.MaxMessageBytes <= 0 {
		cfg.MaxMessageBytes = DefaultMaxMessageBytes
	}
	if cfg.SessionListSize <= 0 {
		cfg.SessionListSize = DefaultSessionListSize
	}
	if cfg.SessionFetchSize < cfg.SessionListSize {
		cfg.SessionFetchSize = max(DefaultSessionFetchSize, cfg.SessionListSize)
	}

	return &Bot{
		chat:     deps.Chat,
		catalog:  deps.Catalog,
		backend:  deps.Backend,
		renderer: deps.Renderer,
		clock:    deps.Clock,
		logger:   deps.Logger,
		store:    store,
		cfg:      cfg,
	}
}

// Dispatch handles one inbound message. Commands complete before it returns.
// Plain text claims the room and comes back as a Turn the caller must Run;
// a nil Turn means nothing is left to do. Only unrecoverable errors are
// returned.
func (b *Bot) Dispatch(ctx context.Context, roomID string, text string) (*Turn, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, commandPrefix) {
		return b.beginTurn(ctx, roomID, text)
	}

	name, arg := parseCommand(text)
	kind, ok := commands[name]
	if !ok {
		return nil, b.settle(ctx, roomID, b.reply(ctx, roomID, fmt.Sprintf(unknownCommandReply, name)))
	}

	var err error
	switch kind {
	case commandHelp:
		err = b.reply(ctx, roomID, helpReply)
	case commandSessions:
		err = b.handleSessions(ctx, roomID)
	case commandConnect:
		err = b.handleConnect(ctx, roomID, arg)
	case commandDisconnect:
		err = b.handleDisconnect(ctx, roomID)
	case commandStatus:
		err = b.handleStatus(ctx, roomID)
	case commandSafe:
		err = b.handleSafe(ctx, roomID)
	}
	return nil, b.settle(ctx, roomID, err)
}

func parseCommand(text string) (string, string) {
	i := strings.IndexFunc(text, unicode.IsSpace)
	if i < 0 {
		return strings.ToLower(text), ""
	}
	return strings.ToLower(text[:i]), strings.TrimSpace(text[i:])
}

func (b *Bot) handleSessions(ctx context.Context, roomID string) error {
	all, err := b.catalog.ListRecent(ctx, b.cfg.SessionFetchSize)
	if err != nil {
		return fmt.Errorf("list recent sessions: %w", err)
	}
	if len(all) == 0 {
		return b.reply(ctx, roomID, noSessionsReply)
	}

	picked := domain.PickListedSessions(all, b.cfg.SessionListSize)
	b.store.CacheSessionList(roomID, picked)

	card, fallback := b.renderer.RenderSessionList(picked, b.clock.Now())
	if err := b.chat.SendCard(ctx, roomID, card, fallback); err != nil {
		return fmt.Errorf("send session list: %w", err)
	}
	return nil
}

func (b *Bot) handleConnect(ctx context.Context, roomID string, arg string) error {
	if arg == "" {
		return b.reply(ctx, roomID, connectUsageReply)
	}
	index, err := strconv.Atoi(arg)
	if err != nil {
		return b.reply(ctx, roomID, connectInvalidReply)
	}

	conv, session, err := b.store.Connect(ctx, roomID, index, b.catalog)
	var rangeErr *domain.IndexRangeError
	switch {
	case errors.Is(err, domain.ErrNoSessionList):
		return b.reply(ctx, roomID, connectNoListReply)
	case errors.As(err, &rangeErr):
		return b.reply(ctx, roomID, fmt.Sprintf(connectOutOfRangeReply, rangeErr.Max))
	case errors.Is(err, domain.ErrSessionNotFound):
		return b.reply(ctx, roomID, connectGoneReply)
	case err != nil:
		return err
	}

	b.logger.Info("room connected to session",
		zap.String("room_id", roomID),
		zap.String("session_id", session.ID),
		zap.String("cwd", session.CWD),
	)
	return b.reply(ctx, roomID, fmt.Sprintf(connectedReply, conv.SessionLabel, session.ProjectName(), session.CWD, conv.Mode))
}

func (b *Bot) handleDisconnect(ctx context.Context, roomID string) error {
	label, ok := b.store.Disconnect(roomID)
	if !ok {
		return b.reply(ctx, roomID, notConnectedDisconnectReply)
	}
	return b.reply(ctx, roomID, fmt.Sprintf(disconnectedReply, label))
}

func (b *Bot) handleStatus(ctx context.Context, roomID string) error {
	conv := b.store.Snapshot(roomID)

	connected := statusDisconnected
	if conv.Connected() {
		connected = fmt.Sprintf(statusConnected, conv.SessionLabel, conv.SessionID, conv.SessionCWD)
	}
	return b.reply(ctx, roomID, fmt.Sprintf(statusModeLine, connected, conv.Mode))
}

func (b *Bot) handleSafe(ctx context.Context, roomID string) error {
	if b.store.ToggleMode(roomID).SkipsPermissions() {
		return b.reply(ctx, roomID, skipPermissionsReply)
	}
	return b.reply(ctx, roomID, safeModeReply)
}

func (b *Bot) beginTurn(ctx context.Context, roomID string, text string) (*Turn, error) {
	guard, conv, err := b.store.BeginTurn(roomID)
	switch {
	case errors.Is(err, domain.ErrNotConnected):
		return nil, b.settle(ctx, roomID, b.reply(ctx, roomID, notConnectedTurnReply))
	case errors.Is(err, domain.ErrTurnInProgress):
		return nil, b.settle(ctx, roomID, b.reply(ctx, roomID, busyReply))
	case err != nil:
		return nil, err
	}

	return &Turn{
		bot:    b,
		roomID: roomID,
		guard:  guard,
		request: ports.BackendRequest{
			SessionID:       conv.SessionID,
			Message:         text,
			WorkDir:         conv.SessionCWD,
			SkipPermissions: conv.Mode.SkipsPermissions(),
		},
	}, nil
}

func (b *Bot) reply(ctx context.Context, roomID string, markdown string) error {
	if _, err := b.chat.SendMessage(ctx, roomID, markdown); err != nil {
		return fmt.Errorf("send reply: %w", err)
	}
	return nil
}

// settle logs a failed command and tells the user about it. It only passes
// an error on when the bot has to stop.
func (b *Bot) settle(ctx context.Context, roomID string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrUnauthorized) {
		return err
	}
	if ctx.Err() != nil {
		return nil
	}

	b.logger.Error("command failed", zap.String("room_id", roomID), zap.Error(err))
	if sendErr := b.reply(ctx, roomID, genericErrorReply); sendErr != nil {
		if errors.Is(sendErr, domain.ErrUnauthorized) {
			return sendErr
		}
		b.logger.Warn("could not report command failure", zap.String("room_id", roomID), zap.Error(sendErr))
	}
	return nil
}
