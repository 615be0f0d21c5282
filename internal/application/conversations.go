package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
)

// ConversationStore holds per-room conversation state for the life of the
// process. Rooms are created on first use.
type ConversationStore struct {
	mu    sync.Mutex
	rooms map[string]*domain.Conversation
}

func NewConversationStore() *ConversationStore {
	return &ConversationStore{rooms: map[string]*domain.Conversation{}}
}

// TurnGuard marks a room busy until End is called. End may be called more
// than once.
type TurnGuard struct {
	once    sync.Once
	release func()
}

func (g *TurnGuard) End() {
	g.once.Do(g.release)
}

func (s *ConversationStore) room(roomID string) *domain.Conversation {
	conv, ok := s.rooms[roomID]
	if !ok {
		conv = &domain.Conversation{RoomID: roomID}
		s.rooms[roomID] = conv
	}
	return conv
}

func (s *ConversationStore) Snapshot(roomID string) domain.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyConversation(s.room(roomID))
}

func (s *ConversationStore) CacheSessionList(roomID string, sessions []domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.room(roomID).SessionList = append([]domain.Session(nil), sessions...)
}

// Connect binds the room to the index-th cached session (1-based) after
// checking the session still exists. State is untouched on any error.
func (s *ConversationStore) Connect(ctx context.Context, roomID string, index int, catalog ports.SessionCatalog) (domain.Conversation, domain.Session, error) {
	selected, err := s.cachedSession(roomID, index)
	if err != nil {
		return domain.Conversation{}, domain.Session{}, err
	}

	session, err := catalog.GetByID(ctx, selected.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return domain.Conversation{}, domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Conversation{}, domain.Session{}, fmt.Errorf("look up session %s: %w", selected.ID, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.room(roomID)
	conv.SessionID = session.ID
	conv.SessionCWD = session.CWD
	conv.SessionLabel = session.Label()
	return copyConversation(conv), session, nil
}

func (s *ConversationStore) cachedSession(roomID string, index int) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.room(roomID).SessionList
	if len(list) == 0 {
		return domain.Session{}, domain.ErrNoSessionList
	}
	if index < 1 || index > len(list) {
		return domain.Session{}, &domain.IndexRangeError{Index: index, Max: len(list)}
	}
	return list[index-1], nil
}

// Disconnect clears the binding and returns the label it had.
func (s *ConversationStore) Disconnect(roomID string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.room(roomID)
	if !conv.Connected() {
		return "", false
	}

	label := conv.SessionLabel
	conv.SessionID = ""
	conv.SessionCWD = ""
	conv.SessionLabel = ""
	return label, true
}

func (s *ConversationStore) ToggleMode(roomID string) domain.PermissionMode {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.room(roomID)
	conv.Mode = conv.Mode.Toggle()
	return conv.Mode
}

// BeginTurn claims the room for one turn. It fails with ErrNotConnected or
// ErrTurnInProgress, and otherwise returns the state the turn runs with.
func (s *ConversationStore) BeginTurn(roomID string) (*TurnGuard, domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv := s.room(roomID)
	if !conv.Connected() {
		return nil, domain.Conversation{}, domain.ErrNotConnected
	}
	if conv.Busy {
		return nil, domain.Conversation{}, domain.ErrTurnInProgress
	}

	conv.Busy = true
	guard := &TurnGuard{release: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.room(roomID).Busy = false
	}}
	return guard, copyConversation(conv), nil
}

func copyConversation(conv *domain.Conversation) domain.Conversation {
	out := *conv
	out.SessionList = append([]domain.Session(nil), conv.SessionList...)
	return out
}
