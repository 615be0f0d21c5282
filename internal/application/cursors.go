package application

import (
	"sync"

	"github.com/bnema/webex-claude-bridge/internal/domain"
)

// CursorStore remembers the newest message id seen per room so each message
// is handled once.
type CursorStore struct {
	mu       sync.Mutex
	lastSeen map[string]string
}

func NewCursorStore() *CursorStore {
	return &CursorStore{lastSeen: map[string]string{}}
}

// Advance takes a newest-first page of room messages and returns the ones not
// seen before, oldest first. The first page seen for a room only records the
// cursor, so history is never replayed.
func (c *CursorStore) Advance(roomID string, newestFirst []domain.Message) []domain.Message {
	if len(newestFirst) == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	newest := newestFirst[0].ID
	lastSeen, initialized := c.lastSeen[roomID]
	c.lastSeen[roomID] = newest
	if !initialized || newest == lastSeen {
		return nil
	}

	fresh := make([]domain.Message, 0, len(newestFirst))
	for _, msg := range newestFirst {
		if msg.ID == lastSeen {
			break
		}
		fresh = append(fresh, msg)
	}

	for i, j := 0, len(fresh)-1; i < j; i, j = i+1, j-1 {
		fresh[i], fresh[j] = fresh[j], fresh[i]
	}
	return fresh
}

func (c *CursorStore) Initialized(roomID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.lastSeen[roomID]
	return ok
}
