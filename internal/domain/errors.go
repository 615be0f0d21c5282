package domain

import (
	"errors"
	"fmt"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrNotConnected    = errors.New("not connected to a session")
	ErrNoSessionList   = errors.New("no session list cached")
	ErrSecretNotFound  = errors.New("secret not found")
	ErrTurnInProgress  = errors.New("a turn is already in progress")

	// ErrUnauthorized means the chat platform rejected the bot token. The bot
	// cannot recover from it and stops.
	ErrUnauthorized = errors.New("unauthorized: check the bot token")
)

// IndexRangeError reports a session pick outside the cached list.
type IndexRangeError struct {
	Index int
	Max   int
}

func (e *IndexRangeError) Error() string {
	return fmt.Sprintf("session index %d out of range 1..%d", e.Index, e.Max)
}
