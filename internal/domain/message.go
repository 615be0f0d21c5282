package domain

import (
	"strings"
	"time"
)

// Identity is the account the bot token belongs to.
type Identity struct {
	ID          string
	DisplayName string
	Emails      []string
}

type Room struct {
	ID    string
	Title string
	Type  string
}

// Message is an inbound chat message as returned by the platform.
type Message struct {
	ID          string
	RoomID      string
	PersonID    string
	PersonEmail string
	Text        string
	Created     time.Time
}

// Body is the message text with surrounding whitespace removed.
func (m Message) Body() string {
	return strings.TrimSpace(m.Text)
}
