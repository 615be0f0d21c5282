package domain

import (
	"path/filepath"
	"strings"
	"time"
)

const sessionLabelIDLength = 12

// Session is a resumable backend conversation found in the local catalog.
type Session struct {
	ID           string
	DisplayName  string
	CWD          string
	LastActivity time.Time
}

// ProjectName is the base directory of the session's working directory.
func (s Session) ProjectName() string {
	if s.CWD == "" {
		return ""
	}
	return filepath.Base(s.CWD)
}

// Label is the display name when present, otherwise a short session id.
func (s Session) Label() string {
	if label := strings.TrimSpace(s.DisplayName); label != "" {
		return label
	}
	if len(s.ID) > sessionLabelIDLength {
		return s.ID[:sessionLabelIDLength]
	}
	return s.ID
}

var listingNoise = map[string]struct{}{
	"":          {},
	"/exit":     {},
	"/help":     {},
	"/start":    {},
	"/resume":   {},
	"/sessions": {},
}

// IsListingNoise reports whether a session was opened only to run a meta
// command and is not worth offering in a session list.
func (s Session) IsListingNoise() bool {
	_, ok := listingNoise[strings.ToLower(strings.TrimSpace(s.DisplayName))]
	return ok
}

// PickListedSessions drops noise entries and keeps at most limit sessions.
// When every entry is noise the unfiltered list is used instead.
func PickListedSessions(sessions []Session, limit int) []Session {
	picked := make([]Session, 0, len(sessions))
	for _, s := range sessions {
		if !s.IsListingNoise() {
			picked = append(picked, s)
		}
	}
	if len(picked) == 0 {
		picked = append(picked, sessions...)
	}
	if limit > 0 && len(picked) > limit {
		picked = picked[:limit]
	}
	return picked
}
