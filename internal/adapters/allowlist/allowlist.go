package allowlist

import (
	"strings"
	"sync/atomic"

	"github.com/bnema/webex-claude-bridge/internal/ports"
)

// Allowlist authorizes senders by email. An empty list authorizes nobody.
type Allowlist struct {
	emails atomic.Pointer[map[string]struct{}]
}

var _ ports.Authorizer = (*Allowlist)(nil)

func New(emails []string) *Allowlist {
	a := &Allowlist{}
	a.Replace(emails)
	return a
}

// Replace swaps the whole set, so concurrent checks see either the old or
// the new list.
func (a *Allowlist) Replace(emails []string) {
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		if normalized := normalize(email); normalized != "" {
			set[normalized] = struct{}{}
		}
	}
	a.emails.Store(&set)
}

func (a *Allowlist) IsAuthorized(email string) bool {
	set := a.emails.Load()
	if set == nil {
		return false
	}
	_, ok := (*set)[normalize(email)]
	return ok
}

func (a *Allowlist) Len() int {
	set := a.emails.Load()
	if set == nil {
		return 0
	}
	return len(*set)
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
