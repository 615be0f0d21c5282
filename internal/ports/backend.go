package ports

import "context"

type BackendRequest struct {
	SessionID       string
	Message         string
	WorkDir         string
	SkipPermissions bool
}

// Backend runs one conversational turn against a session. It never fails:
// every failure mode is folded into the returned, user-facing text.
type Backend interface {
	Invoke(ctx context.Context, req BackendRequest) string
}
