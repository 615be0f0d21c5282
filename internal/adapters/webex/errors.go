package webex

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bnema/webex-claude-bridge/internal/domain"
)

var (
	// ErrUnauthorized means the bot token was rejected. It is never retried.
	ErrUnauthorized     = domain.ErrUnauthorized
	ErrRetriesExhausted = errors.New("webex: retries exhausted")
)

// RequestError is a non-2xx response.
type RequestError struct {
	Method     string
	Path       string
	Status     int
	Body       string
	TrackingID string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("webex %s %s: status %d", e.Method, e.Path, e.Status)
	}
	return fmt.Sprintf("webex %s %s: status %d: %s", e.Method, e.Path, e.Status, e.Body)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

// RetriesExhaustedError carries the last throttled or failed response once the
// attempt budget is spent.
type RetriesExhaustedError struct {
	Attempts int
	Last     *RequestError
}

func (e *RetriesExhaustedError) Error() string {
	return fmt.Sprintf("%s after %d attempts: %s", ErrRetriesExhausted, e.Attempts, e.Last)
}

func (e *RetriesExhaustedError) Is(target error) bool {
	return target == ErrRetriesExhausted
}

func (e *RetriesExhaustedError) Unwrap() error {
	return e.Last
}
