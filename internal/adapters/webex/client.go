package webex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL = "https://webexapis.com/v1"
	MaxAttempts    = 3

	maxBackoff        = 30 * time.Second
	maxRetryAfter     = 60 * time.Second
	defaultRetryAfter = 5 * time.Second
	maxResponseBytes  = 1 << 20
	trackingIDPrefix  = "wcb_"
)

// SleepFunc waits between attempts. It must return early with the context
// error when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

func WithSleep(sleep SleepFunc) Option {
	return func(c *Client) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Client talks to the Webex REST API on behalf of one bot token.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	sleep   SleepFunc
	logger  *zap.Logger

	mu       sync.RWMutex
	identity domain.Identity
}

func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 30 * time.Second},
		baseURL: DefaultBaseURL,
		token:   strings.TrimSpace(token),
		sleep:   sleepWithContext,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type outcome int

const (
	outcomeSuccess outcome = iota
	outcomeRetry
	outcomeFatal
	outcomeFail
)

func (o outcome) String() string {
	switch o {
	case outcomeSuccess:
		return "success"
	case outcomeRetry:
		return "retry"
	case outcomeFatal:
		return "fatal"
	default:
		return "fail"
	}
}

type attemptResult struct {
	outcome outcome
	wait    time.Duration
	body    []byte
	// reqErr is set for any non-2xx response.
	reqErr *RequestError
	// netErr is set when no response was received.
	netErr error
}

// Do performs one API call with the retry policy applied and returns the raw
// response body.
func (c *Client) Do(ctx context.Context, method, path string, body any, query url.Values) (json.RawMessage, error) {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		payload = encoded
	}

	var last attemptResult
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		last = c.attempt(ctx, method, path, payload, query, attempt)

		switch last.outcome {
		case outcomeSuccess:
			return last.body, nil
		case outcomeFatal:
			c.logger.Error("webex rejected the bot token", zap.String("method", method), zap.String("path", path))
			return nil, last.reqErr
		case outcomeFail:
			if last.netErr != nil {
				return nil, fmt.Errorf("webex %s %s: %w", method, path, last.netErr)
			}
			return nil, last.reqErr
		}

		if attempt == MaxAttempts {
			break
		}

		c.logger.Warn("webex request will be retried",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", MaxAttempts),
			zap.Duration("wait", last.wait),
			zap.Error(last.cause()),
		)
		if err := c.sleep(ctx, last.wait); err != nil {
			return nil, err
		}
	}

	c.logger.Error("webex retries exhausted", zap.String("method", method), zap.String("path", path), zap.Int("attempts", MaxAttempts))
	if last.netErr != nil {
		return nil, fmt.Errorf("webex %s %s: %w", method, path, last.netErr)
	}
	return nil, &RetriesExhaustedError{Attempts: MaxAttempts, Last: last.reqErr}
}

func (r attemptResult) cause() error {
	if r.netErr != nil {
		return r.netErr
	}
	if r.reqErr != nil {
		return r.reqErr
	}
	return nil
}

func (c *Client) attempt(ctx context.Context, method, path string, payload []byte, query url.Values, attempt int) attemptResult {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	request, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return attemptResult{outcome: outcomeFail, netErr: fmt.Errorf("create request: %w", err)}
	}

	trackingID := trackingIDPrefix + uuid.NewString()
	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("TrackingID", trackingID)

	response, err := c.http.Do(request)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return attemptResult{outcome: outcomeFail, netErr: ctxErr}
		}
		return attemptResult{outcome: outcomeRetry, wait: backoff(attempt), netErr: err}
	}
	defer response.Body.Close()

	body, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return attemptResult{outcome: outcomeRetry, wait: backoff(attempt), netErr: fmt.Errorf("read response: %w", err)}
	}

	result := classify(response.StatusCode, response.Header, attempt)
	if result.outcome == outcomeSuccess {
		result.body = body
		return result
	}

	result.reqErr = &RequestError{
		Method:     method,
		Path:       path,
		Status:     response.StatusCode,
		Body:       strings.TrimSpace(string(body)),
		TrackingID: trackingID,
	}
	return result
}

// classify maps a response status to the next step of the retry loop.
func classify(status int, header http.Header, attempt int) attemptResult {
	switch {
	case status >= 200 && status <= 299:
		return attemptResult{outcome: outcomeSuccess}
	case status == http.StatusUnauthorized:
		return attemptResult{outcome: outcomeFatal}
	case status == http.StatusTooManyRequests:
		return attemptResult{outcome: outcomeRetry, wait: retryAfter(header)}
	case status >= 500 && status <= 599:
		return attemptResult{outcome: outcomeRetry, wait: backoff(attempt)}
	default:
		return attemptResult{outcome: outcomeFail}
	}
}

func backoff(attempt int) time.Duration {
	if attempt >= 5 {
		return maxBackoff
	}
	wait := time.Duration(1<<attempt) * time.Second
	if wait > maxBackoff {
		return maxBackoff
	}
	return wait
}

func retryAfter(header http.Header) time.Duration {
	raw := strings.TrimSpace(header.Get("Retry-After"))
	if raw == "" {
		return defaultRetryAfter
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs < 0 {
		return defaultRetryAfter
	}
	wait := time.Duration(secs) * time.Second
	if wait > maxRetryAfter {
		return maxRetryAfter
	}
	return wait
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
