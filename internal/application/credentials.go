package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
)

const DefaultTokenRef = "webex/bot_token"

var ErrNoToken = errors.New("no bot token configured: set WEBEX_BOT_TOKEN or run `wcb token set`")

// Credentials resolves the bot token from configuration first and the secret
// store second.
type Credentials struct {
	secrets ports.SecretStore
	ref     string
}

func NewCredentials(secrets ports.SecretStore, ref string) *Credentials {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = DefaultTokenRef
	}
	return &Credentials{secrets: secrets, ref: ref}
}

func (c *Credentials) Ref() string {
	return c.ref
}

// BotToken returns explicit when it is set, otherwise the stored token.
func (c *Credentials) BotToken(ctx context.Context, explicit string) (string, error) {
	if token := strings.TrimSpace(explicit); token != "" {
		return token, nil
	}
	if c.secrets == nil {
		return "", ErrNoToken
	}

	token, err := c.secrets.Get(ctx, c.ref)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("read bot token %q: %w", c.ref, err)
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrNoToken
	}
	return token, nil
}

func (c *Credentials) StoreBotToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("bot token is empty")
	}
	if err := c.secrets.Put(ctx, c.ref, token); err != nil {
		return fmt.Errorf("store bot token %q: %w", c.ref, err)
	}
	return nil
}

func (c *Credentials) RemoveBotToken(ctx context.Context) error {
	if err := c.secrets.Delete(ctx, c.ref); err != nil {
		return fmt.Errorf("remove bot token %q: %w", c.ref, err)
	}
	return nil
}
