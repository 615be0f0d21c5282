package webex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bnema/webex-claude-bridge/internal/domain"
	"github.com/bnema/webex-claude-bridge/internal/ports"
	"go.uber.org/zap"
)

const adaptiveCardContentType = "application/vnd.microsoft.card.adaptive"

var _ ports.ChatAPI = (*Client)(nil)

type personPayload struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Emails      []string `json:"emails"`
}

type roomPayload struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type messagePayload struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"roomId"`
	PersonID    string    `json:"personId"`
	PersonEmail string    `json:"personEmail"`
	Text        string    `json:"text"`
	Created     time.Time `json:"created"`
}

type listPayload[T any] struct {
	Items []T `json:"items"`
}

type attachment struct {
	ContentType string     `json:"contentType"`
	Content     ports.Card `json:"content"`
}

type messageRequest struct {
	RoomID        string       `json:"roomId,omitempty"`
	ToPersonEmail string       `json:"toPersonEmail,omitempty"`
	Markdown      string       `json:"markdown,omitempty"`
	Text          string       `json:"text,omitempty"`
	Attachments   []attachment `json:"attachments,omitempty"`
}

// Start verifies the token and caches the bot identity used to skip the
// bot's own messages.
func (c *Client) Start(ctx context.Context) (domain.Identity, error) {
	var me personPayload
	if err := c.call(ctx, http.MethodGet, "/people/me", nil, nil, &me); err != nil {
		return domain.Identity{}, fmt.Errorf("fetch bot identity: %w", err)
	}
	if me.ID == "" {
		return domain.Identity{}, errors.New("fetch bot identity: response has no id")
	}

	identity := domain.Identity{ID: me.ID, DisplayName: me.DisplayName, Emails: me.Emails}
	c.mu.Lock()
	c.identity = identity
	c.mu.Unlock()

	c.logger.Info("bot authenticated", zap.String("name", identity.DisplayName), zap.String("id", identity.ID))
	return identity, nil
}

func (c *Client) BotID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.identity.ID
}

func (c *Client) ListDirectRooms(ctx context.Context, max int) ([]domain.Room, error) {
	query := url.Values{
		"type":   {"direct"},
		"sortBy": {"lastactivity"},
		"max":    {strconv.Itoa(max)},
	}

	var out listPayload[roomPayload]
	if err := c.call(ctx, http.MethodGet, "/rooms", nil, query, &out); err != nil {
		return nil, fmt.Errorf("list direct rooms: %w", err)
	}

	rooms := make([]domain.Room, 0, len(out.Items))
	for _, item := range out.Items {
		rooms = append(rooms, domain.Room{ID: item.ID, Title: item.Title, Type: item.Type})
	}
	return rooms, nil
}

func (c *Client) ListMessages(ctx context.Context, roomID string, max int) ([]domain.Message, error) {
	query := url.Values{
		"roomId": {roomID},
		"max":    {strconv.Itoa(max)},
	}

	var out listPayload[messagePayload]
	if err := c.call(ctx, http.MethodGet, "/messages", nil, query, &out); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	messages := make([]domain.Message, 0, len(out.Items))
	for _, item := range out.Items {
		messages = append(messages, item.toDomain())
	}
	return messages, nil
}

func (c *Client) SendMessage(ctx context.Context, roomID string, markdown string) (domain.Message, error) {
	var out messagePayload
	if err := c.call(ctx, http.MethodPost, "/messages", messageRequest{RoomID: roomID, Markdown: markdown}, nil, &out); err != nil {
		return domain.Message{}, fmt.Errorf("send message: %w", err)
	}
	return out.toDomain(), nil
}

func (c *Client) SendCard(ctx context.Context, roomID string, card ports.Card, fallback string) error {
	if err := c.call(ctx, http.MethodPost, "/messages", cardRequest(card, fallback, roomID, ""), nil, nil); err != nil {
		return fmt.Errorf("send card: %w", err)
	}
	return nil
}

// SendCardToEmail sends a card to a person directly, creating the 1:1 room
// when it does not exist yet.
func (c *Client) SendCardToEmail(ctx context.Context, email string, card ports.Card, fallback string) error {
	if err := c.call(ctx, http.MethodPost, "/messages", cardRequest(card, fallback, "", email), nil, nil); err != nil {
		return fmt.Errorf("send card to %s: %w", email, err)
	}
	return nil
}

func (c *Client) EditMessage(ctx context.Context, messageID string, roomID string, markdown string) error {
	path := "/messages/" + url.PathEscape(messageID)
	if err := c.call(ctx, http.MethodPut, path, messageRequest{RoomID: roomID, Markdown: markdown}, nil, nil); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

func (c *Client) call(ctx context.Context, method, path string, body any, query url.Values, out any) error {
	raw, err := c.Do(ctx, method, path, body, query)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

func cardRequest(card ports.Card, fallback, roomID, email string) messageRequest {
	return messageRequest{
		RoomID:        roomID,
		ToPersonEmail: email,
		Text:          fallback,
		Attachments:   []attachment{{ContentType: adaptiveCardContentType, Content: card}},
	}
}

func (p messagePayload) toDomain() domain.Message {
	return domain.Message{
		ID:          p.ID,
		RoomID:      p.RoomID,
		PersonID:    p.PersonID,
		PersonEmail: p.PersonEmail,
		Text:        p.Text,
		Created:     p.Created,
	}
}
