package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Bot is the Telegram Bot API client.
type Bot struct {
	token      string
	apiURL     string
	httpClient *http.Client
}

// NewBot creates a new Telegram Bot client with the given token.
func NewBot(token string) *Bot {
	return &Bot{
		token:      token,
		apiURL:     fmt.Sprintf("https://api.telegram.org/bot%s", token),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetAPIURL overrides the default Telegram API URL for testing purposes.
func (b *Bot) SetAPIURL(url string) {
	b.apiURL = url
}

// SetWebhook registers the webhook URL with Telegram.
func (b *Bot) SetWebhook(ctx context.Context, webhookURL string) error {
	raw, status, err := b.post(ctx, "setWebhook", map[string]string{"url": webhookURL})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return fmt.Errorf("failed to decode webhook response (status %d): %w", status, err)
	}
	if !apiResp.OK {
		return fmt.Errorf("telegram setWebhook failed: %s", apiResp.Description)
	}
	return nil
}

// SendMessage sends a plain text message to a Telegram chat.
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.send(ctx, SendMessageRequest{ChatID: chatID, Text: text})
}

// SendMessageWithMode sends a message with optional parse mode (e.g. "Markdown").
func (b *Bot) SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error {
	return b.send(ctx, SendMessageRequest{ChatID: chatID, Text: text, ParseMode: parseMode})
}

// SendMessageWithOptions sends text with a one-time reply keyboard, one button per option.
// An empty option list removes any keyboard left by a previous message.
func (b *Bot) SendMessageWithOptions(ctx context.Context, chatID int64, text string, options []string) error {
	req := SendMessageRequest{ChatID: chatID, Text: text}
	if len(options) == 0 {
		req.ReplyMarkup = ReplyKeyboardRemove{RemoveKeyboard: true}
		return b.send(ctx, req)
	}

	rows := make([][]KeyboardButton, 0, len(options))
	for _, o := range options {
		rows = append(rows, []KeyboardButton{{Text: o}})
	}
	req.ReplyMarkup = ReplyKeyboardMarkup{
		Keyboard:        rows,
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}
	return b.send(ctx, req)
}

func (b *Bot) send(ctx context.Context, payload SendMessageRequest) error {
	raw, status, err := b.post(ctx, "sendMessage", payload)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("telegram sendMessage API error %d: %s", status, string(raw))
	}
	return nil
}

func (b *Bot) post(ctx context.Context, method string, payload any) ([]byte, int, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to marshal %s payload: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/%s", b.apiURL, method), bytes.NewBuffer(body))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return raw, resp.StatusCode, nil
}
