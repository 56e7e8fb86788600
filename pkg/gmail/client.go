package gmail

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const me = "me"

// Client wraps the Gmail API service for sending staff notifications.
type Client struct {
	service *gmailapi.Service
}

// NewClientFromCredentialsFile creates a Gmail client from a credentials file path.
// Installed-app credentials need a token file produced by scripts/gmail-auth.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath, sender string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath, sender)
}

// NewClientFromCredentialsJSON creates a Gmail client from raw credentials JSON.
// Service account credentials impersonate sender through domain-wide delegation.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath, sender string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, gmailapi.GmailSendScope)
	if err == nil {
		jwtConfig.Subject = sender
		svc, svcErr := gmailapi.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create gmail service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, gmailapi.GmailSendScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenData, tokenErr := os.ReadFile(tokenPath)
	if tokenErr != nil {
		return nil, fmt.Errorf("gmail credentials are OAuth Desktop type but no token found at %q: run scripts/gmail-auth", tokenPath)
	}

	var tok oauth2.Token
	if jsonErr := json.Unmarshal(tokenData, &tok); jsonErr != nil {
		return nil, fmt.Errorf("failed to parse token file: %w", jsonErr)
	}

	svc, err := gmailapi.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, &tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service from OAuth token: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Gmail client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Send delivers a plain-text email and returns the Gmail message id.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	raw := base64.URLEncoding.EncodeToString([]byte(msg.rfc822()))

	sent, err := c.service.Users.Messages.Send(me, &gmailapi.Message{Raw: raw}).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to send gmail message: %w", err)
	}
	return sent.Id, nil
}

func (m Message) rfc822() string {
	var sb strings.Builder
	if m.From != "" {
		sb.WriteString("From: " + m.From + "\r\n")
	}
	sb.WriteString("To: " + m.To + "\r\n")
	sb.WriteString("Subject: " + m.Subject + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(m.Body)
	return sb.String()
}
