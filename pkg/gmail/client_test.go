package gmail_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tenant-maintenance-assistant/pkg/gmail"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClient(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "gmail-token.json")

	t.Run("broken credentials", func(t *testing.T) {
		_, err := gmail.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath, "")
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gmail.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath, "")
		if err == nil || !strings.Contains(err.Error(), "gmail-auth") {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0600)
		defer os.Remove(tokenPath)

		if _, err := gmail.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath, ""); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		_, err := gmail.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json"), tokenPath, "")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestSend(t *testing.T) {
	var raw string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/gmail/v1/users/me/messages/send" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		var body struct {
			Raw string `json:"raw"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		decoded, _ := base64.URLEncoding.DecodeString(body.Raw)
		raw = string(decoded)
		if strings.Contains(raw, "cause_500") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"id": "gmail-123"}`))
	}))
	defer ts.Close()

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gmail.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	id, err := client.Send(context.Background(), gmail.Message{
		From:    "noreply@example.com",
		To:      "manager@example.com",
		Subject: "[NON-URGENT] Maintenance Request from Sam",
		Body:    "Dripping faucet",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "gmail-123" {
		t.Errorf("unexpected id: %s", id)
	}
	if !strings.Contains(raw, "Subject: [NON-URGENT] Maintenance Request from Sam\r\n") {
		t.Errorf("subject header missing: %q", raw)
	}
	if !strings.HasSuffix(raw, "\r\n\r\nDripping faucet") {
		t.Errorf("body missing: %q", raw)
	}

	if _, err := client.Send(context.Background(), gmail.Message{To: "m@example.com", Body: "cause_500"}); err == nil {
		t.Errorf("expected api error")
	}
}
