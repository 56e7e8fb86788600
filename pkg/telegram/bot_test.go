package telegram_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tenant-maintenance-assistant/pkg/telegram"
)

func TestBot(t *testing.T) {
	var lastMarkup map[string]interface{}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		if strings.HasSuffix(path, "/setWebhook") {
			var req map[string]string
			json.NewDecoder(r.Body).Decode(&req)
			if req["url"] == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid url"}`))
				return
			}
			if req["url"] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok": true, "description": "webhook set"}`))
			return
		}

		if strings.HasSuffix(path, "/sendMessage") {
			var req map[string]interface{}
			json.NewDecoder(r.Body).Decode(&req)
			text := req["text"].(string)
			lastMarkup, _ = req["reply_markup"].(map[string]interface{})

			if text == "cause_error" {
				w.WriteHeader(http.StatusBadRequest)
				w.Write([]byte(`{"ok": false, "description": "invalid text"}`))
				return
			}
			w.Write([]byte(`{"ok": true}`))
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	ctx := context.Background()
	bot := telegram.NewBot("test-token")
	bot.SetAPIURL(ts.URL)

	t.Run("SetWebhook Success", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "https://example.com/webhook/telegram"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SetWebhook API Failed", func(t *testing.T) {
		err := bot.SetWebhook(ctx, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid url") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("SetWebhook HTTP Failed", func(t *testing.T) {
		if err := bot.SetWebhook(ctx, "cause_500"); err == nil {
			t.Fatalf("expected http decoding error")
		}
	})

	t.Run("SendMessage Success", func(t *testing.T) {
		if err := bot.SendMessage(ctx, 12345, "Hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("SendMessageWithOptions builds keyboard", func(t *testing.T) {
		err := bot.SendMessageWithOptions(ctx, 12345, "How can I assist you today?",
			[]string{"I have a question", "I need to report a maintenance issue"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rows, ok := lastMarkup["keyboard"].([]interface{})
		if !ok || len(rows) != 2 {
			t.Fatalf("expected 2 keyboard rows, got %v", lastMarkup)
		}
		if lastMarkup["one_time_keyboard"] != true {
			t.Errorf("keyboard should be one-time")
		}
	})

	t.Run("SendMessageWithOptions removes keyboard", func(t *testing.T) {
		if err := bot.SendMessageWithOptions(ctx, 12345, "What's your full name?", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if lastMarkup["remove_keyboard"] != true {
			t.Errorf("expected remove_keyboard, got %v", lastMarkup)
		}
	})

	t.Run("SendMessage API Failed", func(t *testing.T) {
		err := bot.SendMessage(ctx, 12345, "cause_error")
		if err == nil || !strings.Contains(err.Error(), "invalid text") {
			t.Fatalf("expected api failure error, got: %v", err)
		}
	})

	t.Run("Invalid API URL logic", func(t *testing.T) {
		badBot := telegram.NewBot("test")
		badBot.SetAPIURL("http://invalid-url.local:1234")
		if err := badBot.SendMessage(ctx, 12345, "fail"); err == nil {
			t.Errorf("expected network failure on invalid domain")
		}
	})
}
