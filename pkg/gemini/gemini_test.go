package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tenant-maintenance-assistant/pkg/gemini"
)

type capturedRequest struct {
	SystemInstruction *gemini.Content  `json:"system_instruction"`
	Contents          []gemini.Content `json:"contents"`
	GenerationConfig  struct {
		Temperature      float64 `json:"temperature"`
		MaxOutputTokens  int     `json:"maxOutputTokens"`
		ResponseMimeType string  `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func TestGenerateContent(t *testing.T) {
	var got capturedRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch got.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "no_candidates":
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"specialty\":"}, {"text": "\"HVAC\"}"}]}}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 6, "totalTokenCount": 18}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "return json",
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "The heater is broken"}}},
				{Role: "assistant", Parts: []gemini.Part{{Text: "ok"}}},
			},
			Temperature: 0.1,
			MaxTokens:   200,
			JSONMode:    true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != `{"specialty":"HVAC"}` {
			t.Errorf("unexpected text: %s", resp.Text)
		}
		if resp.Usage.TotalTokens != 18 {
			t.Errorf("expected 18 total tokens, got %d", resp.Usage.TotalTokens)
		}
		if got.GenerationConfig.ResponseMimeType != "application/json" {
			t.Errorf("expected json mime type, got %q", got.GenerationConfig.ResponseMimeType)
		}
		if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "return json" {
			t.Errorf("system instruction not forwarded")
		}
		if got.Contents[1].Role != "model" {
			t.Errorf("assistant role should map to model, got %s", got.Contents[1].Role)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "no_candidates"}}}},
		})
		if err == nil {
			t.Fatalf("expected error for empty candidates")
		}
	})
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatalf("expected validation error")
	}
}
