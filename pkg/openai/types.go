package openai

import (
	"fmt"
	"net/http"
	"time"
)

// Config holds client configuration
type Config struct {
	APIKey     string
	Model      string
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openai: APIKey is required")
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

// QwenConfig returns a Config preset for Alibaba DashScope.
func QwenConfig(apiKey, model string) Config {
	if model == "" {
		model = QwenModel
	}
	return Config{APIKey: apiKey, Model: model, BaseURL: QwenBaseURL}
}

// DeepSeekConfig returns a Config preset for DeepSeek.
func DeepSeekConfig(apiKey, model string) Config {
	if model == "" {
		model = DeepSeekModel
	}
	return Config{APIKey: apiKey, Model: model, BaseURL: DeepSeekBaseURL}
}

type openAIImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is a chat completion request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int
	JSONMode          bool
}

// Message is a single chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response is the normalized completion result
type Response struct {
	Text  string
	Usage Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Temperature    float64         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
