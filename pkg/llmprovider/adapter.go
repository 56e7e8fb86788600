package llmprovider

import (
	"context"

	"tenant-maintenance-assistant/pkg/gemini"
	"tenant-maintenance-assistant/pkg/openai"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	contents := make([]gemini.Content, 0, len(req.Messages))
	for _, m := range req.Messages {
		contents = append(contents, gemini.Content{Role: m.Role, Parts: []gemini.Part{{Text: m.Text}}})
	}

	resp, err := a.client.GenerateContent(ctx, &gemini.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          contents,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAIAdapter adapts pkg/openai to llmprovider.Provider interface.
// The same adapter serves every OpenAI-compatible backend under its configured name.
type OpenAIAdapter struct {
	name   string
	client openai.IOpenAI
}

// NewOpenAIAdapter creates a new adapter reporting itself as name
func NewOpenAIAdapter(name string, client openai.IOpenAI) *OpenAIAdapter {
	return &OpenAIAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAIAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, openai.Message{Role: m.Role, Content: m.Text})
	}

	resp, err := a.client.GenerateContent(ctx, &openai.Request{
		SystemInstruction: req.SystemInstruction,
		Messages:          msgs,
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONMode:          req.JSONMode,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		Text:         resp.Text,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
