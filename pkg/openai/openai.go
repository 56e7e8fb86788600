package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var errEmptyResponse = errors.New("openai: empty response")

func newOpenAIImpl(cfg Config) *openAIImpl {
	return &openAIImpl{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request
func (o *openAIImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(o.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		o.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("openai: failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("openai: API call failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.Unmarshal(respBody, &errResp); err != nil || errResp.Error.Message == "" {
			return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, string(respBody))
		}
		return nil, fmt.Errorf("openai: API error %d: %s", resp.StatusCode, errResp.Error.Message)
	}

	var out chatResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("openai: failed to decode response: %w", err)
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return nil, errEmptyResponse
	}

	return &Response{
		Text: out.Choices[0].Message.Content,
		Usage: Usage{
			InputTokens:  out.Usage.PromptTokens,
			OutputTokens: out.Usage.CompletionTokens,
			TotalTokens:  out.Usage.TotalTokens,
		},
	}, nil
}

// Model returns the model being used
func (o *openAIImpl) Model() string {
	return o.model
}

func (o *openAIImpl) transformRequest(req *Request) *chatRequest {
	out := &chatRequest{
		Model:       o.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]Message, 0, len(req.Messages)+1),
	}
	if req.SystemInstruction != "" {
		out.Messages = append(out.Messages, Message{Role: "system", Content: req.SystemInstruction})
	}
	out.Messages = append(out.Messages, req.Messages...)
	if req.JSONMode {
		out.ResponseFormat = &responseFormat{Type: responseFormatJSON}
	}
	return out
}
