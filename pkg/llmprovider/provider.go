package llmprovider

import "context"

// Provider defines the interface for LLM providers
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Request represents a normalized text generation request
type Request struct {
	SystemInstruction string
	Messages          []Message
	Temperature       float64
	MaxTokens         int

	// JSONMode asks the provider to constrain output to a JSON object.
	JSONMode bool
}

// Message represents a conversation message
type Message struct {
	Role string
	Text string
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string, temperature float64, maxTokens int) *Request {
	return &Request{
		SystemInstruction: system,
		Messages:          []Message{{Role: RoleUser, Text: prompt}},
		Temperature:       temperature,
		MaxTokens:         maxTokens,
	}
}

// Response represents a normalized LLM generation response
type Response struct {
	Text         string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
