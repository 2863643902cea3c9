package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction every generative back end implements.
// Callers send a Request and get back either JSON or raw text.
type Provider interface {
	// Generate sends a prompt to the model. When req.Schema is set the
	// provider asks for JSON conforming to it and validates the result
	// before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation. Every gateway call is single turn, so
	// this normally holds one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When nil, the response Content is the raw model text.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves it to the provider.
	MaxTokens int

	// Temperature controls randomness. Zero means provider default.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// UserPrompt builds the common single-message conversation.
func UserPrompt(text string) []Message {
	return []Message{{Role: RoleUser, Content: text}}
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema, kebab-case, e.g. "topic-definition".
	// It doubles as the compiled-schema cache key.
	Name string

	// Description is sent to providers that accept one.
	Description string

	// Definition is the JSON Schema as a map. The root may be an object
	// or an array.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. With a Schema this is validated
	// JSON; without one it is the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Text returns Content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
