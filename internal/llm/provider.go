package llm

import (
	"context"
	"encoding/json"
)

// Provider is the generation-service abstraction. Callers treat it as
// opaque and unreliable: any error is expected to be absorbed upstream.
type Provider interface {
	// Generate sends a prompt and returns the model output.
	// When req.Schema is set the provider uses its native structured output
	// mode and validates the result against the schema before returning.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System is the system prompt.
	System string

	// Messages is the conversation. Question generation sends one user
	// message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil the
	// response Content is the raw model text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness (0.0 - 1.0). Zero leaves the
	// provider default in place.
	Temperature float64
}

// Message is a single conversation turn.
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

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "practice-question-set".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema document.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output: validated JSON when a schema was
	// requested, otherwise the raw text bytes (which may be prose, fenced
	// code or anything else).
	Content json.RawMessage

	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Text returns Content as a string.
func (r *Response) Text() string {
	if r == nil {
		return ""
	}
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
