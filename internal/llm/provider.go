package llm

import "context"

// Turn is one prior exchange passed back to the completion service so
// providers without server-side session memory keep conversational context.
type Turn struct {
	Role    string
	Content string
}

// Request contains one chat completion call
type Request struct {
	// SessionID groups the conversation for providers with session memory.
	SessionID string
	// System is the fixed system prompt for the conversation.
	System string
	// Message is the user's current message.
	Message string
	// History holds prior turns, oldest first.
	History []Turn
}

// Response contains the completion result
type Response struct {
	Content    string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for LLM completion providers
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete sends the conversation to the completion service and returns
	// its raw text response.
	Complete(ctx context.Context, req Request, model string) (*Response, error)
}
