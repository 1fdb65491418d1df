package domain

import (
	"context"
	"time"
)

// MessageRole represents the sender of a chat message
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one side of a persisted chat exchange. Messages are
// append-only and ordered by timestamp ascending within a session.
type ChatMessage struct {
	ID                  string                 `json:"id" bson:"id"`
	SessionID           string                 `json:"session_id" bson:"session_id"`
	UserID              string                 `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Role                MessageRole            `json:"role" bson:"role"`
	Content             string                 `json:"content" bson:"content"`
	Timestamp           time.Time              `json:"timestamp" bson:"timestamp"`
	MarketplaceRedirect *MarketplaceSuggestion `json:"marketplace_redirect,omitempty" bson:"marketplace_redirect,omitempty"`
}

// MarketplaceSuggestion is a structured hint attached to an assistant reply
// proposing the caller consult the supplier directory.
type MarketplaceSuggestion struct {
	Suggested   bool   `json:"suggested" bson:"suggested"`
	ServiceType string `json:"service_type" bson:"service_type"`
	Message     string `json:"message" bson:"message"`
}

// ChatRequest is one user chat turn.
type ChatRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
	UserID    string `json:"user_id,omitempty"`
}

// ChatResponse carries the assistant's raw reply back to the caller.
type ChatResponse struct {
	SessionID           string                 `json:"session_id"`
	Message             string                 `json:"message"`
	Timestamp           time.Time              `json:"timestamp"`
	MarketplaceRedirect *MarketplaceSuggestion `json:"marketplace_redirect,omitempty"`
}

// MessageRepository defines the interface for chat message storage
type MessageRepository interface {
	Create(ctx context.Context, message *ChatMessage) error
	// ListBySession returns the newest limit messages for a session,
	// ordered by timestamp ascending (the tail of the transcript).
	ListBySession(ctx context.Context, sessionID string, limit int) ([]ChatMessage, error)
	CountBySession(ctx context.Context, sessionID string) (int64, error)
}
