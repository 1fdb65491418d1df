package domain

import (
	"context"
	"time"
)

// UserSession tracks a visitor's onboarding progress and free-form answers.
type UserSession struct {
	ID            string         `json:"id" bson:"id"`
	CreatedAt     time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at" bson:"updated_at"`
	CurrentStep   int            `json:"current_step" bson:"current_step"`
	IsComplete    bool           `json:"is_complete" bson:"is_complete"`
	UserResponses map[string]any `json:"user_responses" bson:"user_responses"`
}

// UserSessionCreate is the session creation payload.
type UserSessionCreate struct {
	CurrentStep   int            `json:"current_step" validate:"gte=0"`
	UserResponses map[string]any `json:"user_responses"`
}

// UserSessionUpdate is a partial update: nil fields are left unchanged.
type UserSessionUpdate struct {
	CurrentStep   *int           `json:"current_step,omitempty" validate:"omitempty,gte=0"`
	IsComplete    *bool          `json:"is_complete,omitempty"`
	UserResponses map[string]any `json:"user_responses,omitempty"`
}

// SessionRepository defines the interface for session storage
type SessionRepository interface {
	Create(ctx context.Context, session *UserSession) error
	Get(ctx context.Context, id string) (*UserSession, error)
	// Update applies the partial update and refreshes updated_at.
	// Returns ErrNotFound when no session has the given id.
	Update(ctx context.Context, id string, update UserSessionUpdate, now time.Time) (*UserSession, error)
}
