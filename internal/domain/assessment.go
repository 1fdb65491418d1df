package domain

import (
	"context"
	"time"
)

// AssessmentResponse captures the structured answers from the initial
// assessment wizard. Immutable once created; there is no update path.
type AssessmentResponse struct {
	ID                   string    `json:"id" bson:"id"`
	SessionID            string    `json:"session_id" bson:"session_id"`
	Relationship         string    `json:"relationship" bson:"relationship"`
	Location             string    `json:"location" bson:"location"`
	Religion             string    `json:"religion" bson:"religion"`
	Budget               string    `json:"budget" bson:"budget"`
	Preference           string    `json:"preference" bson:"preference"`
	Timeline             string    `json:"timeline,omitempty" bson:"timeline,omitempty"`
	SpecialCircumstances string    `json:"special_circumstances,omitempty" bson:"special_circumstances,omitempty"`
	CreatedAt            time.Time `json:"created_at" bson:"created_at"`
}

// AssessmentCreate is the assessment creation payload.
type AssessmentCreate struct {
	SessionID            string `json:"session_id" validate:"required"`
	Relationship         string `json:"relationship" validate:"required"`
	Location             string `json:"location" validate:"required"`
	Religion             string `json:"religion" validate:"required"`
	Budget               string `json:"budget" validate:"required"`
	Preference           string `json:"preference" validate:"required"`
	Timeline             string `json:"timeline,omitempty"`
	SpecialCircumstances string `json:"special_circumstances,omitempty"`
}

// AssessmentRepository defines the interface for assessment storage
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *AssessmentResponse) error
	// GetBySession returns the first assessment found for the session in the
	// store's natural order. Multiple assessments per session are possible;
	// no ordering is applied before returning the first match.
	GetBySession(ctx context.Context, sessionID string) (*AssessmentResponse, error)
}
