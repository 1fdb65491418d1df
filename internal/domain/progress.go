package domain

import (
	"context"
	"time"
)

// StepProgress records per-checklist-step completion state for a session.
// The (session_id, step_id) pair is unique: saves are upserted in place.
type StepProgress struct {
	ID             string          `json:"id" bson:"id"`
	SessionID      string          `json:"session_id" bson:"session_id"`
	StepID         string          `json:"step_id" bson:"step_id"`
	StepName       string          `json:"step_name" bson:"step_name"`
	CompletedTasks map[string]bool `json:"completed_tasks" bson:"completed_tasks"`
	StepData       map[string]any  `json:"step_data" bson:"step_data"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" bson:"updated_at"`
}

// StepProgressSave is the upsert payload for a session's step.
type StepProgressSave struct {
	SessionID      string          `json:"session_id" validate:"required"`
	StepID         string          `json:"step_id" validate:"required"`
	StepName       string          `json:"step_name" validate:"required"`
	CompletedTasks map[string]bool `json:"completed_tasks"`
	StepData       map[string]any  `json:"step_data"`
}

// ProgressRepository defines the interface for step progress storage
type ProgressRepository interface {
	// Upsert looks up by (sessionID, stepID); if found it replaces
	// completed_tasks and step_data in place, otherwise inserts a new record.
	// Relies on the store's atomic single-document update.
	Upsert(ctx context.Context, save StepProgressSave, now time.Time) (*StepProgress, error)
	ListBySession(ctx context.Context, sessionID string) ([]StepProgress, error)
}
