package domain

import (
	"context"
	"time"
)

// Guidance categories seeded at startup.
const (
	GuidanceImmediateTasks  = "immediate_tasks"
	GuidanceFuneralPlanning = "funeral_planning"
	GuidanceBudgetGuide     = "budget_guide"
)

// GuidanceData is static advisory content keyed by category plus optional
// religion/location/budget facets. Read-only after seeding.
type GuidanceData struct {
	ID        string         `json:"id" bson:"id"`
	Category  string         `json:"category" bson:"category"`
	Religion  string         `json:"religion,omitempty" bson:"religion,omitempty"`
	Location  string         `json:"location,omitempty" bson:"location,omitempty"`
	Budget    string         `json:"budget,omitempty" bson:"budget,omitempty"`
	Data      map[string]any `json:"data" bson:"data"`
	CreatedAt time.Time      `json:"created_at" bson:"created_at"`
}

// GuidanceFilter selects guidance by category and the non-empty subset of
// the optional facets. Matching is exact on every supplied field.
type GuidanceFilter struct {
	Category string
	Religion string
	Location string
	Budget   string
}

// GuidanceRepository defines the interface for guidance content storage
type GuidanceRepository interface {
	// FindOne returns the first matching record or ErrNotFound.
	FindOne(ctx context.Context, filter GuidanceFilter) (*GuidanceData, error)
	// Find returns all matching records in store order.
	Find(ctx context.Context, filter GuidanceFilter) ([]GuidanceData, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []GuidanceData) error
}
