package domain

import (
	"context"
	"time"
)

// Memorial is a public tribute page addressed by URL slug.
type Memorial struct {
	ID             string           `json:"id" bson:"id"`
	Slug           string           `json:"slug" bson:"slug"`
	DeceasedName   string           `json:"deceased_name" bson:"deceased_name"`
	BirthDate      string           `json:"birth_date,omitempty" bson:"birth_date,omitempty"`
	DeathDate      string           `json:"death_date,omitempty" bson:"death_date,omitempty"`
	Bio            string           `json:"bio,omitempty" bson:"bio,omitempty"`
	PhotoURLs      []string         `json:"photo_urls" bson:"photo_urls"`
	Condolences    []map[string]any `json:"condolences" bson:"condolences"`
	CharityName    string           `json:"charity_name,omitempty" bson:"charity_name,omitempty"`
	CharityURL     string           `json:"charity_url,omitempty" bson:"charity_url,omitempty"`
	TotalDonations float64          `json:"total_donations" bson:"total_donations"`
	CreatedBy      string           `json:"created_by,omitempty" bson:"created_by,omitempty"`
	CreatedAt      time.Time        `json:"created_at" bson:"created_at"`
}

// MemorialCreate is the memorial creation payload.
type MemorialCreate struct {
	Slug         string           `json:"slug" validate:"required"`
	DeceasedName string           `json:"deceased_name" validate:"required"`
	BirthDate    string           `json:"birth_date,omitempty"`
	DeathDate    string           `json:"death_date,omitempty"`
	Bio          string           `json:"bio,omitempty"`
	PhotoURLs    []string         `json:"photo_urls,omitempty"`
	Condolences  []map[string]any `json:"condolences,omitempty"`
	CharityName  string           `json:"charity_name,omitempty"`
	CharityURL   string           `json:"charity_url,omitempty"`
	CreatedBy    string           `json:"created_by,omitempty"`
}

// MemorialRepository defines the interface for memorial storage
type MemorialRepository interface {
	Create(ctx context.Context, memorial *Memorial) error
	GetBySlug(ctx context.Context, slug string) (*Memorial, error)
	// ListRecent returns memorials ordered by created_at descending.
	ListRecent(ctx context.Context, limit int) ([]Memorial, error)
}
