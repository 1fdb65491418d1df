package domain

import "context"

// SupportResource is a bereavement support organisation. Static reference
// data, seeded once.
type SupportResource struct {
	ID           string   `json:"id" bson:"id"`
	Name         string   `json:"name" bson:"name"`
	Description  string   `json:"description" bson:"description"`
	Contact      string   `json:"contact" bson:"contact"`
	Availability string   `json:"availability" bson:"availability"`
	Type         string   `json:"type" bson:"type"`
	Category     string   `json:"category" bson:"category"`
	Specialties  []string `json:"specialties,omitempty" bson:"specialties,omitempty"`
	Services     []string `json:"services,omitempty" bson:"services,omitempty"`
	Eligibility  string   `json:"eligibility,omitempty" bson:"eligibility,omitempty"`
	Website      string   `json:"website,omitempty" bson:"website,omitempty"`
}

// SupportResourceFilter narrows the listing by exact match on the supplied
// fields. Zero value lists everything.
type SupportResourceFilter struct {
	Category string
	Type     string
}

// SupportResourceRepository defines the interface for support resource storage
type SupportResourceRepository interface {
	Find(ctx context.Context, filter SupportResourceFilter) ([]SupportResource, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []SupportResource) error
}
