package domain

import "context"

// Supplier types served by the marketplace directory.
const (
	SupplierFuneralDirector = "funeral_director"
	SupplierFlorist         = "florist"
	SupplierMason           = "mason"
	SupplierVenue           = "venue"
	SupplierCaterer         = "caterer"
)

// Supplier is a local business record searchable by postcode proximity.
// Postcode is free-text UK format; matching is case and space insensitive.
type Supplier struct {
	ID            string             `json:"id" bson:"id"`
	Name          string             `json:"name" bson:"name"`
	Type          string             `json:"type" bson:"type"`
	Address       string             `json:"address" bson:"address"`
	Postcode      string             `json:"postcode" bson:"postcode"`
	Lat           float64            `json:"lat" bson:"lat"`
	Lon           float64            `json:"lon" bson:"lon"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	Website       string             `json:"website,omitempty" bson:"website,omitempty"`
	Description   string             `json:"description" bson:"description"`
	Services      []string           `json:"services" bson:"services"`
	Pricing       map[string]float64 `json:"pricing" bson:"pricing"`
	Rating        float64            `json:"rating" bson:"rating"`
	ReviewCount   int                `json:"review_count" bson:"review_count"`
	Verified      bool               `json:"verified" bson:"verified"`
	Available     bool               `json:"available" bson:"available"`
	DistanceMiles *float64           `json:"distance_miles,omitempty" bson:"-"`
}

// SupplierFilter selects directory candidates before the postcode passes.
type SupplierFilter struct {
	// Type, when non-empty, restricts to one supplier type.
	Type string
	// AvailableOnly excludes suppliers marked unavailable.
	AvailableOnly bool
}

// SupplierSearch holds the search parameters echoed back in the result.
type SupplierSearch struct {
	Postcode    string  `json:"postcode" validate:"required"`
	Type        string  `json:"type,omitempty"`
	RadiusMiles float64 `json:"radius_miles"`
	SortBy      string  `json:"sort_by"` // distance, rating, price
}

// SupplierSearchResult is the ranked search response.
type SupplierSearchResult struct {
	Postcode    string     `json:"postcode"`
	RadiusMiles float64    `json:"radius_miles"`
	Count       int        `json:"count"`
	Suppliers   []Supplier `json:"suppliers"`
}

// SupplierRepository defines the interface for supplier storage
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	Get(ctx context.Context, id string) (*Supplier, error)
	Find(ctx context.Context, filter SupplierFilter) ([]Supplier, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, items []Supplier) error
}
