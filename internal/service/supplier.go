package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

const maxSearchResults = 50

// DefaultSearchRadiusMiles applies when the caller supplies no radius.
const DefaultSearchRadiusMiles = 5.0

// SupplierService handles the supplier directory and postcode search
type SupplierService struct {
	supplierRepo domain.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo domain.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// Get retrieves a single supplier by id
func (s *SupplierService) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	return s.supplierRepo.Get(ctx, id)
}

// Search finds suppliers near a postcode. Exact postcode matches win
// outright: when any exist they are returned as-is, and the radius and sort
// parameters are not applied. Otherwise candidates sharing the outward-code
// letter pair are ranked by a placeholder distance within the radius.
func (s *SupplierService) Search(ctx context.Context, params domain.SupplierSearch) (*domain.SupplierSearchResult, error) {
	// Zero is a valid radius; only a negative value means unset.
	if params.RadiusMiles < 0 {
		params.RadiusMiles = DefaultSearchRadiusMiles
	}
	if params.SortBy == "" {
		params.SortBy = "distance"
	}

	candidates, err := s.supplierRepo.Find(ctx, domain.SupplierFilter{
		Type:          params.Type,
		AvailableOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load suppliers: %w", err)
	}

	searchPostcode := normalizePostcode(params.Postcode)

	var exactMatches []domain.Supplier
	for _, supplier := range candidates {
		if normalizePostcode(supplier.Postcode) == searchPostcode {
			supplier.DistanceMiles = float64Ptr(0.0)
			exactMatches = append(exactMatches, supplier)
		}
	}
	if len(exactMatches) > 0 {
		log.Info().Int("count", len(exactMatches)).Str("postcode", params.Postcode).Msg("exact postcode matches found")
		return searchResult(params, exactMatches), nil
	}

	searchArea := postcodeArea(searchPostcode)

	var matches []domain.Supplier
	for _, supplier := range candidates {
		supplierPostcode := normalizePostcode(supplier.Postcode)
		if !strings.HasPrefix(postcodeArea(supplierPostcode), prefix(searchArea, 2)) {
			continue
		}
		distance := pseudoDistance(supplierPostcode, searchPostcode)
		if distance <= params.RadiusMiles {
			supplier.DistanceMiles = float64Ptr(distance)
			matches = append(matches, supplier)
		}
	}

	sortSuppliers(matches, params.SortBy)

	log.Info().Int("count", len(matches)).Str("postcode", params.Postcode).Msg("suppliers found near postcode")
	return searchResult(params, matches), nil
}

// searchResult reports the full match count even when the returned page
// is capped.
func searchResult(params domain.SupplierSearch, matches []domain.Supplier) *domain.SupplierSearchResult {
	return &domain.SupplierSearchResult{
		Postcode:    params.Postcode,
		RadiusMiles: params.RadiusMiles,
		Count:       len(matches),
		Suppliers:   capResults(matches),
	}
}

func capResults(suppliers []domain.Supplier) []domain.Supplier {
	if suppliers == nil {
		return []domain.Supplier{}
	}
	if len(suppliers) > maxSearchResults {
		return suppliers[:maxSearchResults]
	}
	return suppliers
}

func sortSuppliers(suppliers []domain.Supplier, sortBy string) {
	switch sortBy {
	case "rating":
		sort.SliceStable(suppliers, func(i, j int) bool {
			return suppliers[i].Rating > suppliers[j].Rating
		})
	case "price":
		sort.SliceStable(suppliers, func(i, j int) bool {
			return meanPrice(suppliers[i].Pricing) < meanPrice(suppliers[j].Pricing)
		})
	default:
		sort.SliceStable(suppliers, func(i, j int) bool {
			return derefDistance(suppliers[i]) < derefDistance(suppliers[j])
		})
	}
}

// meanPrice averages the listed service prices. A supplier with no priced
// services counts as a price of 1 so it sorts ahead of everything real.
func meanPrice(pricing map[string]float64) float64 {
	if len(pricing) == 0 {
		return 1
	}
	var total float64
	for _, price := range pricing {
		total += price
	}
	return total / float64(len(pricing))
}

func derefDistance(s domain.Supplier) float64 {
	if s.DistanceMiles == nil {
		return 999
	}
	return *s.DistanceMiles
}

// normalizePostcode strips whitespace and uppercases so matching is case
// and space insensitive.
func normalizePostcode(postcode string) string {
	return strings.ToUpper(strings.ReplaceAll(postcode, " ", ""))
}

// postcodeArea takes the leading 4 characters of a normalized postcode as
// its locality key, or 3 when the string is shorter.
func postcodeArea(normalized string) string {
	if len(normalized) >= 4 {
		return normalized[:4]
	}
	return prefix(normalized, 3)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

// pseudoDistance is a deterministic stand-in for geodistance: a stable hash
// difference of the two normalized postcodes folded into 0-9 miles with one
// decimal place. Not a real metric; isolated here so it can be replaced by
// geocoding without touching the search control flow.
func pseudoDistance(a, b string) float64 {
	diff := int64(stableHash(a)) - int64(stableHash(b))
	if diff < 0 {
		diff = -diff
	}
	return math.Round(float64(diff%10)*10) / 10
}

func stableHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func float64Ptr(v float64) *float64 { return &v }
