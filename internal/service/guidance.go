package service

import (
	"context"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// GuidanceService serves the static guidance catalogue and the support
// resource directory.
type GuidanceService struct {
	guidanceRepo domain.GuidanceRepository
	supportRepo  domain.SupportResourceRepository
}

// NewGuidanceService creates a new guidance service
func NewGuidanceService(guidanceRepo domain.GuidanceRepository, supportRepo domain.SupportResourceRepository) *GuidanceService {
	return &GuidanceService{
		guidanceRepo: guidanceRepo,
		supportRepo:  supportRepo,
	}
}

// GetGuidance returns the single best match for the supplied facets, or
// ErrNotFound. Every non-empty facet must match exactly.
func (s *GuidanceService) GetGuidance(ctx context.Context, filter domain.GuidanceFilter) (*domain.GuidanceData, error) {
	return s.guidanceRepo.FindOne(ctx, filter)
}

// ListGuidance returns every record matching the supplied facets. An empty
// result is ErrNotFound so callers can distinguish "no such category" from
// a store failure.
func (s *GuidanceService) ListGuidance(ctx context.Context, filter domain.GuidanceFilter) ([]domain.GuidanceData, error) {
	items, err := s.guidanceRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return items, nil
}

// ListSupportResources returns support organisations matching the filter.
// A zero-value filter lists the whole directory.
func (s *GuidanceService) ListSupportResources(ctx context.Context, filter domain.SupportResourceFilter) ([]domain.SupportResource, error) {
	resources, err := s.supportRepo.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	if resources == nil {
		resources = []domain.SupportResource{}
	}
	return resources, nil
}
