package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// MemorialService handles public tribute pages
type MemorialService struct {
	memorialRepo domain.MemorialRepository
}

// NewMemorialService creates a new memorial service
func NewMemorialService(memorialRepo domain.MemorialRepository) *MemorialService {
	return &MemorialService{memorialRepo: memorialRepo}
}

// Create publishes a memorial page under its slug.
func (s *MemorialService) Create(ctx context.Context, req domain.MemorialCreate) (*domain.Memorial, error) {
	memorial := &domain.Memorial{
		ID:           uuid.NewString(),
		Slug:         req.Slug,
		DeceasedName: req.DeceasedName,
		BirthDate:    req.BirthDate,
		DeathDate:    req.DeathDate,
		Bio:          req.Bio,
		PhotoURLs:    req.PhotoURLs,
		Condolences:  req.Condolences,
		CharityName:  req.CharityName,
		CharityURL:   req.CharityURL,
		CreatedBy:    req.CreatedBy,
		CreatedAt:    time.Now().UTC(),
	}
	if memorial.PhotoURLs == nil {
		memorial.PhotoURLs = []string{}
	}
	if memorial.Condolences == nil {
		memorial.Condolences = []map[string]any{}
	}

	if err := s.memorialRepo.Create(ctx, memorial); err != nil {
		return nil, fmt.Errorf("failed to create memorial: %w", err)
	}
	return memorial, nil
}

// GetBySlug fetches a memorial by its public slug
func (s *MemorialService) GetBySlug(ctx context.Context, slug string) (*domain.Memorial, error) {
	return s.memorialRepo.GetBySlug(ctx, slug)
}

// ListRecent returns the newest memorials first.
func (s *MemorialService) ListRecent(ctx context.Context, limit int) ([]domain.Memorial, error) {
	if limit <= 0 {
		limit = 20
	}
	memorials, err := s.memorialRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if memorials == nil {
		memorials = []domain.Memorial{}
	}
	return memorials, nil
}
