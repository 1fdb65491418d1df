package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// MemorialRepository keeps memorial pages in an in-process slice.
type MemorialRepository struct {
	mu        sync.RWMutex
	memorials []domain.Memorial
}

// NewMemorialRepository creates an empty in-memory memorial repository
func NewMemorialRepository() *MemorialRepository {
	return &MemorialRepository{}
}

func (r *MemorialRepository) Create(ctx context.Context, memorial *domain.Memorial) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.memorials = append(r.memorials, *memorial)
	return nil
}

func (r *MemorialRepository) GetBySlug(ctx context.Context, slug string) (*domain.Memorial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.memorials {
		if r.memorials[i].Slug == slug {
			m := r.memorials[i]
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemorialRepository) ListRecent(ctx context.Context, limit int) ([]domain.Memorial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	recent := make([]domain.Memorial, len(r.memorials))
	copy(recent, r.memorials)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}
