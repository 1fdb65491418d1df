// Package memory provides process-local implementations of the repository
// interfaces. They serve the store-less deployment variant and the service
// tests; writers race with last-write-wins semantics, which is acceptable
// for the demo-content entities kept here.
package memory

import (
	"context"
	"sync"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// SupplierRepository keeps suppliers in an ordered in-process slice.
type SupplierRepository struct {
	mu        sync.RWMutex
	suppliers []domain.Supplier
}

// NewSupplierRepository creates an empty in-memory supplier repository
func NewSupplierRepository() *SupplierRepository {
	return &SupplierRepository{}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append(r.suppliers, *supplier)
	return nil
}

func (r *SupplierRepository) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.suppliers {
		if r.suppliers[i].ID == id {
			s := r.suppliers[i]
			return &s, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *SupplierRepository) Find(ctx context.Context, filter domain.SupplierFilter) ([]domain.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := []domain.Supplier{}
	for _, s := range r.suppliers {
		if filter.AvailableOnly && !s.Available {
			continue
		}
		if filter.Type != "" && s.Type != filter.Type {
			continue
		}
		matches = append(matches, s)
	}
	return matches, nil
}

func (r *SupplierRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.suppliers)), nil
}

func (r *SupplierRepository) InsertMany(ctx context.Context, items []domain.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers = append(r.suppliers, items...)
	return nil
}
