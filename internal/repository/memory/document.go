package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// DocumentRepository keeps vaulted documents in an in-process slice.
type DocumentRepository struct {
	mu   sync.RWMutex
	docs []domain.Document
}

// NewDocumentRepository creates an empty in-memory document repository
func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *domain.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *DocumentRepository) Get(ctx context.Context, id string) (*domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.docs {
		if r.docs[i].ID == id {
			d := r.docs[i]
			return &d, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *DocumentRepository) Find(ctx context.Context, filter domain.DocumentFilter, limit int) ([]domain.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := []domain.Document{}
	for _, d := range r.docs {
		if filter.UserID != "" && d.UserID != filter.UserID {
			continue
		}
		if filter.SessionID != "" && d.SessionID != filter.SessionID {
			continue
		}
		d.Content = "" // listings never carry content
		matches = append(matches, d)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CreatedAt.After(matches[j].CreatedAt)
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *DocumentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.docs {
		if r.docs[i].ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}
