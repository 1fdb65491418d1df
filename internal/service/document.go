package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// DocumentService handles the personal document vault
type DocumentService struct {
	documentRepo domain.DocumentRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(documentRepo domain.DocumentRepository) *DocumentService {
	return &DocumentService{documentRepo: documentRepo}
}

// Upload stores a document in the vault. Content arrives base64 encoded
// and is kept as-is.
func (s *DocumentService) Upload(ctx context.Context, req domain.DocumentUpload) (*domain.Document, error) {
	doc := &domain.Document{
		ID:           uuid.NewString(),
		UserID:       req.UserID,
		SessionID:    req.SessionID,
		Filename:     req.Filename,
		DocumentType: req.DocumentType,
		Content:      req.Content,
		MimeType:     req.MimeType,
		SizeBytes:    req.SizeBytes,
		Notes:        req.Notes,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.documentRepo.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to store document: %w", err)
	}
	return doc, nil
}

// Get fetches a single document including its content
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.documentRepo.Get(ctx, id)
}

// List returns vault entries for an owner, newest first and without
// content.
func (s *DocumentService) List(ctx context.Context, filter domain.DocumentFilter) ([]domain.Document, error) {
	docs, err := s.documentRepo.Find(ctx, filter, 100)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, nil
}

// Delete removes a document from the vault
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.documentRepo.Delete(ctx, id)
}
