package domain

import (
	"context"
	"time"
)

// Document is a vaulted personal document (will, death certificate,
// insurance paperwork). Content is stored base64 encoded and stripped
// from listings.
type Document struct {
	ID           string    `json:"id" bson:"id"`
	UserID       string    `json:"user_id,omitempty" bson:"user_id,omitempty"`
	SessionID    string    `json:"session_id,omitempty" bson:"session_id,omitempty"`
	Filename     string    `json:"filename" bson:"filename"`
	DocumentType string    `json:"document_type" bson:"document_type"`
	Content      string    `json:"content,omitempty" bson:"content"`
	MimeType     string    `json:"mime_type" bson:"mime_type"`
	SizeBytes    int64     `json:"size_bytes" bson:"size_bytes"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

// DocumentUpload is the vault upload payload.
type DocumentUpload struct {
	Filename     string `json:"filename" validate:"required"`
	DocumentType string `json:"document_type" validate:"required"`
	Content      string `json:"content" validate:"required"` // base64
	MimeType     string `json:"mime_type" validate:"required"`
	SizeBytes    int64  `json:"size_bytes" validate:"gte=0"`
	Notes        string `json:"notes,omitempty"`
	UserID       string `json:"user_id,omitempty"`
	SessionID    string `json:"session_id,omitempty"`
}

// DocumentFilter narrows the vault listing by owner.
type DocumentFilter struct {
	UserID    string
	SessionID string
}

// DocumentRepository defines the interface for document vault storage
type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	Get(ctx context.Context, id string) (*Document, error)
	// Find returns matching documents newest first, without content.
	Find(ctx context.Context, filter DocumentFilter, limit int) ([]Document, error)
	Delete(ctx context.Context, id string) error
}
