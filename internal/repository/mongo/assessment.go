package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AssessmentRepository implements domain.AssessmentRepository on MongoDB.
type AssessmentRepository struct {
	coll *mongo.Collection
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *DB) *AssessmentRepository {
	return &AssessmentRepository{coll: db.db.Collection(collAssessments)}
}

func (r *AssessmentRepository) Create(ctx context.Context, assessment *domain.AssessmentResponse) error {
	if _, err := r.coll.InsertOne(ctx, assessment); err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}
	return nil
}

func (r *AssessmentRepository) GetBySession(ctx context.Context, sessionID string) (*domain.AssessmentResponse, error) {
	// First match in natural order; no "latest wins" sort is applied.
	var assessment domain.AssessmentResponse
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&assessment)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find assessment: %w", err)
	}
	return &assessment, nil
}
