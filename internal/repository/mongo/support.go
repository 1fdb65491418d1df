package mongo

import (
	"context"
	"fmt"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SupportRepository implements domain.SupportResourceRepository on MongoDB.
type SupportRepository struct {
	coll *mongo.Collection
}

// NewSupportRepository creates a new support resource repository
func NewSupportRepository(db *DB) *SupportRepository {
	return &SupportRepository{coll: db.db.Collection(collSupport)}
}

func (r *SupportRepository) Find(ctx context.Context, filter domain.SupportResourceFilter) ([]domain.SupportResource, error) {
	query := bson.M{}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	cursor, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list support resources: %w", err)
	}
	defer cursor.Close(ctx)

	resources := []domain.SupportResource{}
	if err := cursor.All(ctx, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode support resources: %w", err)
	}
	return resources, nil
}

func (r *SupportRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *SupportRepository) InsertMany(ctx context.Context, items []domain.SupportResource) error {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert support resources: %w", err)
	}
	return nil
}
