package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MemorialRepository implements domain.MemorialRepository on MongoDB.
type MemorialRepository struct {
	coll *mongo.Collection
}

// NewMemorialRepository creates a new memorial repository
func NewMemorialRepository(db *DB) *MemorialRepository {
	return &MemorialRepository{coll: db.db.Collection(collMemorials)}
}

func (r *MemorialRepository) Create(ctx context.Context, memorial *domain.Memorial) error {
	if _, err := r.coll.InsertOne(ctx, memorial); err != nil {
		return fmt.Errorf("failed to insert memorial: %w", err)
	}
	return nil
}

func (r *MemorialRepository) GetBySlug(ctx context.Context, slug string) (*domain.Memorial, error) {
	var memorial domain.Memorial
	err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&memorial)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find memorial: %w", err)
	}
	return &memorial, nil
}

func (r *MemorialRepository) ListRecent(ctx context.Context, limit int) ([]domain.Memorial, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list memorials: %w", err)
	}
	defer cursor.Close(ctx)

	memorials := []domain.Memorial{}
	if err := cursor.All(ctx, &memorials); err != nil {
		return nil, fmt.Errorf("failed to decode memorials: %w", err)
	}
	return memorials, nil
}
