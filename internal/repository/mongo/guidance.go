package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GuidanceRepository implements domain.GuidanceRepository on MongoDB.
type GuidanceRepository struct {
	coll *mongo.Collection
}

// NewGuidanceRepository creates a new guidance repository
func NewGuidanceRepository(db *DB) *GuidanceRepository {
	return &GuidanceRepository{coll: db.db.Collection(collGuidance)}
}

func guidanceQuery(filter domain.GuidanceFilter) bson.M {
	query := bson.M{"category": filter.Category}
	if filter.Religion != "" {
		query["religion"] = filter.Religion
	}
	if filter.Location != "" {
		query["location"] = filter.Location
	}
	if filter.Budget != "" {
		query["budget"] = filter.Budget
	}
	return query
}

func (r *GuidanceRepository) FindOne(ctx context.Context, filter domain.GuidanceFilter) (*domain.GuidanceData, error) {
	var guidance domain.GuidanceData
	err := r.coll.FindOne(ctx, guidanceQuery(filter)).Decode(&guidance)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find guidance: %w", err)
	}
	return &guidance, nil
}

func (r *GuidanceRepository) Find(ctx context.Context, filter domain.GuidanceFilter) ([]domain.GuidanceData, error) {
	cursor, err := r.coll.Find(ctx, guidanceQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to list guidance: %w", err)
	}
	defer cursor.Close(ctx)

	items := []domain.GuidanceData{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode guidance: %w", err)
	}
	return items, nil
}

func (r *GuidanceRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *GuidanceRepository) InsertMany(ctx context.Context, items []domain.GuidanceData) error {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert guidance: %w", err)
	}
	return nil
}
