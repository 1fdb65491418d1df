package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository implements domain.ProgressRepository on MongoDB.
type ProgressRepository struct {
	coll *mongo.Collection
}

// NewProgressRepository creates a new step progress repository
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{coll: db.db.Collection(collProgress)}
}

// Upsert updates the record matching (session_id, step_id) in place, or
// inserts a new one. A single atomic FindOneAndUpdate keeps concurrent saves
// for the same pair from creating duplicates.
func (r *ProgressRepository) Upsert(ctx context.Context, save domain.StepProgressSave, now time.Time) (*domain.StepProgress, error) {
	filter := bson.M{"session_id": save.SessionID, "step_id": save.StepID}
	update := bson.M{
		"$set": bson.M{
			"step_name":       save.StepName,
			"completed_tasks": save.CompletedTasks,
			"step_data":       save.StepData,
			"updated_at":      now,
		},
		"$setOnInsert": bson.M{
			"id":         uuid.NewString(),
			"session_id": save.SessionID,
			"step_id":    save.StepID,
			"created_at": now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var progress domain.StepProgress
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&progress); err != nil {
		return nil, fmt.Errorf("failed to upsert step progress: %w", err)
	}
	return &progress, nil
}

func (r *ProgressRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.StepProgress, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID})
	if err != nil {
		return nil, fmt.Errorf("failed to list step progress: %w", err)
	}
	defer cursor.Close(ctx)

	progress := []domain.StepProgress{}
	if err := cursor.All(ctx, &progress); err != nil {
		return nil, fmt.Errorf("failed to decode step progress: %w", err)
	}
	return progress, nil
}
