package mongo

import (
	"context"
	"fmt"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MessageRepository implements domain.MessageRepository on MongoDB.
type MessageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository creates a new chat message repository
func NewMessageRepository(db *DB) *MessageRepository {
	return &MessageRepository{coll: db.db.Collection(collMessages)}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	if _, err := r.coll.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// ListBySession returns the newest limit messages, oldest first. The
// query sorts descending so the limit keeps the tail of the transcript,
// then the page is reversed back into chronological order.
func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.coll.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	messages := []domain.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *MessageRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"session_id": sessionID})
}
