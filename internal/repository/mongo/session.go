package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SessionRepository implements domain.SessionRepository on MongoDB.
type SessionRepository struct {
	coll *mongo.Collection
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{coll: db.db.Collection(collSessions)}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	if _, err := r.coll.InsertOne(ctx, session); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, id string) (*domain.UserSession, error) {
	var session domain.UserSession
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) Update(ctx context.Context, id string, update domain.UserSessionUpdate, now time.Time) (*domain.UserSession, error) {
	set := bson.M{"updated_at": now}
	if update.CurrentStep != nil {
		set["current_step"] = *update.CurrentStep
	}
	if update.IsComplete != nil {
		set["is_complete"] = *update.IsComplete
	}
	if update.UserResponses != nil {
		set["user_responses"] = update.UserResponses
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var session domain.UserSession
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, bson.M{"$set": set}, opts).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}
	return &session, nil
}
