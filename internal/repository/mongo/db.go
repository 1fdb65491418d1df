package mongo

import (
	"context"
	"fmt"

	"github.com/PyedPyper01/Afterlife-1/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	collSessions    = "user_sessions"
	collAssessments = "assessment_responses"
	collProgress    = "step_progress"
	collSupport     = "support_resources"
	collGuidance    = "guidance_data"
	collSuppliers   = "suppliers"
	collMessages    = "chat_messages"
	collPayments    = "payment_transactions"
	collMemorials   = "memorials"
	collDocuments   = "documents"
)

// DB wraps the Mongo client and database handle. It is constructed once at
// startup and injected into the repositories.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewDB connects to MongoDB and verifies the connection.
func NewDB(ctx context.Context, cfg config.MongoConfig) (*DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return &DB{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Ping verifies the connection is still alive.
func (d *DB) Ping(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (d *DB) Close() error {
	return d.client.Disconnect(context.Background())
}

// EnsureIndexes creates the indexes used by the query paths. Safe to call
// repeatedly; existing indexes are left alone.
func (d *DB) EnsureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		collSessions: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
			{Keys: bson.D{{Key: "current_step", Value: 1}}},
		},
		collAssessments: {
			{Keys: bson.D{{Key: "session_id", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: 1}}},
		},
		collProgress: {
			{Keys: bson.D{{Key: "session_id", Value: 1}}},
			{Keys: bson.D{{Key: "step_id", Value: 1}}},
			{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "step_id", Value: 1}}},
		},
		collSupport: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "type", Value: 1}}},
		},
		collGuidance: {
			{Keys: bson.D{{Key: "category", Value: 1}}},
			{Keys: bson.D{{Key: "religion", Value: 1}}},
			{Keys: bson.D{{Key: "location", Value: 1}}},
			{Keys: bson.D{{Key: "budget", Value: 1}}},
		},
		collSuppliers: {
			{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "type", Value: 1}}},
			{Keys: bson.D{{Key: "available", Value: 1}}},
		},
		collMessages: {
			{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		},
		collPayments: {
			{Keys: bson.D{{Key: "session_id", Value: 1}}},
		},
		collMemorials: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		collDocuments: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
			{Keys: bson.D{{Key: "session_id", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := d.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
