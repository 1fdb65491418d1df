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

// PaymentRepository implements domain.PaymentRepository on MongoDB.
type PaymentRepository struct {
	coll *mongo.Collection
}

// NewPaymentRepository creates a new payment transaction repository
func NewPaymentRepository(db *DB) *PaymentRepository {
	return &PaymentRepository{coll: db.db.Collection(collPayments)}
}

func (r *PaymentRepository) Create(ctx context.Context, tx *domain.PaymentTransaction) error {
	if _, err := r.coll.InsertOne(ctx, tx); err != nil {
		return fmt.Errorf("failed to insert payment transaction: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetBySession(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error) {
	var tx domain.PaymentTransaction
	err := r.coll.FindOne(ctx, bson.M{"session_id": sessionID}).Decode(&tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find payment transaction: %w", err)
	}
	return &tx, nil
}

// UpdateStatus applies a provider-reported status with the paid guard: the
// filter excludes transactions already marked paid, so repeated confirmations
// and late lesser statuses are no-ops against a paid record.
func (r *PaymentRepository) UpdateStatus(ctx context.Context, sessionID, paymentStatus, status string, now time.Time) (*domain.PaymentTransaction, error) {
	filter := bson.M{
		"session_id":     sessionID,
		"payment_status": bson.M{"$ne": domain.PaymentPaid},
	}
	update := bson.M{"$set": bson.M{
		"payment_status": paymentStatus,
		"status":         status,
		"updated_at":     now,
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var tx domain.PaymentTransaction
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// Either absent or already paid; return the stored record as-is.
		return r.GetBySession(ctx, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update payment transaction: %w", err)
	}
	return &tx, nil
}
