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

// High ceiling on candidates loaded before the in-memory postcode passes.
const supplierScanLimit = 500

// SupplierRepository implements domain.SupplierRepository on MongoDB.
type SupplierRepository struct {
	coll *mongo.Collection
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *DB) *SupplierRepository {
	return &SupplierRepository{coll: db.db.Collection(collSuppliers)}
}

func (r *SupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	if _, err := r.coll.InsertOne(ctx, supplier); err != nil {
		return fmt.Errorf("failed to insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&supplier)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find supplier: %w", err)
	}
	return &supplier, nil
}

func (r *SupplierRepository) Find(ctx context.Context, filter domain.SupplierFilter) ([]domain.Supplier, error) {
	query := bson.M{}
	if filter.AvailableOnly {
		query["available"] = true
	}
	if filter.Type != "" {
		query["type"] = filter.Type
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetLimit(supplierScanLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	defer cursor.Close(ctx)

	suppliers := []domain.Supplier{}
	if err := cursor.All(ctx, &suppliers); err != nil {
		return nil, fmt.Errorf("failed to decode suppliers: %w", err)
	}
	return suppliers, nil
}

func (r *SupplierRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *SupplierRepository) InsertMany(ctx context.Context, items []domain.Supplier) error {
	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert suppliers: %w", err)
	}
	return nil
}
