package domain

import (
	"context"
	"time"
)

// Payment statuses reported by the checkout provider.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
	PaymentFailed  = "failed"
	PaymentExpired = "expired"
)

// Local transaction lifecycle states.
const (
	TransactionInitiated = "initiated"
	TransactionCompleted = "completed"
	TransactionCancelled = "cancelled"
)

// PaymentTransaction mirrors a hosted checkout session. SessionID is the
// provider's checkout session id. PaymentStatus only moves forward: once
// "paid" it is never overwritten to a lesser status.
type PaymentTransaction struct {
	ID            string            `json:"id" bson:"id"`
	SessionID     string            `json:"session_id" bson:"session_id"`
	UserID        string            `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Amount        float64           `json:"amount" bson:"amount"`
	Currency      string            `json:"currency" bson:"currency"`
	PaymentStatus string            `json:"payment_status" bson:"payment_status"`
	Status        string            `json:"status" bson:"status"`
	Metadata      map[string]string `json:"metadata" bson:"metadata"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at" bson:"updated_at"`
}

// CheckoutRequest starts a hosted checkout for a fixed package. The amount
// always comes from the server-side price list, never from the client.
type CheckoutRequest struct {
	PackageID string            `json:"package_id" validate:"required"`
	OriginURL string            `json:"origin_url" validate:"required,url"`
	UserID    string            `json:"user_id,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// PaymentRepository defines the interface for payment transaction storage
type PaymentRepository interface {
	Create(ctx context.Context, tx *PaymentTransaction) error
	GetBySession(ctx context.Context, sessionID string) (*PaymentTransaction, error)
	// UpdateStatus applies the provider-reported status, guarded so a
	// transaction already marked paid is never downgraded. Returns the
	// updated record; ErrNotFound when no transaction matches.
	UpdateStatus(ctx context.Context, sessionID, paymentStatus, status string, now time.Time) (*PaymentTransaction, error)
}
