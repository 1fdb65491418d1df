package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/payments/stripe"
)

// Package is one fixed checkout offering. Amounts live server-side only;
// a client-supplied amount is never trusted.
type Package struct {
	Amount      float64
	Description string
}

// Packages is the fixed price list keyed by package id.
var Packages = map[string]Package{
	"concierge":       {Amount: 1000.00, Description: "Full Concierge Service"},
	"memorial_basic":  {Amount: 0.00, Description: "Free Memorial Page"},
	"donation_small":  {Amount: 5.00, Description: "£5 Donation"},
	"donation_medium": {Amount: 10.00, Description: "£10 Donation"},
	"donation_large":  {Amount: 25.00, Description: "£25 Donation"},
}

const checkoutCurrency = "gbp"

// CheckoutProvider is the hosted-checkout surface consumed by the payment
// service.
type CheckoutProvider interface {
	IsConfigured() bool
	CreateSession(ctx context.Context, req stripe.SessionRequest) (*stripe.CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error)
	ConstructEvent(payload []byte, sigHeader string) (*stripe.WebhookEvent, error)
}

// PaymentService handles hosted checkout sessions and status reconciliation
type PaymentService struct {
	paymentRepo domain.PaymentRepository
	provider    CheckoutProvider
}

// NewPaymentService creates a new payment service
func NewPaymentService(paymentRepo domain.PaymentRepository, provider CheckoutProvider) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		provider:    provider,
	}
}

// CreateCheckout starts a hosted checkout for a fixed package and records
// the transaction in pending/initiated state keyed by the provider's
// session id. Unknown packages and free packages are rejected.
func (s *PaymentService) CreateCheckout(ctx context.Context, req domain.CheckoutRequest) (*stripe.CheckoutSession, error) {
	if !s.provider.IsConfigured() {
		return nil, domain.ErrNotConfigured
	}

	pkg, ok := Packages[req.PackageID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPackage, req.PackageID)
	}
	if pkg.Amount == 0 {
		return nil, ErrFreePackage
	}

	origin := strings.TrimRight(req.OriginURL, "/")
	metadata := map[string]string{
		"package_id": req.PackageID,
		"user_id":    req.UserID,
	}
	for k, v := range req.Metadata {
		metadata[k] = v
	}

	session, err := s.provider.CreateSession(ctx, stripe.SessionRequest{
		Amount:      pkg.Amount,
		Currency:    checkoutCurrency,
		ProductName: pkg.Description,
		SuccessURL:  origin + "/#/payment-success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:   origin + "/#/payment-cancelled",
		Metadata:    metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	now := time.Now().UTC()
	tx := &domain.PaymentTransaction{
		ID:            uuid.NewString(),
		SessionID:     session.ID,
		UserID:        req.UserID,
		Amount:        pkg.Amount,
		Currency:      checkoutCurrency,
		PaymentStatus: domain.PaymentPending,
		Status:        domain.TransactionInitiated,
		Metadata:      metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.paymentRepo.Create(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	log.Info().Str("session_id", session.ID).Str("package_id", req.PackageID).Msg("created checkout session")
	return session, nil
}

// GetCheckoutStatus polls the provider for the session state and applies
// the paid transition to the local record at most once.
func (s *PaymentService) GetCheckoutStatus(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	if !s.provider.IsConfigured() {
		return nil, domain.ErrNotConfigured
	}

	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("status check failed: %w", err)
	}

	s.applyStatus(ctx, sessionID, session.PaymentStatus, session.Status)
	return session, nil
}

// HandleWebhook verifies and applies a provider callback. Invalid
// signatures fail before any state change.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	if !s.provider.IsConfigured() {
		return domain.ErrNotConfigured
	}

	event, err := s.provider.ConstructEvent(payload, sigHeader)
	if err != nil {
		return err
	}

	log.Info().Str("event_type", event.Type).Str("session_id", event.SessionID).Msg("webhook received")

	if event.SessionID != "" {
		s.applyStatus(ctx, event.SessionID, event.PaymentStatus, event.Status)
	}
	return nil
}

// applyStatus moves the stored transaction forward. The repository guard
// keeps a paid record from being downgraded, so repeated confirmations are
// no-ops. Reconciliation failures are logged, not surfaced: the provider
// remains the source of truth for the caller.
func (s *PaymentService) applyStatus(ctx context.Context, sessionID, paymentStatus, providerStatus string) {
	if paymentStatus == "" {
		return
	}
	status := providerStatus
	if paymentStatus == domain.PaymentPaid {
		status = domain.TransactionCompleted
	}
	if _, err := s.paymentRepo.UpdateStatus(ctx, sessionID, paymentStatus, status, time.Now().UTC()); err != nil {
		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to update payment transaction")
	}
}
