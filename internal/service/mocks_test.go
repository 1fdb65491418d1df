package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/llm"
	"github.com/PyedPyper01/Afterlife-1/internal/payments/stripe"
)

// MockSessionRepository mocks the SessionRepository interface
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, session *domain.UserSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) Get(ctx context.Context, id string) (*domain.UserSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSession), args.Error(1)
}

func (m *MockSessionRepository) Update(ctx context.Context, id string, update domain.UserSessionUpdate, now time.Time) (*domain.UserSession, error) {
	args := m.Called(ctx, id, update, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserSession), args.Error(1)
}

// MockAssessmentRepository mocks the AssessmentRepository interface
type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) Create(ctx context.Context, assessment *domain.AssessmentResponse) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

func (m *MockAssessmentRepository) GetBySession(ctx context.Context, sessionID string) (*domain.AssessmentResponse, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentResponse), args.Error(1)
}

// MockProgressRepository mocks the ProgressRepository interface
type MockProgressRepository struct {
	mock.Mock
}

func (m *MockProgressRepository) Upsert(ctx context.Context, save domain.StepProgressSave, now time.Time) (*domain.StepProgress, error) {
	args := m.Called(ctx, save, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StepProgress), args.Error(1)
}

func (m *MockProgressRepository) ListBySession(ctx context.Context, sessionID string) ([]domain.StepProgress, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).([]domain.StepProgress), args.Error(1)
}

// MockGuidanceRepository mocks the GuidanceRepository interface
type MockGuidanceRepository struct {
	mock.Mock
}

func (m *MockGuidanceRepository) FindOne(ctx context.Context, filter domain.GuidanceFilter) (*domain.GuidanceData, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuidanceData), args.Error(1)
}

func (m *MockGuidanceRepository) Find(ctx context.Context, filter domain.GuidanceFilter) ([]domain.GuidanceData, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.GuidanceData), args.Error(1)
}

func (m *MockGuidanceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGuidanceRepository) InsertMany(ctx context.Context, items []domain.GuidanceData) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

// MockSupportRepository mocks the SupportResourceRepository interface
type MockSupportRepository struct {
	mock.Mock
}

func (m *MockSupportRepository) Find(ctx context.Context, filter domain.SupportResourceFilter) ([]domain.SupportResource, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.SupportResource), args.Error(1)
}

func (m *MockSupportRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupportRepository) InsertMany(ctx context.Context, items []domain.SupportResource) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

// MockSupplierRepository mocks the SupplierRepository interface
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Find(ctx context.Context, filter domain.SupplierFilter) ([]domain.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) InsertMany(ctx context.Context, items []domain.Supplier) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

// MockMessageRepository mocks the MessageRepository interface
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	args := m.Called(ctx, sessionID, limit)
	return args.Get(0).([]domain.ChatMessage), args.Error(1)
}

func (m *MockMessageRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPaymentRepository mocks the PaymentRepository interface
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx *domain.PaymentTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetBySession(ctx context.Context, sessionID string) (*domain.PaymentTransaction, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentRepository) UpdateStatus(ctx context.Context, sessionID, paymentStatus, status string, now time.Time) (*domain.PaymentTransaction, error) {
	args := m.Called(ctx, sessionID, paymentStatus, status, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentTransaction), args.Error(1)
}

// MockLLMProvider mocks llm.Provider
type MockLLMProvider struct {
	mock.Mock
}

func (m *MockLLMProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLLMProvider) AvailableModels() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockLLMProvider) DefaultModel() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockLLMProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockLLMProvider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}

// MockCheckoutProvider mocks the CheckoutProvider interface
type MockCheckoutProvider struct {
	mock.Mock
}

func (m *MockCheckoutProvider) IsConfigured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockCheckoutProvider) CreateSession(ctx context.Context, req stripe.SessionRequest) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockCheckoutProvider) GetSession(ctx context.Context, sessionID string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockCheckoutProvider) ConstructEvent(payload []byte, sigHeader string) (*stripe.WebhookEvent, error) {
	args := m.Called(payload, sigHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stripe.WebhookEvent), args.Error(1)
}
