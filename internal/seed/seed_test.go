package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

type mockGuidanceRepo struct{ mock.Mock }

func (m *mockGuidanceRepo) FindOne(ctx context.Context, filter domain.GuidanceFilter) (*domain.GuidanceData, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuidanceData), args.Error(1)
}

func (m *mockGuidanceRepo) Find(ctx context.Context, filter domain.GuidanceFilter) ([]domain.GuidanceData, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.GuidanceData), args.Error(1)
}

func (m *mockGuidanceRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGuidanceRepo) InsertMany(ctx context.Context, items []domain.GuidanceData) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

type mockSupportRepo struct{ mock.Mock }

func (m *mockSupportRepo) Find(ctx context.Context, filter domain.SupportResourceFilter) ([]domain.SupportResource, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.SupportResource), args.Error(1)
}

func (m *mockSupportRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSupportRepo) InsertMany(ctx context.Context, items []domain.SupportResource) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

type mockSupplierRepo struct{ mock.Mock }

func (m *mockSupplierRepo) Create(ctx context.Context, supplier *domain.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *mockSupplierRepo) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) Find(ctx context.Context, filter domain.SupplierFilter) ([]domain.Supplier, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Supplier), args.Error(1)
}

func (m *mockSupplierRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockSupplierRepo) InsertMany(ctx context.Context, items []domain.Supplier) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func TestSeeder_Run_EmptyCollections(t *testing.T) {
	ctx := context.Background()
	guidance := new(mockGuidanceRepo)
	support := new(mockSupportRepo)
	suppliers := new(mockSupplierRepo)

	guidance.On("Count", ctx).Return(int64(0), nil)
	guidance.On("InsertMany", ctx, mock.AnythingOfType("[]domain.GuidanceData")).Return(nil)
	support.On("Count", ctx).Return(int64(0), nil)
	support.On("InsertMany", ctx, mock.AnythingOfType("[]domain.SupportResource")).Return(nil)
	suppliers.On("Count", ctx).Return(int64(0), nil)
	suppliers.On("InsertMany", ctx, mock.AnythingOfType("[]domain.Supplier")).Return(nil)

	err := New(guidance, support, suppliers).Run(ctx)
	assert.NoError(t, err)
	guidance.AssertExpectations(t)
	support.AssertExpectations(t)
	suppliers.AssertExpectations(t)
}

func TestSeeder_Run_SecondRunIsNoOp(t *testing.T) {
	ctx := context.Background()
	guidance := new(mockGuidanceRepo)
	support := new(mockSupportRepo)
	suppliers := new(mockSupplierRepo)

	guidance.On("Count", ctx).Return(int64(18), nil)
	support.On("Count", ctx).Return(int64(4), nil)
	suppliers.On("Count", ctx).Return(int64(80), nil)

	err := New(guidance, support, suppliers).Run(ctx)
	assert.NoError(t, err)

	guidance.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	support.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	suppliers.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestGuidanceItems_CoversAllFacets(t *testing.T) {
	items := GuidanceItems(time.Now())

	byCategory := map[string]int{}
	for _, item := range items {
		byCategory[item.Category]++
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Data)
	}

	assert.Equal(t, 6, byCategory[domain.GuidanceImmediateTasks])
	assert.Equal(t, 8, byCategory[domain.GuidanceFuneralPlanning])
	assert.Equal(t, 5, byCategory[domain.GuidanceBudgetGuide])
}

func TestSuppliers_Deterministic(t *testing.T) {
	first := Suppliers()
	second := Suppliers()

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)

	types := map[string]int{}
	for _, s := range first {
		types[s.Type]++
		assert.True(t, s.Available)
		assert.NotEmpty(t, s.Postcode)
	}
	for _, typ := range []string{
		domain.SupplierFuneralDirector,
		domain.SupplierFlorist,
		domain.SupplierMason,
		domain.SupplierVenue,
		domain.SupplierCaterer,
	} {
		assert.Greater(t, types[typ], 0, typ)
	}
}
