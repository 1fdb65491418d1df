package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

func TestGuidanceService_GetGuidance(t *testing.T) {
	ctx := context.Background()
	mockGuidanceRepo := new(MockGuidanceRepository)
	svc := NewGuidanceService(mockGuidanceRepo, nil)

	filter := domain.GuidanceFilter{Category: domain.GuidanceImmediateTasks, Location: "home"}
	expected := &domain.GuidanceData{ID: "g1", Category: domain.GuidanceImmediateTasks, Location: "home"}
	mockGuidanceRepo.On("FindOne", ctx, filter).Return(expected, nil)

	got, err := svc.GetGuidance(ctx, filter)
	assert.NoError(t, err)
	assert.Equal(t, "g1", got.ID)
}

func TestGuidanceService_ListGuidance(t *testing.T) {
	ctx := context.Background()

	t.Run("matches returned as-is", func(t *testing.T) {
		mockGuidanceRepo := new(MockGuidanceRepository)
		svc := NewGuidanceService(mockGuidanceRepo, nil)

		filter := domain.GuidanceFilter{Category: domain.GuidanceFuneralPlanning}
		expected := []domain.GuidanceData{{ID: "g1"}, {ID: "g2"}}
		mockGuidanceRepo.On("Find", ctx, filter).Return(expected, nil)

		got, err := svc.ListGuidance(ctx, filter)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty result is not found", func(t *testing.T) {
		mockGuidanceRepo := new(MockGuidanceRepository)
		svc := NewGuidanceService(mockGuidanceRepo, nil)

		filter := domain.GuidanceFilter{Category: "no_such_category"}
		mockGuidanceRepo.On("Find", ctx, filter).Return([]domain.GuidanceData{}, nil)

		_, err := svc.ListGuidance(ctx, filter)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestGuidanceService_ListSupportResources(t *testing.T) {
	ctx := context.Background()
	mockSupportRepo := new(MockSupportRepository)
	svc := NewGuidanceService(nil, mockSupportRepo)

	t.Run("filtered list", func(t *testing.T) {
		filter := domain.SupportResourceFilter{Category: "emotional"}
		expected := []domain.SupportResource{{ID: "r1", Name: "Samaritans"}}
		mockSupportRepo.On("Find", ctx, filter).Return(expected, nil)

		got, err := svc.ListSupportResources(ctx, filter)
		assert.NoError(t, err)
		assert.Equal(t, "Samaritans", got[0].Name)
	})

	t.Run("nil result becomes empty slice", func(t *testing.T) {
		filter := domain.SupportResourceFilter{Type: "Nonexistent"}
		mockSupportRepo.On("Find", ctx, filter).Return([]domain.SupportResource(nil), nil)

		got, err := svc.ListSupportResources(ctx, filter)
		assert.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
