package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/llm"
)

func TestDetectMarketplaceNeed(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		messageCount int64
		wantType     string
	}{
		{
			name:         "never fires before third message",
			message:      "where can i find a funeral director near me",
			messageCount: 2,
			wantType:     "",
		},
		{
			name:         "explicit request with service keyword",
			message:      "Where can I find a funeral director near me",
			messageCount: 5,
			wantType:     domain.SupplierFuneralDirector,
		},
		{
			name:         "keyword without explicit phrasing stays quiet",
			message:      "my mother loved flowers",
			messageCount: 6,
			wantType:     "",
		},
		{
			name:         "explicit phrasing without service keyword stays quiet",
			message:      "where can i find my passport",
			messageCount: 6,
			wantType:     "",
		},
		{
			name:         "florist request",
			message:      "I'm looking for a florist for the service",
			messageCount: 4,
			wantType:     domain.SupplierFlorist,
		},
		{
			name:         "recommend a stonemason",
			message:      "can you recommend a stonemason for the headstone",
			messageCount: 3,
			wantType:     domain.SupplierMason,
		},
		{
			name:         "venue via wake keyword",
			message:      "need help finding somewhere to hold the wake",
			messageCount: 7,
			wantType:     domain.SupplierVenue,
		},
		{
			name:         "caterer request",
			message:      "who should i contact about catering for after the service",
			messageCount: 5,
			wantType:     domain.SupplierCaterer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMarketplaceNeed(tt.message, tt.messageCount)
			if tt.wantType == "" {
				assert.Nil(t, got)
				return
			}
			assert.NotNil(t, got)
			assert.True(t, got.Suggested)
			assert.Equal(t, tt.wantType, got.ServiceType)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestChatService_Chat(t *testing.T) {
	ctx := context.Background()

	newRouter := func(provider llm.Provider) *llm.Router {
		router := llm.NewRouter("mock")
		router.RegisterProvider(provider)
		return router
	}

	t.Run("persists both sides after completion", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockProvider := new(MockLLMProvider)
		mockProvider.On("Name").Return("mock")
		mockProvider.On("IsConfigured").Return(true)
		mockProvider.On("Complete", ctx, mock.AnythingOfType("llm.Request"), "").
			Return(&llm.Response{Content: "I'm so sorry for your loss.", Model: "mock"}, nil)

		mockMessageRepo.On("CountBySession", ctx, "sess-1").Return(int64(0), nil)
		mockMessageRepo.On("ListBySession", ctx, "sess-1", historyLimit).Return([]domain.ChatMessage{}, nil)
		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*domain.ChatMessage")).Return(nil).Twice()

		svc := NewChatService(mockMessageRepo, newRouter(mockProvider))

		resp, err := svc.Chat(ctx, domain.ChatRequest{SessionID: "sess-1", Message: "My father died yesterday"}, llm.PromptContext{})
		assert.NoError(t, err)
		assert.Equal(t, "sess-1", resp.SessionID)
		assert.Equal(t, "I'm so sorry for your loss.", resp.Message)
		assert.Nil(t, resp.MarketplaceRedirect)

		mockMessageRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("attaches marketplace suggestion after three messages", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockProvider := new(MockLLMProvider)
		mockProvider.On("Name").Return("mock")
		mockProvider.On("IsConfigured").Return(true)
		mockProvider.On("Complete", ctx, mock.AnythingOfType("llm.Request"), "").
			Return(&llm.Response{Content: "Here are some options."}, nil)

		mockMessageRepo.On("CountBySession", ctx, "sess-2").Return(int64(5), nil)
		mockMessageRepo.On("ListBySession", ctx, "sess-2", historyLimit).Return([]domain.ChatMessage{}, nil)
		mockMessageRepo.On("Create", ctx, mock.AnythingOfType("*domain.ChatMessage")).Return(nil)

		svc := NewChatService(mockMessageRepo, newRouter(mockProvider))

		resp, err := svc.Chat(ctx, domain.ChatRequest{
			SessionID: "sess-2",
			Message:   "where can I find a funeral director near me",
		}, llm.PromptContext{})
		assert.NoError(t, err)
		assert.NotNil(t, resp.MarketplaceRedirect)
		assert.Equal(t, domain.SupplierFuneralDirector, resp.MarketplaceRedirect.ServiceType)
	})

	t.Run("failed completion persists nothing", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockProvider := new(MockLLMProvider)
		mockProvider.On("Name").Return("mock")
		mockProvider.On("IsConfigured").Return(true)
		mockProvider.On("Complete", ctx, mock.AnythingOfType("llm.Request"), "").
			Return(nil, errors.New("upstream down"))

		mockMessageRepo.On("CountBySession", ctx, "sess-3").Return(int64(0), nil)
		mockMessageRepo.On("ListBySession", ctx, "sess-3", historyLimit).Return([]domain.ChatMessage{}, nil)

		svc := NewChatService(mockMessageRepo, newRouter(mockProvider))

		_, err := svc.Chat(ctx, domain.ChatRequest{SessionID: "sess-3", Message: "hello"}, llm.PromptContext{})
		assert.Error(t, err)
		mockMessageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("unconfigured provider is rejected up front", func(t *testing.T) {
		mockMessageRepo := new(MockMessageRepository)
		mockProvider := new(MockLLMProvider)
		mockProvider.On("Name").Return("mock")
		mockProvider.On("IsConfigured").Return(false)

		svc := NewChatService(mockMessageRepo, newRouter(mockProvider))

		_, err := svc.Chat(ctx, domain.ChatRequest{SessionID: "sess-4", Message: "hello"}, llm.PromptContext{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
		mockMessageRepo.AssertNotCalled(t, "CountBySession", mock.Anything, mock.Anything)
	})
}

func TestChatService_History(t *testing.T) {
	ctx := context.Background()
	mockMessageRepo := new(MockMessageRepository)
	svc := NewChatService(mockMessageRepo, llm.NewRouter("mock"))

	expected := []domain.ChatMessage{
		{ID: "m1", SessionID: "sess-1", Role: domain.RoleUser, Content: "hi"},
		{ID: "m2", SessionID: "sess-1", Role: domain.RoleAssistant, Content: "hello"},
	}
	mockMessageRepo.On("ListBySession", ctx, "sess-1", 100).Return(expected, nil)

	got, err := svc.History(ctx, "sess-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}
