package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
	"github.com/PyedPyper01/Afterlife-1/internal/llm"
)

// historyLimit bounds the prior turns passed back to the completion service.
const historyLimit = 10

// explicitRequests are the phrasings treated as an explicit ask for a
// service. Anything else, whatever it mentions, never triggers a
// marketplace suggestion.
var explicitRequests = []string{
	"where can i find",
	"need a funeral director",
	"looking for a florist",
	"find a funeral home",
	"recommend a",
	"who should i contact",
	"need help finding",
}

// serviceKeywords maps supplier types to trigger words, checked in order so
// the first matching type wins.
var serviceKeywords = []struct {
	serviceType string
	keywords    []string
}{
	{domain.SupplierFuneralDirector, []string{"funeral director", "funeral home", "undertaker", "mortician"}},
	{domain.SupplierFlorist, []string{"florist", "flowers", "flower arrangement"}},
	{domain.SupplierMason, []string{"mason", "stonemason", "headstone", "gravestone"}},
	{domain.SupplierVenue, []string{"venue", "wake", "reception", "hall"}},
	{domain.SupplierCaterer, []string{"caterer", "catering", "food service"}},
}

// ChatService forwards chat turns to the completion service and persists
// the transcript.
type ChatService struct {
	messageRepo domain.MessageRepository
	llmRouter   *llm.Router
}

// NewChatService creates a new chat service
func NewChatService(messageRepo domain.MessageRepository, llmRouter *llm.Router) *ChatService {
	return &ChatService{
		messageRepo: messageRepo,
		llmRouter:   llmRouter,
	}
}

// DetectMarketplaceNeed decides whether a message warrants pointing the
// user at the supplier directory. It never fires before the third message
// of a session, and only on an explicit request naming a known service.
func DetectMarketplaceNeed(message string, messageCount int64) *domain.MarketplaceSuggestion {
	if messageCount < 3 {
		return nil
	}

	lower := strings.ToLower(message)

	explicit := false
	for _, phrase := range explicitRequests {
		if strings.Contains(lower, phrase) {
			explicit = true
			break
		}
	}
	if !explicit {
		return nil
	}

	for _, entry := range serviceKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return &domain.MarketplaceSuggestion{
					Suggested:   true,
					ServiceType: entry.serviceType,
					Message:     fmt.Sprintf("I can help you find %ss in our Marketplace.", strings.ReplaceAll(entry.serviceType, "_", " ")),
				}
			}
		}
	}

	return nil
}

// Chat sends one user turn to the completion service and saves both sides
// of the exchange. The completion call happens before any persistence so a
// failed call leaves no partial transcript.
func (s *ChatService) Chat(ctx context.Context, req domain.ChatRequest, pc llm.PromptContext) (*domain.ChatResponse, error) {
	provider, err := s.llmRouter.GetProvider("")
	if err != nil {
		return nil, fmt.Errorf("completion service unavailable: %w", err)
	}

	messageCount, err := s.messageRepo.CountBySession(ctx, req.SessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to count session messages: %w", err)
	}

	suggestion := DetectMarketplaceNeed(req.Message, messageCount)

	history, err := s.messageRepo.ListBySession(ctx, req.SessionID, historyLimit)
	if err != nil {
		log.Error().Err(err).Str("session_id", req.SessionID).Msg("failed to fetch chat history")
		history = nil
	}

	turns := make([]llm.Turn, 0, len(history))
	for _, msg := range history {
		turns = append(turns, llm.Turn{Role: string(msg.Role), Content: msg.Content})
	}

	llmResp, err := provider.Complete(ctx, llm.Request{
		SessionID: req.SessionID,
		System:    llm.BuildSystemPrompt(pc),
		Message:   req.Message,
		History:   turns,
	}, "")
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	now := time.Now().UTC()
	userMsg := &domain.ChatMessage{
		ID:        uuid.NewString(),
		SessionID: req.SessionID,
		UserID:    req.UserID,
		Role:      domain.RoleUser,
		Content:   req.Message,
		Timestamp: now,
	}
	if err := s.messageRepo.Create(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("failed to save user message: %w", err)
	}

	assistantTime := time.Now().UTC()
	assistantMsg := &domain.ChatMessage{
		ID:                  uuid.NewString(),
		SessionID:           req.SessionID,
		UserID:              req.UserID,
		Role:                domain.RoleAssistant,
		Content:             llmResp.Content,
		Timestamp:           assistantTime,
		MarketplaceRedirect: suggestion,
	}
	if err := s.messageRepo.Create(ctx, assistantMsg); err != nil {
		return nil, fmt.Errorf("failed to save assistant message: %w", err)
	}

	return &domain.ChatResponse{
		SessionID:           req.SessionID,
		Message:             llmResp.Content,
		Timestamp:           assistantTime,
		MarketplaceRedirect: suggestion,
	}, nil
}

// History returns the session transcript ordered oldest first.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]domain.ChatMessage, error) {
	messages, err := s.messageRepo.ListBySession(ctx, sessionID, 100)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	return messages, nil
}
