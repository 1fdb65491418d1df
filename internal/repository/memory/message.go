package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

// MessageRepository keeps chat messages in an in-process slice.
type MessageRepository struct {
	mu       sync.RWMutex
	messages []domain.ChatMessage
}

// NewMessageRepository creates an empty in-memory message repository
func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(ctx context.Context, message *domain.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, *message)
	return nil
}

func (r *MessageRepository) ListBySession(ctx context.Context, sessionID string, limit int) ([]domain.ChatMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matches := []domain.ChatMessage{}
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			matches = append(matches, m)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Timestamp.Before(matches[j].Timestamp)
	})
	// Keep the newest messages when the transcript exceeds the limit.
	if limit > 0 && len(matches) > limit {
		matches = matches[len(matches)-limit:]
	}
	return matches, nil
}

func (r *MessageRepository) CountBySession(ctx context.Context, sessionID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, m := range r.messages {
		if m.SessionID == sessionID {
			count++
		}
	}
	return count, nil
}
