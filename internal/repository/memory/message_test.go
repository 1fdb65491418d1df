package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PyedPyper01/Afterlife-1/internal/domain"
)

func TestMessageRepository_ListBySession_KeepsNewestWithinLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 15; i++ {
		require.NoError(t, repo.Create(ctx, &domain.ChatMessage{
			ID:        fmt.Sprintf("msg-%d", i),
			SessionID: "session-1",
			Role:      domain.RoleUser,
			Content:   fmt.Sprintf("turn %d", i),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	messages, err := repo.ListBySession(ctx, "session-1", 10)
	require.NoError(t, err)
	require.Len(t, messages, 10)

	// The oldest five turns fall off; what remains is chronological.
	assert.Equal(t, "msg-5", messages[0].ID)
	assert.Equal(t, "msg-14", messages[9].ID)
	for i := 1; i < len(messages); i++ {
		assert.True(t, messages[i-1].Timestamp.Before(messages[i].Timestamp))
	}
}

func TestMessageRepository_ListBySession_NoLimit(t *testing.T) {
	ctx := context.Background()
	repo := NewMessageRepository()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, &domain.ChatMessage{
			ID:        fmt.Sprintf("msg-%d", i),
			SessionID: "session-1",
			Role:      domain.RoleUser,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	messages, err := repo.ListBySession(ctx, "session-1", 0)
	require.NoError(t, err)
	assert.Len(t, messages, 3)

	count, err := repo.CountBySession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}
