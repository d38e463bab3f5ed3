package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// MessageRepository defines persistence operations for direct messages.
type MessageRepository interface {
	Insert(ctx context.Context, m *domain.Message) error
	// Conversation returns all messages exchanged between the two users in
	// either direction, oldest first.
	Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error)
}
