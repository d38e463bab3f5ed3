package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, content string) error
	Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error)
}
