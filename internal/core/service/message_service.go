package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillx/skillx-api/internal/core/domain"
	"github.com/skillx/skillx-api/internal/core/ports"
)

// MessageService implements direct messaging between users.
type MessageService struct {
	messages ports.MessageRepository
	log      zerolog.Logger
}

func NewMessageService(messages ports.MessageRepository, log zerolog.Logger) *MessageService {
	return &MessageService{messages: messages, log: log}
}

func (s *MessageService) Send(ctx context.Context, senderID, receiverID, content string) error {
	m := &domain.Message{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		SentAt:     time.Now().UTC(),
	}
	if err := s.messages.Insert(ctx, m); err != nil {
		return err
	}

	s.log.Debug().Str("sender_id", senderID).Str("receiver_id", receiverID).Msg("message sent")
	return nil
}

func (s *MessageService) Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	return s.messages.Conversation(ctx, userID, otherID)
}
