package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillx/skillx-api/internal/core/domain"
	"github.com/skillx/skillx-api/internal/core/ports"
)

// SessionService implements booking and listing of skill sessions.
type SessionService struct {
	sessions ports.SessionRepository
	log      zerolog.Logger
}

func NewSessionService(sessions ports.SessionRepository, log zerolog.Logger) *SessionService {
	return &SessionService{sessions: sessions, log: log}
}

// Book creates a session in the pending state.
func (s *SessionService) Book(ctx context.Context, input ports.BookSessionInput) (*domain.Session, error) {
	session := &domain.Session{
		TeacherID:   input.TeacherID,
		LearnerID:   input.LearnerID,
		SkillID:     input.SkillID,
		ScheduledAt: input.ScheduledAt.UTC(),
		Status:      domain.SessionPending,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.sessions.Insert(ctx, session); err != nil {
		return nil, err
	}

	s.log.Info().Str("teacher_id", input.TeacherID).Str("learner_id", input.LearnerID).Msg("session booked")
	return session, nil
}

func (s *SessionService) ListForUser(ctx context.Context, userID string) ([]domain.Session, error) {
	return s.sessions.ListForUser(ctx, userID)
}
