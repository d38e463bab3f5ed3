package ports

import (
	"context"
	"time"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// BookSessionInput carries the data needed to book a session.
type BookSessionInput struct {
	TeacherID   string
	LearnerID   string
	SkillID     string
	ScheduledAt time.Time
}

type SessionService interface {
	Book(ctx context.Context, input BookSessionInput) (*domain.Session, error)
	ListForUser(ctx context.Context, userID string) ([]domain.Session, error)
}
