package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// SessionRepository defines persistence operations for booked sessions.
type SessionRepository interface {
	Insert(ctx context.Context, s *domain.Session) error
	// ListForUser returns sessions where the user is teacher or learner,
	// most recently scheduled first.
	ListForUser(ctx context.Context, userID string) ([]domain.Session, error)
}
