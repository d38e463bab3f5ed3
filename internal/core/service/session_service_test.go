package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillx/skillx-api/internal/core/domain"
	"github.com/skillx/skillx-api/internal/core/ports"
)

type stubSessionRepo struct {
	inserted []*domain.Session
	sessions []domain.Session
}

func (s *stubSessionRepo) Insert(ctx context.Context, sess *domain.Session) error {
	sess.ID = "s1"
	s.inserted = append(s.inserted, sess)
	return nil
}

func (s *stubSessionRepo) ListForUser(ctx context.Context, userID string) ([]domain.Session, error) {
	return s.sessions, nil
}

func TestSessionService_Book_StartsPending(t *testing.T) {
	repo := &stubSessionRepo{}
	svc := NewSessionService(repo, zerolog.Nop())

	scheduled := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	session, err := svc.Book(context.Background(), ports.BookSessionInput{
		TeacherID:   "u2",
		LearnerID:   "u1",
		SkillID:     "l1",
		ScheduledAt: scheduled,
	})
	if err != nil {
		t.Fatalf("book: %v", err)
	}

	if session.Status != domain.SessionPending {
		t.Fatalf("expected pending status, got %s", session.Status)
	}
	if session.ID != "s1" {
		t.Fatalf("expected repository-assigned id, got %q", session.ID)
	}
	if !session.ScheduledAt.Equal(scheduled) {
		t.Fatalf("unexpected scheduled time %v", session.ScheduledAt)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("expected 1 insert, got %d", len(repo.inserted))
	}
}

func TestSessionService_ListForUser(t *testing.T) {
	repo := &stubSessionRepo{
		sessions: []domain.Session{
			{ID: "s2", Status: domain.SessionConfirmed},
			{ID: "s1", Status: domain.SessionPending},
		},
	}
	svc := NewSessionService(repo, zerolog.Nop())

	sessions, err := svc.ListForUser(context.Background(), "u1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(sessions) != 2 || sessions[0].ID != "s2" {
		t.Fatalf("unexpected sessions %+v", sessions)
	}
}
