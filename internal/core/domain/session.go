package domain

import "time"

// SessionStatus is the lifecycle state of a booked session.
type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionConfirmed SessionStatus = "confirmed"
	SessionCancelled SessionStatus = "cancelled"
)

// Session is a booked skill-exchange appointment between a teacher and a
// learner. New sessions always start as pending.
type Session struct {
	ID          string        `json:"id"`
	TeacherID   string        `json:"teacher_id"`
	LearnerID   string        `json:"learner_id"`
	SkillID     string        `json:"skill_id"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Status      SessionStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}
