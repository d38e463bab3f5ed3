package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillx/skillx-api/internal/core/domain"
)

const sessionsCollection = "sessions"

type SessionRepository struct {
	sessions *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) *SessionRepository {
	return &SessionRepository{sessions: db.Collection(sessionsCollection)}
}

type sessionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	TeacherID   string             `bson:"teacher_id"`
	LearnerID   string             `bson:"learner_id"`
	SkillID     string             `bson:"skill_id"`
	ScheduledAt time.Time          `bson:"scheduled_at"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *SessionRepository) Insert(ctx context.Context, s *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := sessionDoc{
		TeacherID:   s.TeacherID,
		LearnerID:   s.LearnerID,
		SkillID:     s.SkillID,
		ScheduledAt: s.ScheduledAt,
		Status:      string(s.Status),
		CreatedAt:   s.CreatedAt,
	}
	res, err := r.sessions.InsertOne(ctx, doc)
	if err != nil {
		return mapErr("insert session", err)
	}
	s.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// ListForUser returns sessions where the user participates on either side,
// most recently scheduled first.
func (r *SessionRepository) ListForUser(ctx context.Context, userID string) ([]domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"teacher_id": userID},
		bson.M{"learner_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}})

	cur, err := r.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapErr("list sessions", err)
	}
	defer cur.Close(ctx)

	sessions := []domain.Session{}
	for cur.Next(ctx) {
		var doc sessionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, mapErr("decode session", err)
		}
		sessions = append(sessions, domain.Session{
			ID:          doc.ID.Hex(),
			TeacherID:   doc.TeacherID,
			LearnerID:   doc.LearnerID,
			SkillID:     doc.SkillID,
			ScheduledAt: doc.ScheduledAt,
			Status:      domain.SessionStatus(doc.Status),
			CreatedAt:   doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, mapErr("list sessions", err)
	}
	return sessions, nil
}

// EnsureIndexes creates the participant listing indexes.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "teacher_id", Value: 1}, {Key: "scheduled_at", Value: -1}}},
		{Keys: bson.D{{Key: "learner_id", Value: 1}, {Key: "scheduled_at", Value: -1}}},
	}
	if _, err := r.sessions.Indexes().CreateMany(ctx, indexes); err != nil {
		return mapErr("ensure session indexes", err)
	}
	return nil
}
