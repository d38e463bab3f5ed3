package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/skillx/skillx-api/internal/core/ports"
)

// StatsRepository aggregates collection counts for the admin overview.
type StatsRepository struct {
	users    *mongo.Collection
	sessions *mongo.Collection
	messages *mongo.Collection
}

func NewStatsRepository(db *mongo.Database) *StatsRepository {
	return &StatsRepository{
		users:    db.Collection(usersCollection),
		sessions: db.Collection(sessionsCollection),
		messages: db.Collection(messagesCollection),
	}
}

func (r *StatsRepository) Counts(ctx context.Context) (*ports.OverviewCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	users, err := r.users.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, mapErr("count users", err)
	}
	sessions, err := r.sessions.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, mapErr("count sessions", err)
	}
	messages, err := r.messages.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, mapErr("count messages", err)
	}

	return &ports.OverviewCounts{Users: users, Sessions: sessions, Messages: messages}, nil
}
