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

const messagesCollection = "messages"

type MessageRepository struct {
	messages *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) *MessageRepository {
	return &MessageRepository{messages: db.Collection(messagesCollection)}
}

type messageDoc struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	SenderID   string             `bson:"sender_id"`
	ReceiverID string             `bson:"receiver_id"`
	Content    string             `bson:"content"`
	SentAt     time.Time          `bson:"sent_at"`
}

func (r *MessageRepository) Insert(ctx context.Context, m *domain.Message) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := messageDoc{
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Content:    m.Content,
		SentAt:     m.SentAt,
	}
	if _, err := r.messages.InsertOne(ctx, doc); err != nil {
		return mapErr("insert message", err)
	}
	return nil
}

// Conversation returns messages in either direction between the two users,
// oldest first.
func (r *MessageRepository) Conversation(ctx context.Context, userID, otherID string) ([]domain.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID, "receiver_id": otherID},
		bson.M{"sender_id": otherID, "receiver_id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "sent_at", Value: 1}})

	cur, err := r.messages.Find(ctx, filter, opts)
	if err != nil {
		return nil, mapErr("find conversation", err)
	}
	defer cur.Close(ctx)

	conversation := []domain.Message{}
	for cur.Next(ctx) {
		var doc messageDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, mapErr("decode message", err)
		}
		conversation = append(conversation, domain.Message{
			ID:         doc.ID.Hex(),
			SenderID:   doc.SenderID,
			ReceiverID: doc.ReceiverID,
			Content:    doc.Content,
			SentAt:     doc.SentAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, mapErr("find conversation", err)
	}
	return conversation, nil
}

// EnsureIndexes creates the conversation lookup indexes.
func (r *MessageRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "sender_id", Value: 1}, {Key: "receiver_id", Value: 1}, {Key: "sent_at", Value: 1}}},
		{Keys: bson.D{{Key: "receiver_id", Value: 1}, {Key: "sent_at", Value: 1}}},
	}
	if _, err := r.messages.Indexes().CreateMany(ctx, indexes); err != nil {
		return mapErr("ensure message indexes", err)
	}
	return nil
}
