package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillx/skillx-api/internal/core/domain"
)

const (
	usersCollection   = "users"
	walletsCollection = "wallets"
)

// UserRepository persists accounts. Account creation also creates the
// user's wallet; both writes run inside one multi-document transaction so a
// user can never exist without a wallet.
type UserRepository struct {
	client  *mongo.Client
	users   *mongo.Collection
	wallets *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{
		client:  db.Client(),
		users:   db.Collection(usersCollection),
		wallets: db.Collection(walletsCollection),
	}
}

type userDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Email        string             `bson:"email"`
	City         string             `bson:"city,omitempty"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	CreatedAt    time.Time          `bson:"created_at"`
}

type walletDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Balance   int64              `bson:"balance"`
	CreatedAt time.Time          `bson:"created_at"`
}

// Create inserts the user and its wallet atomically. The loser of a
// concurrent registration race hits the unique email index and gets
// domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, wallet *domain.Wallet) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sess, err := r.client.StartSession()
	if err != nil {
		return nil, mapErr("start session", err)
	}
	defer sess.EndSession(ctx)

	udoc := userDoc{
		Name:         user.Name,
		Email:        user.Email,
		City:         user.City,
		PasswordHash: user.PasswordHash,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
	}

	result, err := sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.users.InsertOne(sc, udoc)
		if err != nil {
			return nil, err
		}
		userID := res.InsertedID.(primitive.ObjectID)

		wdoc := walletDoc{
			UserID:    userID,
			Balance:   wallet.Balance,
			CreatedAt: wallet.CreatedAt,
		}
		if _, err := r.wallets.InsertOne(sc, wdoc); err != nil {
			return nil, err
		}
		return userID, nil
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, mapErr("create user", err)
	}

	created := *user
	created.ID = result.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, mapErr("find user by email", err)
	}
	return toUser(doc), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := r.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, mapErr("find user by id", err)
	}
	return toUser(doc), nil
}

// EnsureIndexes creates the unique email index and the wallet ownership
// index. Must run before the server accepts registrations.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return mapErr("ensure user indexes", err)
	}

	_, err = r.wallets.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return mapErr("ensure wallet indexes", err)
	}
	return nil
}

func toUser(doc userDoc) *domain.User {
	return &domain.User{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Email:        doc.Email,
		City:         doc.City,
		PasswordHash: doc.PasswordHash,
		Role:         doc.Role,
		CreatedAt:    doc.CreatedAt,
	}
}
