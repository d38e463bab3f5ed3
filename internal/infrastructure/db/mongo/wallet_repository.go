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

const transactionsCollection = "wallet_transactions"

// WalletRepository reads balances and writes ledger entries. The balance
// document is denormalized; Record keeps it consistent with the log by
// running both writes in one transaction.
type WalletRepository struct {
	client       *mongo.Client
	wallets      *mongo.Collection
	transactions *mongo.Collection
}

func NewWalletRepository(db *mongo.Database) *WalletRepository {
	return &WalletRepository{
		client:       db.Client(),
		wallets:      db.Collection(walletsCollection),
		transactions: db.Collection(transactionsCollection),
	}
}

type transactionDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"user_id"`
	Amount      int64              `bson:"amount"`
	Description string             `bson:"description"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (r *WalletRepository) FindByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrWalletNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc walletDoc
	if err := r.wallets.FindOne(ctx, bson.M{"user_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, mapErr("find wallet", err)
	}

	return &domain.Wallet{
		ID:        doc.ID.Hex(),
		UserID:    doc.UserID.Hex(),
		Balance:   doc.Balance,
		CreatedAt: doc.CreatedAt,
	}, nil
}

// ListTransactions returns the audit trail, most recent first.
func (r *WalletRepository) ListTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, domain.ErrWalletNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.transactions.Find(ctx, bson.M{"user_id": oid}, opts)
	if err != nil {
		return nil, mapErr("list transactions", err)
	}
	defer cur.Close(ctx)

	history := []domain.WalletTransaction{}
	for cur.Next(ctx) {
		var doc transactionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, mapErr("decode transaction", err)
		}
		history = append(history, domain.WalletTransaction{
			ID:          doc.ID.Hex(),
			UserID:      doc.UserID.Hex(),
			Amount:      doc.Amount,
			Description: doc.Description,
			CreatedAt:   doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, mapErr("list transactions", err)
	}
	return history, nil
}

// Record adjusts the stored balance and appends the ledger entry as one
// atomic unit.
func (r *WalletRepository) Record(ctx context.Context, userID string, amount int64, description string) error {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return domain.ErrWalletNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	sess, err := r.client.StartSession()
	if err != nil {
		return mapErr("start session", err)
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.wallets.UpdateOne(sc, bson.M{"user_id": oid}, bson.M{"$inc": bson.M{"balance": amount}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrWalletNotFound
		}

		doc := transactionDoc{
			UserID:      oid,
			Amount:      amount,
			Description: description,
			CreatedAt:   time.Now().UTC(),
		}
		_, err = r.transactions.InsertOne(sc, doc)
		return nil, err
	})
	if err != nil {
		if errors.Is(err, domain.ErrWalletNotFound) {
			return domain.ErrWalletNotFound
		}
		return mapErr("record transaction", err)
	}
	return nil
}

// EnsureIndexes creates the history listing index.
func (r *WalletRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.transactions.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	if err != nil {
		return mapErr("ensure transaction indexes", err)
	}
	return nil
}
