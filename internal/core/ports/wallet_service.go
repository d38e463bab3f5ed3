package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// WalletStatement is the balance plus full history view returned to the
// wallet owner.
type WalletStatement struct {
	Balance int64
	History []domain.WalletTransaction
}

type WalletService interface {
	Statement(ctx context.Context, userID string) (*WalletStatement, error)
	Record(ctx context.Context, userID string, amount int64, description string) error
}
