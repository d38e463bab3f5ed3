package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// WalletRepository defines persistence operations for wallets and their
// transaction log.
type WalletRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
	// ListTransactions returns the audit trail, most recent first.
	ListTransactions(ctx context.Context, userID string) ([]domain.WalletTransaction, error)
	// Record appends a transaction and adjusts the stored balance by
	// amount inside a single store transaction.
	Record(ctx context.Context, userID string, amount int64, description string) error
}
