package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/skillx/skillx-api/internal/api/metrics"
	"github.com/skillx/skillx-api/internal/core/ports"
)

// WalletService exposes the balance/history read path and the append-only
// record operation. Balance is read from the wallet document, never from an
// in-process cache; the repository keeps it consistent with the log.
type WalletService struct {
	wallets ports.WalletRepository
	log     zerolog.Logger
}

func NewWalletService(wallets ports.WalletRepository, log zerolog.Logger) *WalletService {
	return &WalletService{wallets: wallets, log: log}
}

func (s *WalletService) Statement(ctx context.Context, userID string) (*ports.WalletStatement, error) {
	wallet, err := s.wallets.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := s.wallets.ListTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &ports.WalletStatement{Balance: wallet.Balance, History: history}, nil
}

// Record appends a signed amount to the ledger and adjusts the stored
// balance atomically.
func (s *WalletService) Record(ctx context.Context, userID string, amount int64, description string) error {
	if err := s.wallets.Record(ctx, userID, amount, description); err != nil {
		return err
	}

	metrics.WalletTransactionsTotal.Inc()
	s.log.Info().Str("user_id", userID).Int64("amount", amount).Msg("wallet transaction recorded")
	return nil
}
