package domain

import (
	"errors"
	"time"
)

// InitialBalance is credited to every wallet at registration.
const InitialBalance = 50

var ErrWalletNotFound = errors.New("wallet not found")

// Wallet holds the denormalized token balance for one user. The balance is
// kept in sync with the transaction log by updating both inside a single
// store transaction; it must always equal InitialBalance plus the sum of
// all transaction amounts.
type Wallet struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// WalletTransaction is one append-only ledger entry. Amount is signed:
// positive credits the wallet, negative debits it.
type WalletTransaction struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
