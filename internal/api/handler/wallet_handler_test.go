package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/skillx/skillx-api/internal/core/domain"
	"github.com/skillx/skillx-api/internal/core/ports"
)

type stubWalletService struct {
	statementFn func(ctx context.Context, userID string) (*ports.WalletStatement, error)
	recordFn    func(ctx context.Context, userID string, amount int64, description string) error
}

func (s *stubWalletService) Statement(ctx context.Context, userID string) (*ports.WalletStatement, error) {
	return s.statementFn(ctx, userID)
}

func (s *stubWalletService) Record(ctx context.Context, userID string, amount int64, description string) error {
	return s.recordFn(ctx, userID, amount, description)
}

func TestWalletHandler_Statement(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	h := NewWalletHandler(&stubWalletService{
		statementFn: func(ctx context.Context, userID string) (*ports.WalletStatement, error) {
			if userID != "u1" {
				t.Fatalf("unexpected user id %s", userID)
			}
			return &ports.WalletStatement{
				Balance: 65,
				History: []domain.WalletTransaction{
					{Amount: 15, Description: "session payout", CreatedAt: created},
				},
			}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/wallet", "")
	c.Set("user_id", "u1")

	if err := h.Statement(c); err != nil {
		t.Fatalf("statement: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Balance int64 `json:"balance"`
		History []struct {
			Amount      int64  `json:"amount"`
			Description string `json:"description"`
		} `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Balance != 65 {
		t.Fatalf("expected balance 65, got %d", body.Balance)
	}
	if len(body.History) != 1 || body.History[0].Amount != 15 || body.History[0].Description != "session payout" {
		t.Fatalf("unexpected history %+v", body.History)
	}
}

func TestWalletHandler_Statement_EmptyHistory(t *testing.T) {
	h := NewWalletHandler(&stubWalletService{
		statementFn: func(ctx context.Context, userID string) (*ports.WalletStatement, error) {
			return &ports.WalletStatement{Balance: domain.InitialBalance}, nil
		},
	})

	c, rec := newJSONContext(t, http.MethodGet, "/api/wallet", "")
	c.Set("user_id", "u1")

	if err := h.Statement(c); err != nil {
		t.Fatalf("statement: %v", err)
	}

	var body struct {
		Balance int64             `json:"balance"`
		History []json.RawMessage `json:"history"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Balance != domain.InitialBalance {
		t.Fatalf("expected initial balance, got %d", body.Balance)
	}
	if body.History == nil {
		t.Fatalf("history should encode as empty array, not null")
	}
}

func TestWalletHandler_Statement_WalletMissingPropagates(t *testing.T) {
	h := NewWalletHandler(&stubWalletService{
		statementFn: func(ctx context.Context, userID string) (*ports.WalletStatement, error) {
			return nil, domain.ErrWalletNotFound
		},
	})

	c, _ := newJSONContext(t, http.MethodGet, "/api/wallet", "")
	c.Set("user_id", "u1")

	if err := h.Statement(c); !errors.Is(err, domain.ErrWalletNotFound) {
		t.Fatalf("expected ErrWalletNotFound, got %v", err)
	}
}
