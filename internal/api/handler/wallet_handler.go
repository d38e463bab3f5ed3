package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillx/skillx-api/internal/core/ports"
)

type WalletHandler struct {
	walletService ports.WalletService
}

func NewWalletHandler(walletService ports.WalletService) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

type walletTransactionResponse struct {
	Amount      int64     `json:"amount"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type walletResponse struct {
	Balance int64                       `json:"balance"`
	History []walletTransactionResponse `json:"history"`
}

// Statement returns the caller's balance and transaction history.
//
// @Summary      Wallet balance and history
// @Tags         wallet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  walletResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/wallet [get]
func (h *WalletHandler) Statement(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	statement, err := h.walletService.Statement(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	history := make([]walletTransactionResponse, len(statement.History))
	for i, tx := range statement.History {
		history[i] = walletTransactionResponse{
			Amount:      tx.Amount,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt.UTC(),
		}
	}

	return c.JSON(http.StatusOK, walletResponse{
		Balance: statement.Balance,
		History: history,
	})
}
