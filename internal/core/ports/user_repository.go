package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	// Create persists the user together with its initial wallet as one
	// atomic unit: if either write fails, neither survives.
	Create(ctx context.Context, user *domain.User, wallet *domain.Wallet) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
