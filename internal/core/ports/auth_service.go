package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	City     string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// Profile returns the account behind an authenticated user id.
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
