package ports

import "github.com/skillx/skillx-api/internal/core/domain"

// Claims are the identity fields carried by a bearer token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// TokenService issues and verifies signed bearer tokens. Tokens are
// stateless: validity is decided purely by signature and expiry, there is
// no server-side session or revocation list.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify returns domain.ErrInvalidToken for any malformed, tampered,
	// or expired token.
	Verify(token string) (*Claims, error)
}
