package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillx/skillx-api/internal/core/domain"
	"github.com/skillx/skillx-api/internal/core/ports"
)

type stubUserRepo struct {
	createFn      func(ctx context.Context, user *domain.User, wallet *domain.Wallet) (*domain.User, error)
	findByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn    func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User, wallet *domain.Wallet) (*domain.User, error) {
	return s.createFn(ctx, user, wallet)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

type stubThrottle struct {
	blocked bool
	fails   int
	resets  int
}

func (s *stubThrottle) TooMany(ctx context.Context, email string) (bool, error) {
	return s.blocked, nil
}

func (s *stubThrottle) Fail(ctx context.Context, email string) error {
	s.fails++
	return nil
}

func (s *stubThrottle) Reset(ctx context.Context, email string) error {
	s.resets++
	return nil
}

func newTestAuthService(repo *stubUserRepo, throttle *stubThrottle) *AuthService {
	tokens := NewTokenService("test-secret", 0)
	return NewAuthService(repo, tokens, throttle, zerolog.Nop())
}

func TestAuthService_Register_HashesPasswordAndCreatesWallet(t *testing.T) {
	var gotUser *domain.User
	var gotWallet *domain.Wallet
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User, wallet *domain.Wallet) (*domain.User, error) {
			gotUser, gotWallet = user, wallet
			created := *user
			created.ID = "u1"
			return &created, nil
		},
	}
	svc := newTestAuthService(repo, &stubThrottle{})

	created, err := svc.Register(context.Background(), ports.RegisterInput{
		Name:     "A",
		Email:    "a@x.com",
		Password: "pw",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.ID != "u1" {
		t.Fatalf("expected created id, got %q", created.ID)
	}
	if created.Role != domain.RoleUser {
		t.Fatalf("expected default role user, got %s", created.Role)
	}

	if gotUser.PasswordHash == "pw" || gotUser.PasswordHash == "" {
		t.Fatalf("password stored without hashing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(gotUser.PasswordHash), []byte("pw")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}

	if gotWallet == nil {
		t.Fatalf("wallet not created alongside user")
	}
	if gotWallet.Balance != domain.InitialBalance {
		t.Fatalf("expected initial balance %d, got %d", domain.InitialBalance, gotWallet.Balance)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User, wallet *domain.Wallet) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	svc := newTestAuthService(repo, &stubThrottle{})

	_, err := svc.Register(context.Background(), ports.RegisterInput{Name: "A", Email: "a@x.com", Password: "pw"})
	if err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcryptCost)
	user := &domain.User{ID: "u1", Name: "A", Email: "a@x.com", PasswordHash: string(hash), Role: domain.RoleUser}
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "a@x.com" {
				t.Fatalf("unexpected email %s", email)
			}
			return user, nil
		},
	}
	throttle := &stubThrottle{}
	svc := newTestAuthService(repo, throttle)

	token, got, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	if got.ID != "u1" {
		t.Fatalf("unexpected user %+v", got)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset after success, got %d", throttle.resets)
	}

	// Token claims round-trip to the stored identity.
	claims, err := NewTokenService("test-secret", 0).Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "a@x.com" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestAuthService_Login_WrongPasswordAndUnknownEmailIndistinguishable(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("pw"), bcryptCost)
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			if email == "a@x.com" {
				return &domain.User{ID: "u1", Email: email, PasswordHash: string(hash)}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	}
	throttle := &stubThrottle{}
	svc := newTestAuthService(repo, throttle)

	_, _, errWrongPw := svc.Login(context.Background(), "a@x.com", "nope")
	_, _, errUnknown := svc.Login(context.Background(), "ghost@x.com", "pw")

	if errWrongPw != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknown)
	}
	if throttle.fails != 2 {
		t.Fatalf("expected 2 recorded failures, got %d", throttle.fails)
	}
}

func TestAuthService_Login_Throttled(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			t.Fatalf("repository should not be hit when throttled")
			return nil, nil
		},
	}
	svc := newTestAuthService(repo, &stubThrottle{blocked: true})

	_, _, err := svc.Login(context.Background(), "a@x.com", "pw")
	if err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc := newTestAuthService(&stubUserRepo{}, &stubThrottle{})

	if _, _, err := svc.Login(context.Background(), "", "pw"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@x.com", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Profile(t *testing.T) {
	repo := &stubUserRepo{
		findByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			if id != "u1" {
				return nil, domain.ErrUserNotFound
			}
			return &domain.User{ID: "u1", Name: "A", Email: "a@x.com", Role: domain.RoleUser}, nil
		},
	}
	svc := newTestAuthService(repo, &stubThrottle{})

	user, err := svc.Profile(context.Background(), "u1")
	if err != nil {
		t.Fatalf("profile: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("unexpected user %+v", user)
	}

	if _, err := svc.Profile(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
