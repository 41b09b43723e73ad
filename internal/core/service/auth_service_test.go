package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/infrastructure/token"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) seed(t *testing.T, username, password string, roles ...string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	r.users[username] = &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Roles:        roles,
	}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	clone := *user
	r.users[user.Username] = &clone
	return user, nil
}

type stubLimiter struct {
	allowed  bool
	allowErr error
	failures int
	resets   int
}

func (l *stubLimiter) Allow(context.Context, string) (bool, error) {
	return l.allowed, l.allowErr
}
func (l *stubLimiter) RecordFailure(context.Context, string) error { l.failures++; return nil }
func (l *stubLimiter) Reset(context.Context, string) error         { l.resets++; return nil }

func TestAuthService_Authenticate_Success(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "correct", domain.RoleCustomer)
	codec := token.NewJWTCodec("secret", time.Hour)
	svc := NewAuthService(repo, codec, nil, nil, zerolog.Nop())

	result, err := svc.Authenticate(context.Background(), "alice", "correct")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if result.Username != "alice" {
		t.Fatalf("expected subject alice, got %q", result.Username)
	}
	if result.ExpiresIn <= 0 || result.ExpiresIn > 3600 {
		t.Fatalf("unexpected expiry window: %d", result.ExpiresIn)
	}

	identity, err := codec.Validate(result.Token)
	if err != nil {
		t.Fatalf("validate issued token: %v", err)
	}
	if identity.Username != "alice" {
		t.Fatalf("token subject mismatch: %q", identity.Username)
	}
	if len(identity.Roles) != 1 || identity.Roles[0] != domain.RoleCustomer {
		t.Fatalf("token roles mismatch: %v", identity.Roles)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "correct", domain.RoleCustomer)
	svc := NewAuthService(repo, token.NewJWTCodec("secret", time.Hour), nil, nil, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "alice", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), token.NewJWTCodec("secret", time.Hour), nil, nil, zerolog.Nop())

	// Unknown user and wrong password must be indistinguishable.
	if _, err := svc.Authenticate(context.Background(), "ghost", "whatever"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), token.NewJWTCodec("secret", time.Hour), nil, nil, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty username, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "alice", ""); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for empty password, got %v", err)
	}
}

func TestAuthService_Authenticate_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "correct", domain.RoleCustomer)
	limiter := &stubLimiter{allowed: false}
	svc := NewAuthService(repo, token.NewJWTCodec("secret", time.Hour), limiter, nil, zerolog.Nop())

	if _, err := svc.Authenticate(context.Background(), "alice", "correct"); err != domain.ErrTooManyAttempts {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

// An unreachable limiter must not block logins, only throttle decisions do.
func TestAuthService_Authenticate_LimiterErrorFailsOpen(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "correct", domain.RoleCustomer)
	limiter := &stubLimiter{allowed: false, allowErr: errors.New("redis down")}
	svc := NewAuthService(repo, token.NewJWTCodec("secret", time.Hour), limiter, nil, zerolog.Nop())

	result, err := svc.Authenticate(context.Background(), "alice", "correct")
	if err != nil {
		t.Fatalf("limiter outage must not block login: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token despite the limiter outage")
	}
}

func TestAuthService_Authenticate_LimiterBookkeeping(t *testing.T) {
	repo := newStubUserRepo()
	repo.seed(t, "alice", "correct", domain.RoleCustomer)
	limiter := &stubLimiter{allowed: true}
	svc := NewAuthService(repo, token.NewJWTCodec("secret", time.Hour), limiter, nil, zerolog.Nop())

	_, _ = svc.Authenticate(context.Background(), "alice", "wrong")
	if limiter.failures != 1 {
		t.Fatalf("expected 1 recorded failure, got %d", limiter.failures)
	}

	if _, err := svc.Authenticate(context.Background(), "alice", "correct"); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset after success, got %d", limiter.resets)
	}
}
