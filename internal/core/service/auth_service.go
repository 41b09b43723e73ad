package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/oxefood/delivery-api/internal/api/metrics"
	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// AuthService authenticates username/password pairs and mints bearer tokens.
type AuthService struct {
	users   ports.UserRepository
	codec   ports.TokenCodec
	limiter ports.LoginLimiter
	audit   ports.AuditSink
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec ports.TokenCodec, limiter ports.LoginLimiter, audit ports.AuditSink, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, limiter: limiter, audit: audit, log: log}
}

// Authenticate verifies the credentials and returns a signed token together
// with its remaining validity window in seconds.
//
// Unknown usernames and wrong passwords both come back as
// domain.ErrInvalidCredentials; collapsing the two prevents username
// enumeration and is deliberate. The only side effects are the token mint
// and the audit record; the user store is never written.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	// A limiter read error fails open: an unhealthy Redis must not take
	// logins down with it. The error is logged so the outage stays visible.
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		switch {
		case err != nil:
			s.log.Error().Err(err).Str("username", username).Msg("login limiter unavailable, failing open")
		case !allowed:
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			s.record(username, domain.AuditLoginThrottle, "")
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, s.fail(ctx, username)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, s.fail(ctx, username)
	}

	signed, expiresAt, err := s.codec.Issue(user.Username, user.Roles)
	if err != nil {
		return nil, err
	}

	if s.limiter != nil {
		_ = s.limiter.Reset(ctx, username)
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.record(username, domain.AuditLoginOK, "")

	return &ports.AuthResult{
		Username:  user.Username,
		Token:     signed,
		ExpiresIn: int64(time.Until(expiresAt).Seconds()),
	}, nil
}

// fail records a failed attempt and returns the collapsed credential error.
func (s *AuthService) fail(ctx context.Context, username string) error {
	if s.limiter != nil {
		_ = s.limiter.RecordFailure(ctx, username)
	}
	metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
	s.record(username, domain.AuditLoginFailed, "")
	return domain.ErrInvalidCredentials
}

func (s *AuthService) record(username, outcome, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuthAudit{
		Username: username,
		Outcome:  outcome,
		Reason:   reason,
		At:       time.Now().UTC(),
	})
}
