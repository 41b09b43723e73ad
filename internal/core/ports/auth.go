package ports

import (
	"context"
	"time"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

// UserRepository persists login users. The auth flow only ever reads one user
// per attempt; writes happen through the registration services.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// TokenCodec issues and validates the bearer tokens used by every protected
// route. Validation is a pure computation: signature check plus expiry
// comparison, no I/O.
type TokenCodec interface {
	// Issue signs a token asserting that subject holds roles until now+TTL.
	Issue(subject string, roles []string) (token string, expiresAt time.Time, err error)
	// Validate verifies the signature before trusting any claim, then checks
	// expiry. Failures map onto domain.ErrTokenMalformed,
	// domain.ErrTokenSignatureInvalid and domain.ErrTokenExpired.
	Validate(token string) (*domain.Identity, error)
	// TTL is the fixed validity window applied to every issued token.
	TTL() time.Duration
}

// AuthResult is what a successful authentication returns to the client.
type AuthResult struct {
	Username  string
	Token     string
	ExpiresIn int64 // seconds
}

// AuthService authenticates username/password pairs and mints tokens.
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*AuthResult, error)
}

// LoginLimiter bounds failed authentication attempts per username so a burst
// of login traffic cannot monopolize the request pool with bcrypt work.
type LoginLimiter interface {
	// Allow reports whether another attempt may run for this username.
	Allow(ctx context.Context, username string) (bool, error)
	// RecordFailure counts one failed attempt against the username.
	RecordFailure(ctx context.Context, username string) error
	// Reset clears the failure counter after a successful login.
	Reset(ctx context.Context, username string) error
}

// AuditSink receives authentication and authorization decisions for the audit
// trail. Implementations must never block the request path.
type AuditSink interface {
	Record(event domain.AuthAudit)
}

// AuditRepository persists audit events (consumed by the queue dispatcher).
type AuditRepository interface {
	Insert(ctx context.Context, event domain.AuthAudit) error
}
