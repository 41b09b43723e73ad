// Package token implements the bearer-token codec on top of golang-jwt.
//
// Tokens are HS256-signed and self-contained: subject, roles, issued-at and
// expiry. There is no server-side session counterpart, so a token cannot be
// revoked before its natural expiry. Clock skew between issuer and validator
// is not compensated; the codec assumes a single process.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// Claims is the payload embedded in every issued token. Subject carries the
// username; Roles the identity's role labels. The password hash is never part
// of the claim set.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// JWTCodec signs and verifies tokens with a process-wide secret. The secret
// is read-only after construction, so the codec is safe for concurrent use.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

var _ ports.TokenCodec = (*JWTCodec)(nil)

// NewJWTCodec builds a codec with the given signing secret and token TTL.
func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTCodec{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token asserting that subject holds roles until now+TTL.
func (c *JWTCodec) Issue(subject string, roles []string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(c.ttl)

	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Validate verifies the signature before trusting any claim, then checks
// expiry, and returns the identity the token asserts. Failure reasons are
// kept distinct so callers can log "log in again" apart from "never valid".
func (c *JWTCodec) Validate(tokenString string) (*domain.Identity, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, domain.ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		default:
			return nil, domain.ErrTokenMalformed
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.Subject == "" {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.Identity{Username: claims.Subject, Roles: claims.Roles}, nil
}

// TTL returns the fixed validity window applied to issued tokens.
func (c *JWTCodec) TTL() time.Duration {
	return c.ttl
}
