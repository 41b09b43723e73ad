package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

func TestJWTCodec_RoundTrip(t *testing.T) {
	codec := NewJWTCodec("secret", time.Hour)

	signed, expiresAt, err := codec.Issue("alice", []string{domain.RoleCustomer})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}

	identity, err := codec.Validate(signed)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if identity.Username != "alice" {
		t.Fatalf("expected subject alice, got %q", identity.Username)
	}
	if len(identity.Roles) != 1 || identity.Roles[0] != domain.RoleCustomer {
		t.Fatalf("unexpected roles: %v", identity.Roles)
	}
}

func TestJWTCodec_Expired(t *testing.T) {
	codec := NewJWTCodec("secret", time.Hour)

	past := time.Now().Add(-2 * time.Second)
	claims := Claims{
		Roles: []string{domain.RoleCustomer},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(past),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Validate(signed); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTCodec_TamperedSignature(t *testing.T) {
	codec := NewJWTCodec("secret", time.Hour)

	signed, _, err := codec.Issue("alice", []string{domain.RoleCustomer})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// Flip one character of the signature segment.
	parts := strings.Split(signed, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := codec.Validate(tampered); err != domain.ErrTokenSignatureInvalid {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	issuer := NewJWTCodec("first-secret", time.Hour)
	verifier := NewJWTCodec("other-secret", time.Hour)

	signed, _, err := issuer.Issue("alice", nil)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Validate(signed); err != domain.ErrTokenSignatureInvalid {
		t.Fatalf("expected ErrTokenSignatureInvalid, got %v", err)
	}
}

func TestJWTCodec_Malformed(t *testing.T) {
	codec := NewJWTCodec("secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		if _, err := codec.Validate(raw); err != domain.ErrTokenMalformed {
			t.Fatalf("token %q: expected ErrTokenMalformed, got %v", raw, err)
		}
	}
}

func TestJWTCodec_MissingSubject(t *testing.T) {
	codec := NewJWTCodec("secret", time.Hour)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Validate(signed); err != domain.ErrTokenMalformed {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
