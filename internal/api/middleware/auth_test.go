package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/infrastructure/token"
)

func TestIdentity_ValidToken(t *testing.T) {
	e := echo.New()
	codec := token.NewJWTCodec("secret", time.Hour)
	signed, _, err := codec.Issue("alice", []string{domain.RoleCustomer})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Identity(codec, nil, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		called = true
		identity := IdentityFrom(c)
		if identity == nil {
			t.Fatalf("identity not attached")
		}
		if identity.Username != "alice" {
			t.Fatalf("unexpected subject: %q", identity.Username)
		}
		if !identity.HasAnyRole(domain.RoleCustomer) {
			t.Fatalf("role not carried: %v", identity.Roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestIdentity_NoHeaderPassesThroughUnauthenticated(t *testing.T) {
	e := echo.New()
	codec := token.NewJWTCodec("secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Identity(codec, nil, zerolog.Nop())(func(c echo.Context) error {
		called = true
		if IdentityFrom(c) != nil {
			t.Fatalf("identity should be absent")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("filter must not abort unauthenticated requests")
	}
}

func TestIdentity_InvalidTokenPassesThroughUnauthenticated(t *testing.T) {
	e := echo.New()
	codec := token.NewJWTCodec("secret", time.Hour)

	for _, header := range []string{
		"Bearer not-a-token",
		"Token abc",
		"Bearer",
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, header)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		handler := Identity(codec, nil, zerolog.Nop())(func(c echo.Context) error {
			called = true
			if IdentityFrom(c) != nil {
				t.Fatalf("header %q: identity should be absent", header)
			}
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			t.Fatalf("header %q: handler error: %v", header, err)
		}
		if !called {
			t.Fatalf("header %q: filter must pass the request through", header)
		}
	}
}

func TestIdentity_ExpiredTokenPassesThroughUnauthenticated(t *testing.T) {
	e := echo.New()
	issuer := token.NewJWTCodec("secret", time.Second)
	codec := token.NewJWTCodec("secret", time.Hour)

	signed, _, err := issuer.Issue("alice", []string{domain.RoleCustomer})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	time.Sleep(1100 * time.Millisecond) // outlive the one-second TTL

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Identity(codec, nil, zerolog.Nop())(func(c echo.Context) error {
		if IdentityFrom(c) != nil {
			t.Fatalf("expired token must not establish an identity")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
