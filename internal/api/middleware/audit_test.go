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

type captureSink struct {
	events []domain.AuthAudit
}

func (s *captureSink) Record(event domain.AuthAudit) {
	s.events = append(s.events, event)
}

func (s *captureSink) one(t *testing.T) domain.AuthAudit {
	t.Helper()
	if len(s.events) != 1 {
		t.Fatalf("expected 1 audit event, got %d", len(s.events))
	}
	return s.events[0]
}

func TestIdentity_RejectedTokenIsAudited(t *testing.T) {
	e := echo.New()
	codec := token.NewJWTCodec("secret", time.Hour)
	sink := &captureSink{}

	req := httptest.NewRequest(http.MethodGet, "/api/produto", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	req.Header.Set(echo.HeaderXRequestID, "req-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Identity(codec, sink, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	event := sink.one(t)
	if event.Outcome != domain.AuditTokenRejected {
		t.Fatalf("expected outcome %s, got %s", domain.AuditTokenRejected, event.Outcome)
	}
	if event.Reason != "malformed" {
		t.Fatalf("unexpected reason: %q", event.Reason)
	}
	if event.Method != http.MethodGet || event.Path != "/api/produto" {
		t.Fatalf("request not captured: %s %s", event.Method, event.Path)
	}
	if event.RequestID != "req-42" {
		t.Fatalf("request id not captured: %q", event.RequestID)
	}
	if event.At.IsZero() {
		t.Fatal("event timestamp missing")
	}
}

func TestIdentity_ValidTokenIsNotAudited(t *testing.T) {
	e := echo.New()
	codec := token.NewJWTCodec("secret", time.Hour)
	sink := &captureSink{}

	signed, _, err := codec.Issue("alice", []string{domain.RoleCustomer})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/produto", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+signed)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Identity(codec, sink, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatalf("valid token must not be audited, got %d events", len(sink.events))
	}
}

func TestAuthorize_DenialsAreAudited(t *testing.T) {
	deny := func(t *testing.T, identity *domain.Identity) (*captureSink, error) {
		t.Helper()
		e := echo.New()
		sink := &captureSink{}
		req := httptest.NewRequest(http.MethodDelete, "/api/produto/123", nil)
		req.Header.Set(echo.HeaderXRequestID, "req-7")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if identity != nil {
			c.Set(identityKey, identity)
		}
		handler := Authorize(DefaultRules(), sink, zerolog.Nop())(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		return sink, handler(c)
	}

	t.Run("unauthenticated", func(t *testing.T) {
		sink, err := deny(t, nil)
		if err != domain.ErrUnauthenticated {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
		event := sink.one(t)
		if event.Outcome != domain.AuditAccessDenied || event.Reason != "no_identity" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if event.Username != "" {
			t.Fatalf("no identity means no username, got %q", event.Username)
		}
		if event.Method != http.MethodDelete || event.Path != "/api/produto/123" || event.RequestID != "req-7" {
			t.Fatalf("request not captured: %+v", event)
		}
	})

	t.Run("missing role", func(t *testing.T) {
		sink, err := deny(t, &domain.Identity{Username: "alice", Roles: []string{domain.RoleCustomer}})
		if err != domain.ErrForbidden {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		event := sink.one(t)
		if event.Outcome != domain.AuditAccessDenied || event.Reason != "missing_role" {
			t.Fatalf("unexpected event: %+v", event)
		}
		if event.Username != "alice" {
			t.Fatalf("username not captured: %q", event.Username)
		}
	})
}

func TestAuthorize_AllowedRequestIsNotAudited(t *testing.T) {
	e := echo.New()
	sink := &captureSink{}
	req := httptest.NewRequest(http.MethodGet, "/api/produto", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(identityKey, &domain.Identity{Username: "alice", Roles: []string{domain.RoleCustomer}})

	handler := Authorize(DefaultRules(), sink, zerolog.Nop())(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(sink.events) != 0 {
		t.Fatalf("allowed request must not be audited, got %d events", len(sink.events))
	}
}
