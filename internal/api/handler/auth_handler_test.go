package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oxefood/delivery-api/internal/api"
	"github.com/oxefood/delivery-api/internal/api/handler"
	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, username, password string) (*ports.AuthResult, error)
}

func (s *stubAuthService) Authenticate(ctx context.Context, username, password string) (*ports.AuthResult, error) {
	return s.authenticateFn(ctx, username, password)
}

func newLoginServer(stub *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())
	e.POST("/api/auth", handler.NewAuthHandler(stub).Login)
	return e
}

func postLogin(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			if username != "jose@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return &ports.AuthResult{Username: username, Token: "token123", ExpiresIn: 86400}, nil
		},
	}
	e := newLoginServer(stub)

	rec := postLogin(e, `{"username":"jose@example.com","password":"secret"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	if resp["username"] != "jose@example.com" {
		t.Fatalf("unexpected username: %v", resp["username"])
	}
	if resp["tokenExpiresIn"] != float64(86400) {
		t.Fatalf("unexpected expiry: %v", resp["tokenExpiresIn"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	e := newLoginServer(stub)

	rec := postLogin(e, `{"username":"jose@example.com","password":"bad"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

// Unknown usernames must be indistinguishable from wrong passwords on the
// wire, so the service collapses both into ErrInvalidCredentials and the
// handler answers 401 either way.
func TestAuthHandler_Login_UnknownUserLooksLikeWrongPassword(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	e := newLoginServer(stub)

	rec := postLogin(e, `{"username":"ghost@example.com","password":"whatever"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "invalid credentials" {
		t.Fatalf("unexpected error body: %v", resp)
	}
}

func TestAuthHandler_Login_Throttled(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrTooManyAttempts
		},
	}
	e := newLoginServer(stub)

	rec := postLogin(e, `{"username":"jose@example.com","password":"secret"}`)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingFields(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e := newLoginServer(stub)

	rec := postLogin(e, `{"username":"jose@example.com"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		authenticateFn: func(ctx context.Context, username, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e := newLoginServer(stub)

	rec := postLogin(e, "{")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
