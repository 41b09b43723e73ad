package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oxefood/delivery-api/internal/core/domain"
)

// run sends one request with the given identity (nil = unauthenticated)
// through Authorize(rules) and reports whether the handler ran plus the error.
func run(t *testing.T, rules []Rule, method, path string, identity *domain.Identity) (bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		c.Set(identityKey, identity)
	}

	called := false
	handler := Authorize(rules, nil, zerolog.Nop())(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	return called, handler(c)
}

func customer(username string) *domain.Identity {
	return &domain.Identity{Username: username, Roles: []string{domain.RoleCustomer}}
}

func TestAuthorize_PublicRouteNeedsNoIdentity(t *testing.T) {
	called, err := run(t, DefaultRules(), http.MethodPost, "/api/cliente", nil)
	if err != nil {
		t.Fatalf("expected allow, got %v", err)
	}
	if !called {
		t.Fatalf("handler not invoked on public route")
	}
}

func TestAuthorize_ProductListRequiresRole(t *testing.T) {
	// No token at all.
	called, err := run(t, DefaultRules(), http.MethodGet, "/api/produto/", nil)
	if err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run")
	}

	// A customer token suffices for reads.
	called, err = run(t, DefaultRules(), http.MethodGet, "/api/produto/", customer("alice"))
	if err != nil || !called {
		t.Fatalf("expected allow for customer, got called=%v err=%v", called, err)
	}
}

func TestAuthorize_ProductDeleteIsAdminOnly(t *testing.T) {
	operator := &domain.Identity{Username: "bob", Roles: []string{domain.RoleEmployeeUser}}
	called, err := run(t, DefaultRules(), http.MethodDelete, "/api/produto/7", operator)
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for operator, got %v", err)
	}
	if called {
		t.Fatalf("handler must not run")
	}

	admin := &domain.Identity{Username: "carol", Roles: []string{domain.RoleEmployeeAdmin}}
	called, err = run(t, DefaultRules(), http.MethodDelete, "/api/produto/7", admin)
	if err != nil || !called {
		t.Fatalf("expected allow for admin, got called=%v err=%v", called, err)
	}
}

func TestAuthorize_ProductUpdateForEmployees(t *testing.T) {
	if _, err := run(t, DefaultRules(), http.MethodPut, "/api/produto/7", customer("alice")); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for customer update, got %v", err)
	}

	operator := &domain.Identity{Username: "bob", Roles: []string{domain.RoleEmployeeUser}}
	if called, err := run(t, DefaultRules(), http.MethodPut, "/api/produto/7", operator); err != nil || !called {
		t.Fatalf("expected allow for operator update, got called=%v err=%v", called, err)
	}
}

func TestAuthorize_FailClosedDefault(t *testing.T) {
	// Unlisted route: denied without identity, allowed with any identity.
	if _, err := run(t, DefaultRules(), http.MethodGet, "/api/venda", nil); err != domain.ErrUnauthenticated {
		t.Fatalf("expected fail-closed ErrUnauthenticated, got %v", err)
	}
	if called, err := run(t, DefaultRules(), http.MethodGet, "/api/venda", customer("alice")); err != nil || !called {
		t.Fatalf("expected allow for authenticated caller, got called=%v err=%v", called, err)
	}
}

func TestAuthorize_FirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Method: http.MethodGet, Pattern: "/api/produto/*", Require: Public()},
		{Method: http.MethodGet, Pattern: "/api/produto/*", Require: AnyOf(domain.RoleEmployeeAdmin)},
	}

	// The later, stricter rule must never be consulted.
	if called, err := run(t, rules, http.MethodGet, "/api/produto/7", nil); err != nil || !called {
		t.Fatalf("first rule must govern, got called=%v err=%v", called, err)
	}
}

func TestAuthorize_RoleMonotonicity(t *testing.T) {
	// An identity allowed with roles R stays allowed with R plus extras.
	base := &domain.Identity{Username: "bob", Roles: []string{domain.RoleEmployeeUser}}
	wider := &domain.Identity{Username: "bob", Roles: []string{domain.RoleEmployeeUser, domain.RoleCustomer}}

	for _, identity := range []*domain.Identity{base, wider} {
		if called, err := run(t, DefaultRules(), http.MethodPut, "/api/produto/7", identity); err != nil || !called {
			t.Fatalf("roles %v: expected allow, got called=%v err=%v", identity.Roles, called, err)
		}
	}
}

func TestAuthorize_PatternMatching(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/produto", "/api/produto", true},
		{"/api/produto", "/api/produto/7", false},
		{"/api/produto/*", "/api/produto/7", true},
		{"/api/produto/*", "/api/produto", false},
		{"/api/produto/*", "/api/produto/7/extra", false},
		{"/api/cliente/filtrar", "/api/cliente/filtrar", true},
	}
	for _, tc := range cases {
		if got := matchPattern(tc.pattern, tc.path); got != tc.want {
			t.Fatalf("matchPattern(%q, %q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}

	if normalizePath("/api/produto/") != "/api/produto" {
		t.Fatalf("trailing slash not normalized")
	}
	if normalizePath("/") != "/" {
		t.Fatalf("root path must stay intact")
	}
}
