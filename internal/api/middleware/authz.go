package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oxefood/delivery-api/internal/api/metrics"
	"github.com/oxefood/delivery-api/internal/core/domain"
	"github.com/oxefood/delivery-api/internal/core/ports"
)

// Requirement is what a matching rule demands from the request identity.
type Requirement struct {
	public bool
	roles  []string
}

// Public allows the request regardless of identity.
func Public() Requirement {
	return Requirement{public: true}
}

// Authenticated allows any request carrying a valid identity.
func Authenticated() Requirement {
	return Requirement{}
}

// AnyOf allows identities holding at least one of the given roles.
func AnyOf(roles ...string) Requirement {
	return Requirement{roles: roles}
}

// Rule binds an HTTP method and a path pattern to a requirement. Patterns
// match segment by segment; "*" matches exactly one non-empty segment.
type Rule struct {
	Method  string
	Pattern string
	Require Requirement
}

// Authorize evaluates the ordered rule list against every request. The first
// rule whose method and pattern match governs; later rules are never
// consulted. When no rule matches, the request must carry an identity
// (fail closed): new routes are private until explicitly whitelisted.
//
// Denials are 401 when no identity is present and 403 when the identity
// lacks every required role. Every denial is also recorded on the audit sink.
func Authorize(rules []Rule, audit ports.AuditSink, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := Authenticated()
			method := c.Request().Method
			path := normalizePath(c.Request().URL.Path)

			for _, rule := range rules {
				if rule.Method == method && matchPattern(rule.Pattern, path) {
					req = rule.Require
					break
				}
			}

			if req.public {
				metrics.AuthzDecisionsTotal.WithLabelValues("allow").Inc()
				return next(c)
			}

			identity := IdentityFrom(c)
			if identity == nil {
				metrics.AuthzDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				log.Debug().Str("method", method).Str("path", path).Msg("request denied: no identity")
				recordDenial(audit, c, "", "no_identity")
				return domain.ErrUnauthenticated
			}

			if len(req.roles) > 0 && !identity.HasAnyRole(req.roles...) {
				metrics.AuthzDecisionsTotal.WithLabelValues("forbidden").Inc()
				log.Info().
					Str("username", identity.Username).
					Str("method", method).
					Str("path", path).
					Strs("roles", identity.Roles).
					Msg("request denied: missing required role")
				recordDenial(audit, c, identity.Username, "missing_role")
				return domain.ErrForbidden
			}

			metrics.AuthzDecisionsTotal.WithLabelValues("allow").Inc()
			return next(c)
		}
	}
}

func recordDenial(audit ports.AuditSink, c echo.Context, username, reason string) {
	if audit == nil {
		return
	}
	audit.Record(domain.AuthAudit{
		Username:  username,
		Outcome:   domain.AuditAccessDenied,
		Reason:    reason,
		Method:    c.Request().Method,
		Path:      c.Request().URL.Path,
		RequestID: requestID(c),
		At:        time.Now().UTC(),
	})
}

// DefaultRules is the route security table ported from the original system.
// Order matters: first match wins.
func DefaultRules() []Rule {
	anyUser := AnyOf(domain.RoleCustomer, domain.RoleEmployeeAdmin, domain.RoleEmployeeUser)

	return []Rule{
		{Method: "POST", Pattern: "/api/cliente", Require: Public()},
		{Method: "POST", Pattern: "/api/funcionario", Require: Public()},
		{Method: "POST", Pattern: "/api/auth", Require: Public()},

		{Method: "GET", Pattern: "/api/produto", Require: anyUser},
		{Method: "GET", Pattern: "/api/produto/*", Require: anyUser},
		{Method: "POST", Pattern: "/api/produto", Require: anyUser},
		{Method: "PUT", Pattern: "/api/produto/*", Require: AnyOf(domain.RoleEmployeeAdmin, domain.RoleEmployeeUser)},
		{Method: "DELETE", Pattern: "/api/produto/*", Require: AnyOf(domain.RoleEmployeeAdmin)},

		{Method: "POST", Pattern: "/api/cliente/filtrar", Require: anyUser},

		{Method: "GET", Pattern: "/api-docs/*", Require: Public()},
		{Method: "GET", Pattern: "/swagger-ui/*", Require: Public()},
	}
}

// normalizePath trims a single trailing slash so "/api/produto/" and
// "/api/produto" hit the same rule.
func normalizePath(path string) string {
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		return path[:len(path)-1]
	}
	return path
}

// matchPattern compares pattern and path segment by segment. A "*" segment
// matches exactly one non-empty path segment; there is no multi-segment
// wildcard.
func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return false
	}

	patSegs := strings.Split(pattern, "/")
	pathSegs := strings.Split(path, "/")
	if len(patSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patSegs {
		if seg == "*" {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}
