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

// identityKey is the echo context key under which the request identity is
// stored. Each request carries its own context, so no state is shared
// between concurrent requests.
const identityKey = "identity"

// Identity extracts and validates the bearer token, attaching the resulting
// identity to the request scope. It never aborts the request: a missing or
// invalid token leaves the request unauthenticated and the authorization
// matrix decides whether the route needed one. Rejected tokens are logged,
// counted and audited by failure reason; that is the only place the
// malformed/signature/expired distinction surfaces.
func Identity(codec ports.TokenCodec, audit ports.AuditSink, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			identity, err := codec.Validate(parts[1])
			if err != nil {
				reason := tokenFailureReason(err)
				metrics.TokenRejectionsTotal.WithLabelValues(reason).Inc()
				log.Debug().
					Str("reason", reason).
					Str("method", c.Request().Method).
					Str("path", c.Request().URL.Path).
					Msg("bearer token rejected")
				if audit != nil {
					audit.Record(domain.AuthAudit{
						Outcome:   domain.AuditTokenRejected,
						Reason:    reason,
						Method:    c.Request().Method,
						Path:      c.Request().URL.Path,
						RequestID: requestID(c),
						At:        time.Now().UTC(),
					})
				}
				return next(c)
			}

			c.Set(identityKey, identity)
			return next(c)
		}
	}
}

// IdentityFrom returns the identity attached by the Identity middleware, or
// nil when the request is unauthenticated.
func IdentityFrom(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

// requestID looks for the id set by echo's RequestID middleware, falling back
// to one supplied by the client.
func requestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

func tokenFailureReason(err error) string {
	switch err {
	case domain.ErrTokenExpired:
		return "expired"
	case domain.ErrTokenSignatureInvalid:
		return "bad_signature"
	default:
		return "malformed"
	}
}
