package domain

import "time"

// Audit outcomes recorded by the auth audit trail.
const (
	AuditLoginOK       = "login_ok"
	AuditLoginFailed   = "login_failed"
	AuditLoginThrottle = "login_throttled"
	AuditTokenRejected = "token_rejected"
	AuditAccessDenied  = "access_denied"
)

// AuthAudit is one authentication or authorization decision, recorded
// asynchronously for observability. It never carries credentials.
type AuthAudit struct {
	Username  string    `json:"username"`
	Outcome   string    `json:"outcome"`
	Reason    string    `json:"reason,omitempty"`
	Method    string    `json:"method,omitempty"`
	Path      string    `json:"path,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}
