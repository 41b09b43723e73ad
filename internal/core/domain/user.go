package domain

import "time"

// Role labels are a closed vocabulary. The wire values are the exact strings
// carried by issued tokens and checked by the authorization table.
const (
	RoleCustomer      = "CLIENTE"
	RoleEmployeeAdmin = "FUNCIONARIO_ADMIN"
	RoleEmployeeUser  = "FUNCIONARIO_USER"
)

// ValidRole reports whether the label belongs to the role vocabulary.
func ValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleEmployeeAdmin, RoleEmployeeUser:
		return true
	}
	return false
}

// User models a principal able to authenticate. The username (an e-mail in
// practice) is the natural key. PasswordHash never leaves the process: it is
// excluded from JSON, never logged, and never embedded in a token.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the per-request projection of a validated token: who the caller
// is and which roles the token asserts. It lives only for the duration of a
// single request and is never persisted or shared between requests.
type Identity struct {
	Username string
	Roles    []string
}

// HasAnyRole reports whether the identity holds at least one of the given
// roles. Roles are not hierarchical; this is a plain membership test.
func (id *Identity) HasAnyRole(roles ...string) bool {
	for _, want := range roles {
		for _, have := range id.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
