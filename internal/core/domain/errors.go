package domain

import "errors"

// Authentication and authorization errors. The token errors are distinguished
// internally for logging and metrics; callers surface them all as a single
// unauthenticated response so validation internals never leak to clients.
var (
	// ErrInvalidCredentials covers both unknown-username and wrong-password.
	// The two are deliberately indistinguishable to prevent username
	// enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")

	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("access forbidden")

	ErrTooManyAttempts = errors.New("too many login attempts")
)

// Entity errors.
var (
	ErrInvalidEmployeeType = errors.New("unknown employee type")

	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAddressNotFound  = errors.New("customer address not found")
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrCourierNotFound  = errors.New("courier not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("product category not found")
	ErrSaleNotFound     = errors.New("sale not found")
)
