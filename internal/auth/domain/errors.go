package domain

import (
	"github.com/allisson/employee-api/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrUserNotFound indicates a user with the specified ID or email was not found.
	ErrUserNotFound = errors.Wrap(errors.ErrNotFound, "user not found")

	// ErrUserAlreadyExists indicates a user with the same email already exists.
	ErrUserAlreadyExists = errors.Wrap(errors.ErrConflict, "user already exists")

	// ErrInvalidCredentials indicates a failed login. It is deliberately
	// identical for unknown email, inactive user, and wrong password to
	// prevent account enumeration.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid email or password")

	// ErrTokenRequired indicates the Authorization header is missing or malformed.
	ErrTokenRequired = errors.Wrap(errors.ErrUnauthorized, "access token required")

	// ErrTokenInvalid indicates the token failed signature, structural, or
	// expiry checks. A single generic error avoids oracle leakage between
	// tampered and expired tokens.
	ErrTokenInvalid = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrTokenRevoked indicates the token was revoked before its natural expiry.
	ErrTokenRevoked = errors.Wrap(errors.ErrUnauthorized, "token has been revoked")

	// ErrUserInactive indicates the token's user no longer exists or was deactivated.
	ErrUserInactive = errors.Wrap(errors.ErrUnauthorized, "user not found or inactive")

	// ErrAdminRequired indicates the authenticated user lacks the admin role.
	ErrAdminRequired = errors.Wrap(errors.ErrForbidden, "admin role required")

	// ErrLogoutFailed indicates the token presented at logout could not be processed.
	ErrLogoutFailed = errors.Wrap(errors.ErrInvalidInput, "unable to revoke token")
)
