// Package usecase defines business logic interfaces for authentication and authorization operations.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
)

// UserRepository defines persistence operations for users.
// Implementations must support transaction-aware operations via context propagation.
type UserRepository interface {
	// Create stores a new user. Returns ErrUserAlreadyExists if the email is taken.
	Create(ctx context.Context, user *authDomain.User) error

	// Update modifies an existing user's mutable fields (role, active flag, password).
	Update(ctx context.Context, user *authDomain.User) error

	// GetByID retrieves a user by ID. Returns ErrUserNotFound if not found.
	GetByID(ctx context.Context, userID uuid.UUID) (*authDomain.User, error)

	// GetByEmail retrieves a user by email. Returns ErrUserNotFound if not found.
	// Email comparison is case-insensitive: emails are stored lowercased.
	GetByEmail(ctx context.Context, email string) (*authDomain.User, error)
}

// RevokedTokenRepository defines persistence operations for the token denylist.
type RevokedTokenRepository interface {
	// Create inserts a denylist entry. Inserting the same token twice is an
	// idempotent no-op: double logout must not surface as an error.
	Create(ctx context.Context, token *authDomain.RevokedToken) error

	// Exists reports whether the raw token is denylisted.
	Exists(ctx context.Context, rawToken string) (bool, error)

	// DeleteExpiredBefore removes entries whose expiry has passed and returns
	// the number of rows purged. Unexpired entries are never removed.
	DeleteExpiredBefore(ctx context.Context, now time.Time) (int64, error)
}

// AuthUseCase defines the credential lifecycle operations: registration,
// login, per-request authentication, logout, and denylist compaction.
type AuthUseCase interface {
	// Register creates a new user with a hashed password. The role defaults
	// to staff when unspecified. Fails with ErrUserAlreadyExists when the
	// email is taken. The returned user is sanitized.
	Register(ctx context.Context, input RegisterInput) (*authDomain.User, error)

	// Login verifies the email/password pair and mints an access token.
	// Unknown email, inactive user, and wrong password all fail with the
	// same ErrInvalidCredentials. The returned user is sanitized.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout revokes the token by inserting it into the denylist, bounded by
	// the token's own expiry. Expired tokens are accepted (soft no-op);
	// unparseable tokens fail with ErrLogoutFailed. Revoking an already
	// revoked token succeeds.
	Logout(ctx context.Context, rawToken string, userID uuid.UUID) error

	// Authenticate validates a raw token for a request: denylist check,
	// signature and expiry verification, then user lookup and active check.
	// Returns the sanitized user on success.
	Authenticate(ctx context.Context, rawToken string) (*authDomain.User, error)

	// CleanExpiredTokens purges denylist entries whose expiry has passed and
	// returns the purged count.
	CleanExpiredTokens(ctx context.Context) (int64, error)
}
