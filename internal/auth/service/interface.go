// Package service provides technical services for authentication operations:
// JWT minting and parsing, and password hashing.
package service

import (
	"time"

	"github.com/allisson/employee-api/internal/auth/domain"
)

// TokenService defines operations for minting and parsing signed access tokens.
type TokenService interface {
	// Mint creates a signed token carrying the user's id, email, and role.
	// The token expires ttl after issuance.
	Mint(user *domain.User, ttl time.Duration) (string, error)

	// Parse verifies the token's signature and structural validity, and
	// rejects expired tokens. Any failure yields domain.ErrTokenInvalid:
	// callers never learn whether a token was tampered with or merely expired.
	Parse(rawToken string) (*TokenClaims, error)

	// ParseAllowExpired verifies the token's signature but accepts expired
	// tokens. Used at logout, where the embedded expiry is needed to bound
	// the denylist entry's lifetime.
	ParseAllowExpired(rawToken string) (*TokenClaims, error)
}

// PasswordService defines operations for password hashing and verification.
// Implementations must use an adaptive hashing algorithm (e.g., argon2, bcrypt).
type PasswordService interface {
	// Hash hashes a plain text password for storage.
	Hash(plainPassword string) (string, error)

	// Compare compares a plain text password against a stored digest.
	// Returns true if they match. This is constant-time to prevent timing attacks.
	Compare(plainPassword string, digest string) bool
}
