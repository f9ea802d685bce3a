// Package http provides HTTP handlers and middleware for authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
)

// userKey is a context key type for storing authenticated users.
type userKey struct{}

// tokenKey is a context key type for storing the raw bearer token.
type tokenKey struct{}

// WithUser stores an authenticated user in the context.
// This is typically called by the authentication middleware after successful token validation.
func WithUser(ctx context.Context, user *authDomain.User) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// GetUser retrieves an authenticated user from the context.
// Returns (user, true) if a user is present, or (nil, false) if no user was set.
func GetUser(ctx context.Context) (*authDomain.User, bool) {
	user, ok := ctx.Value(userKey{}).(*authDomain.User)
	return user, ok
}

// WithToken stores the raw bearer token in the context.
// The logout handler needs the original token to revoke it.
func WithToken(ctx context.Context, rawToken string) context.Context {
	return context.WithValue(ctx, tokenKey{}, rawToken)
}

// GetToken retrieves the raw bearer token from the context.
// Returns (token, true) if present, or ("", false) if not set.
func GetToken(ctx context.Context) (string, bool) {
	rawToken, ok := ctx.Value(tokenKey{}).(string)
	return rawToken, ok
}
