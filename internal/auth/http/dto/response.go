// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"time"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
)

// UserResponse represents a user in API responses (excludes the password digest).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MapUserToResponse converts a domain user to an API response.
func MapUserToResponse(user *authDomain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// LoginResponse contains the result of a successful login.
// SECURITY: The token grants access until it expires or is revoked; it is
// returned once and never logged.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// LogoutResponse confirms a successful logout.
type LogoutResponse struct {
	Message string `json:"message"`
}
