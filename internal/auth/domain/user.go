package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated identity in the system.
type User struct {
	ID        uuid.UUID
	Email     string
	Password  string // password digest, never serialized or logged
	Role      Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Sanitized returns a copy of the user with the password digest cleared.
// Handlers and middleware must only expose sanitized users.
func (u *User) Sanitized() *User {
	clone := *u
	clone.Password = ""
	return &clone
}
