package domain

import (
	"time"

	"github.com/google/uuid"
)

// RevokedToken is a denylist entry for a token revoked before its natural
// expiry. The raw token string is the unique key; once ExpiresAt passes the
// entry is safe to purge, since an expired token could never re-validate.
type RevokedToken struct {
	ID        uuid.UUID
	Token     string
	UserID    uuid.UUID
	RevokedAt time.Time
	ExpiresAt time.Time
}
