package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/employee-api/internal/errors"
)

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher *pwdhash.PasswordHasher
}

// NewPasswordService creates a PasswordService with the interactive policy,
// a balance between login latency and resistance to offline cracking.
func NewPasswordService() (PasswordService, error) {
	hasher, err := pwdhash.New(pwdhash.WithPolicy(pwdhash.PolicyInteractive))
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to create password hasher")
	}

	return &passwordService{hasher: hasher}, nil
}

// Hash hashes a plain text password using Argon2id.
func (p *passwordService) Hash(plainPassword string) (string, error) {
	digest, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return digest, nil
}

// Compare performs a constant-time comparison between a plain password and its digest.
func (p *passwordService) Compare(plainPassword string, digest string) bool {
	ok, err := p.hasher.Verify([]byte(plainPassword), digest)
	if err != nil {
		return false
	}
	return ok
}
