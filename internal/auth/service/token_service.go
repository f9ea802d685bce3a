package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/allisson/employee-api/internal/auth/domain"
	apperrors "github.com/allisson/employee-api/internal/errors"
)

// TokenClaims holds the claims embedded in an access token.
type TokenClaims struct {
	UserID uuid.UUID   `json:"user_id"`
	Email  string      `json:"email"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// tokenService implements TokenService using HS256-signed JWTs.
type tokenService struct {
	secret []byte
}

// NewTokenService creates a TokenService signing with the given shared secret.
// Returns an error if the secret is empty: the process must refuse to start
// rather than run with no way to verify credentials.
func NewTokenService(secret string) (TokenService, error) {
	if secret == "" {
		return nil, apperrors.New("token signing secret is required")
	}
	return &tokenService{secret: []byte(secret)}, nil
}

// Mint creates a signed HS256 token for the user with the given TTL.
func (t *tokenService) Mint(user *domain.User, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := &TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Parse verifies signature, structure, and expiry. All failures collapse into
// domain.ErrTokenInvalid so callers cannot distinguish tampered from expired.
func (t *tokenService) Parse(rawToken string) (*TokenClaims, error) {
	return t.parse(rawToken)
}

// ParseAllowExpired verifies the signature but skips expiry validation.
func (t *tokenService) ParseAllowExpired(rawToken string) (*TokenClaims, error) {
	return t.parse(rawToken, jwt.WithoutClaimsValidation())
}

func (t *tokenService) parse(rawToken string, opts ...jwt.ParserOption) (*TokenClaims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := jwt.ParseWithClaims(rawToken, &TokenClaims{}, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return claims, nil
}
