// Package usecase implements business logic orchestration for authentication operations.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	authService "github.com/allisson/employee-api/internal/auth/service"
	"github.com/allisson/employee-api/internal/config"
	apperrors "github.com/allisson/employee-api/internal/errors"
	appValidation "github.com/allisson/employee-api/internal/validation"
)

// RegisterInput contains the input data for user registration.
type RegisterInput struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	Role     authDomain.Role `json:"role"`
}

// LoginInput contains the input data for login.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginOutput contains the sanitized user and the minted access token.
type LoginOutput struct {
	User  *authDomain.User
	Token string
}

// authUseCase implements AuthUseCase.
type authUseCase struct {
	config          *config.Config
	userRepo        UserRepository
	revokedRepo     RevokedTokenRepository
	tokenService    authService.TokenService
	passwordService authService.PasswordService
}

// NewAuthUseCase creates a new AuthUseCase with the provided dependencies.
func NewAuthUseCase(
	cfg *config.Config,
	userRepo UserRepository,
	revokedRepo RevokedTokenRepository,
	tokenService authService.TokenService,
	passwordService authService.PasswordService,
) AuthUseCase {
	return &authUseCase{
		config:          cfg,
		userRepo:        userRepo,
		revokedRepo:     revokedRepo,
		tokenService:    tokenService,
		passwordService: passwordService,
	}
}

// validateRegisterInput validates registration input. The password is only
// checked for non-emptiness here: stronger policy is a transport/UI concern.
func (a *authUseCase) validateRegisterInput(input RegisterInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Password,
			validation.Required.Error("password is required"),
			appValidation.NotBlank,
		),
	)
	if err != nil {
		return appValidation.WrapValidationError(err)
	}

	if input.Role != "" && !input.Role.IsValid() {
		return apperrors.Wrapf(apperrors.ErrInvalidInput, "invalid role %q", input.Role)
	}

	return nil
}

// Register creates a new user with a hashed password.
func (a *authUseCase) Register(ctx context.Context, input RegisterInput) (*authDomain.User, error) {
	if err := a.validateRegisterInput(input); err != nil {
		return nil, err
	}

	digest, err := a.passwordService.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = authDomain.RoleStaff
	}

	now := time.Now().UTC()
	user := &authDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     strings.TrimSpace(strings.ToLower(input.Email)),
		Password:  digest,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user.Sanitized(), nil
}

// Login verifies credentials and mints an access token.
//
// Security note: the same ErrInvalidCredentials is returned whether the email
// is unknown, the user is inactive, or the password does not match, so a
// caller cannot enumerate accounts.
func (a *authUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, authDomain.ErrInvalidCredentials
	}

	if !a.passwordService.Compare(input.Password, user.Password) {
		return nil, authDomain.ErrInvalidCredentials
	}

	token, err := a.tokenService.Mint(user, a.config.JWTExpiration)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:  user.Sanitized(),
		Token: token,
	}, nil
}

// Logout inserts the token into the denylist, bounded by its embedded expiry.
// The signature is still verified (expiry is not) so arbitrary strings cannot
// be pushed into the denylist; the caller's identity was already enforced by
// the authentication middleware.
func (a *authUseCase) Logout(ctx context.Context, rawToken string, userID uuid.UUID) error {
	claims, err := a.tokenService.ParseAllowExpired(rawToken)
	if err != nil {
		return authDomain.ErrLogoutFailed
	}

	expiresAt := time.Now().UTC()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time.UTC()
	}

	revoked := &authDomain.RevokedToken{
		ID:        uuid.Must(uuid.NewV7()),
		Token:     rawToken,
		UserID:    userID,
		RevokedAt: time.Now().UTC(),
		ExpiresAt: expiresAt,
	}

	return a.revokedRepo.Create(ctx, revoked)
}

// Authenticate validates a raw token for a request.
//
// The denylist is checked before the signature is parsed: the store lookup is
// cheaper than signature verification, and a revoked token never needs parsing.
func (a *authUseCase) Authenticate(ctx context.Context, rawToken string) (*authDomain.User, error) {
	revoked, err := a.revokedRepo.Exists(ctx, rawToken)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, authDomain.ErrTokenRevoked
	}

	claims, err := a.tokenService.Parse(rawToken)
	if err != nil {
		return nil, err
	}

	user, err := a.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, authDomain.ErrUserNotFound) {
			return nil, authDomain.ErrUserInactive
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, authDomain.ErrUserInactive
	}

	return user.Sanitized(), nil
}

// CleanExpiredTokens purges denylist entries whose expiry has passed.
func (a *authUseCase) CleanExpiredTokens(ctx context.Context) (int64, error) {
	return a.revokedRepo.DeleteExpiredBefore(ctx, time.Now().UTC())
}
