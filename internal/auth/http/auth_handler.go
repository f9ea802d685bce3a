package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	"github.com/allisson/employee-api/internal/auth/http/dto"
	authUseCase "github.com/allisson/employee-api/internal/auth/usecase"
	apperrors "github.com/allisson/employee-api/internal/errors"
	"github.com/allisson/employee-api/internal/httputil"
	customValidation "github.com/allisson/employee-api/internal/validation"
)

// AuthHandler handles HTTP requests for authentication operations.
// It coordinates registration, login, logout, and profile lookup with the AuthUseCase.
type AuthHandler struct {
	authUseCase authUseCase.AuthUseCase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler with required dependencies.
func NewAuthHandler(authUC authUseCase.AuthUseCase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUC,
		logger:      logger,
	}
}

// RegisterHandler creates a new user account.
// POST /v1/auth/register - No authentication required.
// Returns 201 Created with the sanitized user.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	var req dto.RegisterRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	user, err := h.authUseCase.Register(c.Request.Context(), authUseCase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     authDomain.Role(req.Role),
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// LoginHandler verifies credentials and mints an access token.
// POST /v1/auth/login - No authentication required (this is the authentication endpoint).
// Returns 200 OK with the sanitized user and the token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req dto.LoginRequest

	// Parse and bind JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	// Call use case
	output, err := h.authUseCase.Login(c.Request.Context(), authUseCase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	response := dto.LoginResponse{
		User:  dto.MapUserToResponse(output.User),
		Token: output.Token,
	}

	c.JSON(http.StatusOK, response)
}

// LogoutHandler revokes the bearer token used on this request.
// POST /v1/auth/logout - Requires authentication.
// Revoking an already revoked token succeeds; returns 200 OK.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	user, ok := GetUser(c.Request.Context())
	if !ok || user == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	rawToken, ok := GetToken(c.Request.Context())
	if !ok || rawToken == "" {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	if err := h.authUseCase.Logout(c.Request.Context(), rawToken, user.ID); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.LogoutResponse{Message: "logged out"})
}

// ProfileHandler returns the authenticated user.
// GET /v1/auth/profile - Requires authentication.
func (h *AuthHandler) ProfileHandler(c *gin.Context) {
	user, ok := GetUser(c.Request.Context())
	if !ok || user == nil {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}
