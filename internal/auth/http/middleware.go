package http

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	authUseCase "github.com/allisson/employee-api/internal/auth/usecase"
	apperrors "github.com/allisson/employee-api/internal/errors"
	"github.com/allisson/employee-api/internal/httputil"
)

// AuthenticationMiddleware provides authentication via Bearer token in the Authorization header.
//
// The middleware:
// 1. Extracts the Bearer token from the Authorization header (case-insensitive)
// 2. Validates the token using authUseCase.Authenticate() (denylist check first,
//    then signature and expiry verification, then user lookup)
// 3. Stores the authenticated user and the raw token in the request context
// 4. Allows downstream handlers to access them via GetUser() and GetToken()
//
// Authorization header format: "Bearer <token>" (case-insensitive "bearer")
//
// Error handling:
//   - Missing Authorization header → 401 Unauthorized
//   - Malformed Authorization header → 401 Unauthorized
//   - Revoked/invalid/expired token → 401 Unauthorized (from AuthUseCase.Authenticate)
//   - Deleted or deactivated user → 401 Unauthorized (from AuthUseCase.Authenticate)
//   - Other errors → 500 Internal Server Error
func AuthenticationMiddleware(authUC authUseCase.AuthUseCase, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Debug("authentication failed: missing authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrTokenRequired, logger)
			c.Abort()
			return
		}

		// Parse Bearer token (case-insensitive)
		const bearerPrefix = "bearer "
		if len(authHeader) < len(bearerPrefix) ||
			!strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			logger.Debug("authentication failed: malformed authorization header")
			httputil.HandleErrorGin(c, authDomain.ErrTokenRequired, logger)
			c.Abort()
			return
		}

		rawToken := authHeader[len(bearerPrefix):]
		if rawToken == "" {
			logger.Debug("authentication failed: empty bearer token")
			httputil.HandleErrorGin(c, authDomain.ErrTokenRequired, logger)
			c.Abort()
			return
		}

		// Authenticate using the raw token
		user, err := authUC.Authenticate(c.Request.Context(), rawToken)
		if err != nil {
			logger.Debug("authentication failed",
				slog.String("error", err.Error()))
			httputil.HandleErrorGin(c, err, logger)
			c.Abort()
			return
		}

		// Store authenticated user and raw token in context
		ctx := WithUser(c.Request.Context(), user)
		ctx = WithToken(ctx, rawToken)
		c.Request = c.Request.WithContext(ctx)

		logger.Debug("authentication successful",
			slog.String("user_id", user.ID.String()),
			slog.String("role", string(user.Role)))

		// Continue to next handler
		c.Next()
	}
}

// RequireRole provides role-based authorization for authenticated users.
//
// This middleware MUST be used after AuthenticationMiddleware, as it requires an
// authenticated user to be present in the request context. An admin user satisfies
// every role requirement; other users must hold the required role exactly.
//
// Error handling:
//   - No user in context → 401 Unauthorized (AuthenticationMiddleware not run)
//   - User lacks the required role → 403 Forbidden
func RequireRole(required authDomain.Role, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Retrieve authenticated user from context
		user, ok := GetUser(c.Request.Context())
		if !ok || user == nil {
			logger.Debug("authorization failed: no authenticated user in context")
			httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, logger)
			c.Abort()
			return
		}

		if !user.Role.Satisfies(required) {
			logger.Debug("authorization failed: insufficient role",
				slog.String("user_id", user.ID.String()),
				slog.String("role", string(user.Role)),
				slog.String("required", string(required)))
			httputil.HandleErrorGin(c, authDomain.ErrAdminRequired, logger)
			c.Abort()
			return
		}

		// Continue to next handler
		c.Next()
	}
}
