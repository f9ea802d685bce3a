package app

import (
	"fmt"

	authHTTP "github.com/allisson/employee-api/internal/auth/http"
	authRepository "github.com/allisson/employee-api/internal/auth/repository"
	authService "github.com/allisson/employee-api/internal/auth/service"
	authUsecase "github.com/allisson/employee-api/internal/auth/usecase"
)

// authComponents holds the lazily initialized auth module dependencies.
type authComponents struct {
	tokenService    authService.TokenService
	passwordService authService.PasswordService
	userRepo        authUsecase.UserRepository
	revokedRepo     authUsecase.RevokedTokenRepository
	useCase         authUsecase.AuthUseCase
	handler         *authHTTP.AuthHandler
	reaper          *authUsecase.TokenReaper
}

// AuthUseCase returns the auth use case with all its dependencies wired.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.useCase, nil
}

// AuthHandler returns the HTTP handler for auth endpoints.
func (c *Container) AuthHandler() (*authHTTP.AuthHandler, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.handler, nil
}

// TokenReaper returns the background worker that purges expired revoked tokens.
func (c *Container) TokenReaper() (*authUsecase.TokenReaper, error) {
	if err := c.initAuth(); err != nil {
		return nil, err
	}
	return c.auth.reaper, nil
}

// initAuth wires the auth module: services, driver-specific repositories,
// use case (with optional metrics decoration), HTTP handler and reaper.
func (c *Container) initAuth() error {
	c.authInit.Do(func() {
		if err := c.config.ValidateAuth(); err != nil {
			c.initErrors["auth"] = err
			return
		}

		db, err := c.DB()
		if err != nil {
			c.initErrors["auth"] = err
			return
		}

		tokenService, err := authService.NewTokenService(c.config.JWTSecret)
		if err != nil {
			c.initErrors["auth"] = fmt.Errorf("failed to create token service: %w", err)
			return
		}

		passwordService, err := authService.NewPasswordService()
		if err != nil {
			c.initErrors["auth"] = fmt.Errorf("failed to create password service: %w", err)
			return
		}

		var userRepo authUsecase.UserRepository
		var revokedRepo authUsecase.RevokedTokenRepository
		switch c.config.DBDriver {
		case "postgres":
			userRepo = authRepository.NewPostgreSQLUserRepository(db)
			revokedRepo = authRepository.NewPostgreSQLRevokedTokenRepository(db)
		case "mysql":
			userRepo = authRepository.NewMySQLUserRepository(db)
			revokedRepo = authRepository.NewMySQLRevokedTokenRepository(db)
		default:
			c.initErrors["auth"] = fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
			return
		}

		authUC := authUsecase.NewAuthUseCase(c.config, userRepo, revokedRepo, tokenService, passwordService)

		if c.config.MetricsEnabled {
			businessMetrics, err := c.BusinessMetrics()
			if err != nil {
				c.initErrors["auth"] = err
				return
			}
			authUC = authUsecase.NewAuthUseCaseWithMetrics(authUC, businessMetrics)
		}

		c.auth = authComponents{
			tokenService:    tokenService,
			passwordService: passwordService,
			userRepo:        userRepo,
			revokedRepo:     revokedRepo,
			useCase:         authUC,
			handler:         authHTTP.NewAuthHandler(authUC, c.Logger()),
			reaper:          authUsecase.NewTokenReaper(c.config.TokenReaperInterval, authUC, c.Logger()),
		}
	})
	if storedErr, exists := c.initErrors["auth"]; exists {
		return storedErr
	}
	return nil
}
