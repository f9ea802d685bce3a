package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	authHTTP "github.com/allisson/employee-api/internal/auth/http"
	authUseCase "github.com/allisson/employee-api/internal/auth/usecase"
	"github.com/allisson/employee-api/internal/config"
	employeeHTTP "github.com/allisson/employee-api/internal/employee/http"
	"github.com/allisson/employee-api/internal/metrics"
)

// Server represents the HTTP API server.
type Server struct {
	config          *config.Config
	db              *sql.DB
	logger          *slog.Logger
	authUseCase     authUseCase.AuthUseCase
	authHandler     *authHTTP.AuthHandler
	employeeHandler *employeeHTTP.EmployeeHandler
	metricsProvider *metrics.Provider
	router          *gin.Engine
	server          *http.Server
}

// NewServer creates a new HTTP server with all route handlers wired.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	logger *slog.Logger,
	authUC authUseCase.AuthUseCase,
	authHandler *authHTTP.AuthHandler,
	employeeHandler *employeeHTTP.EmployeeHandler,
	metricsProvider *metrics.Provider,
) *Server {
	s := &Server{
		config:          cfg,
		db:              db,
		logger:          logger,
		authUseCase:     authUC,
		authHandler:     authHandler,
		employeeHandler: employeeHandler,
		metricsProvider: metricsProvider,
	}

	gin.SetMode(cfg.GetGinMode())
	s.router = s.setupRouter()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRouter builds the gin engine with middleware and all API routes.
func (s *Server) setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.config.CORSEnabled, s.config.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.metricsProvider.MeterProvider(), s.config.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	// Unauthenticated credential endpoints, rate limited per IP
	auth := v1.Group("/auth")
	if s.config.RateLimitEnabled {
		limited := auth.Group("")
		limited.Use(authHTTP.LoginRateLimitMiddleware(
			s.config.RateLimitRequestsPerSec,
			s.config.RateLimitBurst,
			s.logger,
		))
		limited.POST("/register", s.authHandler.RegisterHandler)
		limited.POST("/login", s.authHandler.LoginHandler)
	} else {
		auth.POST("/register", s.authHandler.RegisterHandler)
		auth.POST("/login", s.authHandler.LoginHandler)
	}

	// Authenticated endpoints
	authenticated := auth.Group("")
	authenticated.Use(authHTTP.AuthenticationMiddleware(s.authUseCase, s.logger))
	authenticated.POST("/logout", s.authHandler.LogoutHandler)
	authenticated.GET("/profile", s.authHandler.ProfileHandler)

	// Employee endpoints: read and create for any verified user,
	// update and delete restricted to admins
	employees := v1.Group("/employees")
	employees.Use(authHTTP.AuthenticationMiddleware(s.authUseCase, s.logger))
	employees.GET("", s.employeeHandler.ListHandler)
	employees.GET("/:id", s.employeeHandler.GetHandler)
	employees.POST("", s.employeeHandler.CreateHandler)
	employees.PUT("/:id", authHTTP.RequireRole(authDomain.RoleAdmin, s.logger), s.employeeHandler.UpdateHandler)
	employees.DELETE("/:id", authHTTP.RequireRole(authDomain.RoleAdmin, s.logger), s.employeeHandler.DeleteHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking the
// database connection.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{"database": "ok"}
	status := http.StatusOK
	overall := "ready"

	if s.db == nil {
		components["database"] = "error"
		status = http.StatusServiceUnavailable
		overall = "not_ready"
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		components["database"] = "error"
		status = http.StatusServiceUnavailable
		overall = "not_ready"
	}

	c.JSON(status, gin.H{"status": overall, "components": components})
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
