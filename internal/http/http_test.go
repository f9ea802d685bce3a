package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	authHTTP "github.com/allisson/employee-api/internal/auth/http"
	authMocks "github.com/allisson/employee-api/internal/auth/http/mocks"
	"github.com/allisson/employee-api/internal/config"
	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	employeeHTTP "github.com/allisson/employee-api/internal/employee/http"
	employeeMocks "github.com/allisson/employee-api/internal/employee/http/mocks"
)

// TestMain sets Gin to test mode for all tests in this package.
func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func testConfig() *config.Config {
	return &config.Config{
		ServerHost:       "localhost",
		ServerPort:       8080,
		LogLevel:         "error",
		RateLimitEnabled: false,
	}
}

// createTestServer creates a test server with mocked use cases and a discarding logger.
func createTestServer(
	authUC *authMocks.MockAuthUseCase,
	employeeUC *employeeMocks.MockEmployeeUseCase,
) *Server {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	authHandler := authHTTP.NewAuthHandler(authUC, logger)
	employeeHandler := employeeHTTP.NewEmployeeHandler(employeeUC, logger)
	return NewServer(testConfig(), nil, logger, authUC, authHandler, employeeHandler, nil)
}

func adminUser() *authDomain.User {
	return &authDomain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    "admin@x.com",
		Role:     authDomain.RoleAdmin,
		IsActive: true,
	}
}

func staffUser() *authDomain.User {
	return &authDomain.User{
		ID:       uuid.Must(uuid.NewV7()),
		Email:    "staff@x.com",
		Role:     authDomain.RoleStaff,
		IsActive: true,
	}
}

// TestHealthHandler tests the health check endpoint handler.
func TestHealthHandler(t *testing.T) {
	server := createTestServer(&authMocks.MockAuthUseCase{}, &employeeMocks.MockEmployeeUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]string
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "healthy", response["status"])
}

// TestReadinessHandler_NotReady_NilDB tests the readiness endpoint when DB is nil.
func TestReadinessHandler_NotReady_NilDB(t *testing.T) {
	server := createTestServer(&authMocks.MockAuthUseCase{}, &employeeMocks.MockEmployeeUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "not_ready", response["status"])

	components, ok := response["components"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "error", components["database"])
}

// TestRouter_EmployeeRoutesRequireAuthentication verifies that every employee
// route rejects requests without a bearer token.
func TestRouter_EmployeeRoutesRequireAuthentication(t *testing.T) {
	server := createTestServer(&authMocks.MockAuthUseCase{}, &employeeMocks.MockEmployeeUseCase{})

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/v1/employees"},
		{http.MethodGet, "/v1/employees/" + uuid.Must(uuid.NewV7()).String()},
		{http.MethodPost, "/v1/employees"},
		{http.MethodPut, "/v1/employees/" + uuid.Must(uuid.NewV7()).String()},
		{http.MethodDelete, "/v1/employees/" + uuid.Must(uuid.NewV7()).String()},
		{http.MethodPost, "/v1/auth/logout"},
		{http.MethodGet, "/v1/auth/profile"},
	}

	for _, route := range routes {
		t.Run(route.method+" "+route.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(route.method, route.path, nil)
			server.GetHandler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

// TestRouter_AdminOnlyRoutes verifies role enforcement on mutation endpoints.
func TestRouter_AdminOnlyRoutes(t *testing.T) {
	t.Run("StaffForbiddenFromUpdateAndDelete", func(t *testing.T) {
		authUC := &authMocks.MockAuthUseCase{}
		authUC.On("Authenticate", mock.Anything, "staff-token").Return(staffUser(), nil)

		server := createTestServer(authUC, &employeeMocks.MockEmployeeUseCase{})
		employeeID := uuid.Must(uuid.NewV7()).String()

		for _, method := range []string{http.MethodPut, http.MethodDelete} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(method, "/v1/employees/"+employeeID, nil)
			req.Header.Set("Authorization", "Bearer staff-token")
			server.GetHandler().ServeHTTP(w, req)

			assert.Equal(t, http.StatusForbidden, w.Code)
		}
	})

	t.Run("AdminAllowedToDelete", func(t *testing.T) {
		authUC := &authMocks.MockAuthUseCase{}
		authUC.On("Authenticate", mock.Anything, "admin-token").Return(adminUser(), nil)

		employeeUC := &employeeMocks.MockEmployeeUseCase{}
		employeeID := uuid.Must(uuid.NewV7())
		employeeUC.On("Delete", mock.Anything, employeeID).Return(nil).Once()

		server := createTestServer(authUC, employeeUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/v1/employees/"+employeeID.String(), nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		employeeUC.AssertExpectations(t)
	})

	t.Run("StaffAllowedToList", func(t *testing.T) {
		authUC := &authMocks.MockAuthUseCase{}
		authUC.On("Authenticate", mock.Anything, "staff-token").Return(staffUser(), nil)

		employeeUC := &employeeMocks.MockEmployeeUseCase{}
		employeeUC.On("List", mock.Anything, 0, 50).
			Return([]*employeeDomain.Employee{}, nil).Once()

		server := createTestServer(authUC, employeeUC)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/employees", nil)
		req.Header.Set("Authorization", "Bearer staff-token")
		server.GetHandler().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

// TestCustomLoggerMiddleware tests the custom logging middleware.
func TestCustomLoggerMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	router := gin.New()
	router.Use(CustomLoggerMiddleware(logger))
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "test"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestRouter_NotFoundEndpoint tests 404 handling.
func TestRouter_NotFoundEndpoint(t *testing.T) {
	server := createTestServer(&authMocks.MockAuthUseCase{}, &employeeMocks.MockEmployeeUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	server.GetHandler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestServer_ShutdownGracefully tests graceful server shutdown.
func TestServer_ShutdownGracefully(t *testing.T) {
	server := createTestServer(&authMocks.MockAuthUseCase{}, &employeeMocks.MockEmployeeUseCase{})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Shutdown before Start is a no-op on the underlying http.Server
	assert.NoError(t, server.Shutdown(ctx))
}
