package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	"github.com/allisson/employee-api/internal/auth/http/dto"
	httpMocks "github.com/allisson/employee-api/internal/auth/http/mocks"
	authUseCase "github.com/allisson/employee-api/internal/auth/usecase"
)

// setupTestHandler creates a test auth handler with mocked dependencies.
func setupTestHandler(t *testing.T) (*AuthHandler, *httpMocks.MockAuthUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockAuthUseCase := &httpMocks.MockAuthUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	handler := NewAuthHandler(mockAuthUseCase, logger)

	return handler, mockAuthUseCase
}

// createTestContext creates a test Gin context with the given request.
func createTestContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(method, path, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	return c, w
}

func sanitizedUser() *authDomain.User {
	now := time.Now().UTC()
	return &authDomain.User{
		ID:        uuid.Must(uuid.NewV7()),
		Email:     "alice@x.com",
		Role:      authDomain.RoleStaff,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestAuthHandler_RegisterHandler(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		user := sanitizedUser()

		request := dto.RegisterRequest{
			Email:    "alice@x.com",
			Password: "secret123",
		}

		mockUseCase.On("Register", mock.Anything, authUseCase.RegisterInput{
			Email:    "alice@x.com",
			Password: "secret123",
		}).Return(user, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/register", request)

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response dto.UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.Email, response.Email)
		assert.Equal(t, string(user.Role), response.Role)

		// The password digest must never appear in the payload
		assert.NotContains(t, w.Body.String(), "password")

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidJSON", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/register", nil)
		c.Request.Body = io.NopCloser(bytes.NewReader([]byte("invalid json")))

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Error_ValidationFailure", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		tests := []struct {
			name    string
			request dto.RegisterRequest
		}{
			{"missing email", dto.RegisterRequest{Password: "secret123"}},
			{"invalid email", dto.RegisterRequest{Email: "nope", Password: "secret123"}},
			{"missing password", dto.RegisterRequest{Email: "alice@x.com"}},
			{"unknown role", dto.RegisterRequest{Email: "alice@x.com", Password: "secret123", Role: "root"}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c, w := createTestContext(http.MethodPost, "/v1/auth/register", tt.request)
				handler.RegisterHandler(c)
				assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			})
		}
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Register", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrUserAlreadyExists).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/register", dto.RegisterRequest{
			Email:    "alice@x.com",
			Password: "secret123",
		})

		handler.RegisterHandler(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestAuthHandler_LoginHandler(t *testing.T) {
	t.Run("Success_ValidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		user := sanitizedUser()

		mockUseCase.On("Login", mock.Anything, authUseCase.LoginInput{
			Email:    "alice@x.com",
			Password: "secret123",
		}).Return(&authUseCase.LoginOutput{User: user, Token: "signed.jwt.token"}, nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "alice@x.com",
			Password: "secret123",
		})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.LoginResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "signed.jwt.token", response.Token)
		assert.Equal(t, user.Email, response.User.Email)

		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_InvalidCredentials", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)

		mockUseCase.On("Login", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrInvalidCredentials).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{
			Email:    "alice@x.com",
			Password: "wrong",
		})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_MissingFields", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/login", dto.LoginRequest{})

		handler.LoginHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandler_LogoutHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		user := sanitizedUser()

		mockUseCase.On("Logout", mock.Anything, "signed.jwt.token", user.ID).Return(nil).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/logout", nil)
		ctx := WithUser(c.Request.Context(), user)
		ctx = WithToken(ctx, "signed.jwt.token")
		c.Request = c.Request.WithContext(ctx)

		handler.LogoutHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("Error_NoAuthenticatedUser", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodPost, "/v1/auth/logout", nil)

		handler.LogoutHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Error_UnparseableToken", func(t *testing.T) {
		handler, mockUseCase := setupTestHandler(t)
		user := sanitizedUser()

		mockUseCase.On("Logout", mock.Anything, "broken", user.ID).
			Return(authDomain.ErrLogoutFailed).Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/logout", nil)
		ctx := WithUser(c.Request.Context(), user)
		ctx = WithToken(ctx, "broken")
		c.Request = c.Request.WithContext(ctx)

		handler.LogoutHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestAuthHandler_ProfileHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		handler, _ := setupTestHandler(t)
		user := sanitizedUser()

		c, w := createTestContext(http.MethodGet, "/v1/auth/profile", nil)
		c.Request = c.Request.WithContext(WithUser(c.Request.Context(), user))

		handler.ProfileHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.UserResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, user.ID.String(), response.ID)
	})

	t.Run("Error_NoAuthenticatedUser", func(t *testing.T) {
		handler, _ := setupTestHandler(t)

		c, w := createTestContext(http.MethodGet, "/v1/auth/profile", nil)

		handler.ProfileHandler(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
