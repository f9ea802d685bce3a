// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	authUseCase "github.com/allisson/employee-api/internal/auth/usecase"
)

// MockAuthUseCase is a mock implementation of AuthUseCase for testing.
type MockAuthUseCase struct {
	mock.Mock
}

// Register mocks the Register method of AuthUseCase.
func (m *MockAuthUseCase) Register(
	ctx context.Context,
	input authUseCase.RegisterInput,
) (*authDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

// Login mocks the Login method of AuthUseCase.
func (m *MockAuthUseCase) Login(
	ctx context.Context,
	input authUseCase.LoginInput,
) (*authUseCase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authUseCase.LoginOutput), args.Error(1)
}

// Logout mocks the Logout method of AuthUseCase.
func (m *MockAuthUseCase) Logout(ctx context.Context, rawToken string, userID uuid.UUID) error {
	args := m.Called(ctx, rawToken, userID)
	return args.Error(0)
}

// Authenticate mocks the Authenticate method of AuthUseCase.
func (m *MockAuthUseCase) Authenticate(ctx context.Context, rawToken string) (*authDomain.User, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

// CleanExpiredTokens mocks the CleanExpiredTokens method of AuthUseCase.
func (m *MockAuthUseCase) CleanExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
