// Package mocks provides mock implementations for testing HTTP handlers.
package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	employeeUseCase "github.com/allisson/employee-api/internal/employee/usecase"
)

// MockEmployeeUseCase is a mock implementation of EmployeeUseCase for testing.
type MockEmployeeUseCase struct {
	mock.Mock
}

// Create mocks the Create method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Create(
	ctx context.Context,
	input employeeUseCase.CreateEmployeeInput,
) (*employeeDomain.Employee, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeDomain.Employee), args.Error(1)
}

// Get mocks the Get method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Get(
	ctx context.Context,
	employeeID uuid.UUID,
) (*employeeDomain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeDomain.Employee), args.Error(1)
}

// List mocks the List method of EmployeeUseCase.
func (m *MockEmployeeUseCase) List(
	ctx context.Context,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employeeDomain.Employee), args.Error(1)
}

// ListByStatus mocks the ListByStatus method of EmployeeUseCase.
func (m *MockEmployeeUseCase) ListByStatus(
	ctx context.Context,
	status employeeDomain.Status,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	args := m.Called(ctx, status, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employeeDomain.Employee), args.Error(1)
}

// Search mocks the Search method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Search(
	ctx context.Context,
	query string,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	args := m.Called(ctx, query, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employeeDomain.Employee), args.Error(1)
}

// Update mocks the Update method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Update(
	ctx context.Context,
	employeeID uuid.UUID,
	input employeeUseCase.UpdateEmployeeInput,
) (*employeeDomain.Employee, error) {
	args := m.Called(ctx, employeeID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employeeDomain.Employee), args.Error(1)
}

// Delete mocks the Delete method of EmployeeUseCase.
func (m *MockEmployeeUseCase) Delete(ctx context.Context, employeeID uuid.UUID) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}
