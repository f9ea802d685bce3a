// Package usecase defines business logic interfaces for employee management.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
)

// EmployeeRepository defines persistence operations for employees.
// Implementations must support transaction-aware operations via context propagation.
type EmployeeRepository interface {
	// Create stores a new employee.
	Create(ctx context.Context, employee *employeeDomain.Employee) error

	// Update modifies an existing employee. Returns ErrEmployeeNotFound if not found.
	Update(ctx context.Context, employee *employeeDomain.Employee) error

	// Delete removes an employee. Returns ErrEmployeeNotFound if not found.
	Delete(ctx context.Context, employeeID uuid.UUID) error

	// GetByID retrieves an employee by ID. Returns ErrEmployeeNotFound if not found.
	GetByID(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error)

	// List retrieves employees ordered by creation time, newest first.
	List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error)

	// ListByStatus retrieves employees with the given status, newest first.
	ListByStatus(ctx context.Context, status employeeDomain.Status, offset, limit int) ([]*employeeDomain.Employee, error)

	// Search retrieves employees whose name or position contains the query
	// substring (case-insensitive), newest first.
	Search(ctx context.Context, query string, offset, limit int) ([]*employeeDomain.Employee, error)
}

// CreateEmployeeInput contains the parameters for creating an employee.
type CreateEmployeeInput struct {
	FirstName string
	LastName  string
	Position  string
	HiredAt   time.Time
	Status    employeeDomain.Status
}

// UpdateEmployeeInput contains the parameters for updating an employee.
type UpdateEmployeeInput struct {
	FirstName string
	LastName  string
	Position  string
	HiredAt   time.Time
	Status    employeeDomain.Status
}

// EmployeeUseCase defines the employee management operations.
type EmployeeUseCase interface {
	// Create stores a new employee. Status defaults to active when unspecified.
	Create(ctx context.Context, input CreateEmployeeInput) (*employeeDomain.Employee, error)

	// Get retrieves an employee by ID.
	Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error)

	// List retrieves employees, newest first.
	List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error)

	// ListByStatus retrieves employees with the given status, newest first.
	ListByStatus(ctx context.Context, status employeeDomain.Status, offset, limit int) ([]*employeeDomain.Employee, error)

	// Search retrieves employees matching the query substring, newest first.
	Search(ctx context.Context, query string, offset, limit int) ([]*employeeDomain.Employee, error)

	// Update replaces an employee's mutable fields.
	Update(ctx context.Context, employeeID uuid.UUID, input UpdateEmployeeInput) (*employeeDomain.Employee, error)

	// Delete removes an employee.
	Delete(ctx context.Context, employeeID uuid.UUID) error
}
