// Package usecase implements business logic for employee management.
package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/employee-api/internal/database"
	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	customValidation "github.com/allisson/employee-api/internal/validation"
)

// employeeUseCase implements the EmployeeUseCase interface.
type employeeUseCase struct {
	employeeRepo EmployeeRepository
	txManager    database.TxManager
}

// NewEmployeeUseCase creates a new EmployeeUseCase.
func NewEmployeeUseCase(employeeRepo EmployeeRepository, txManager database.TxManager) EmployeeUseCase {
	return &employeeUseCase{
		employeeRepo: employeeRepo,
		txManager:    txManager,
	}
}

// Create stores a new employee. Status defaults to active when unspecified.
func (e *employeeUseCase) Create(
	ctx context.Context,
	input CreateEmployeeInput,
) (*employeeDomain.Employee, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Position = strings.TrimSpace(input.Position)
	if input.Status == "" {
		input.Status = employeeDomain.StatusActive
	}

	if err := validateEmployeeFields(input.FirstName, input.LastName, input.Position, input.Status); err != nil {
		return nil, err
	}

	hiredAt := input.HiredAt
	if hiredAt.IsZero() {
		hiredAt = time.Now().UTC()
	}

	now := time.Now().UTC()
	employee := &employeeDomain.Employee{
		ID:        uuid.Must(uuid.NewV7()),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Position:  input.Position,
		HiredAt:   hiredAt,
		Status:    input.Status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := e.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	return employee, nil
}

// Get retrieves an employee by ID.
func (e *employeeUseCase) Get(ctx context.Context, employeeID uuid.UUID) (*employeeDomain.Employee, error) {
	return e.employeeRepo.GetByID(ctx, employeeID)
}

// List retrieves employees, newest first.
func (e *employeeUseCase) List(ctx context.Context, offset, limit int) ([]*employeeDomain.Employee, error) {
	return e.employeeRepo.List(ctx, offset, limit)
}

// ListByStatus retrieves employees with the given status, newest first.
func (e *employeeUseCase) ListByStatus(
	ctx context.Context,
	status employeeDomain.Status,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	if !status.IsValid() {
		return nil, employeeDomain.ErrInvalidStatus
	}
	return e.employeeRepo.ListByStatus(ctx, status, offset, limit)
}

// Search retrieves employees matching the query substring, newest first.
func (e *employeeUseCase) Search(
	ctx context.Context,
	query string,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return e.employeeRepo.List(ctx, offset, limit)
	}
	return e.employeeRepo.Search(ctx, query, offset, limit)
}

// Update replaces an employee's mutable fields.
func (e *employeeUseCase) Update(
	ctx context.Context,
	employeeID uuid.UUID,
	input UpdateEmployeeInput,
) (*employeeDomain.Employee, error) {
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.Position = strings.TrimSpace(input.Position)

	if err := validateEmployeeFields(input.FirstName, input.LastName, input.Position, input.Status); err != nil {
		return nil, err
	}

	// Read and write within a transaction so concurrent updates do not
	// interleave between the fetch and the save.
	var employee *employeeDomain.Employee
	err := e.txManager.WithTx(ctx, func(ctx context.Context) error {
		var err error
		employee, err = e.employeeRepo.GetByID(ctx, employeeID)
		if err != nil {
			return err
		}

		employee.FirstName = input.FirstName
		employee.LastName = input.LastName
		employee.Position = input.Position
		employee.Status = input.Status
		if !input.HiredAt.IsZero() {
			employee.HiredAt = input.HiredAt
		}
		employee.UpdatedAt = time.Now().UTC()

		return e.employeeRepo.Update(ctx, employee)
	})
	if err != nil {
		return nil, err
	}

	return employee, nil
}

// Delete removes an employee.
func (e *employeeUseCase) Delete(ctx context.Context, employeeID uuid.UUID) error {
	return e.employeeRepo.Delete(ctx, employeeID)
}

// validateEmployeeFields checks the common employee field constraints.
func validateEmployeeFields(firstName, lastName, position string, status employeeDomain.Status) error {
	err := validation.Errors{
		"first_name": validation.Validate(firstName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		"last_name": validation.Validate(lastName,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 100),
		),
		"position": validation.Validate(position,
			validation.Required,
			customValidation.NotBlank,
			validation.Length(1, 255),
		),
	}.Filter()
	if err != nil {
		return customValidation.WrapValidationError(err)
	}

	if !status.IsValid() {
		return employeeDomain.ErrInvalidStatus
	}
	return nil
}
