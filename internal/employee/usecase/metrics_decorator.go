package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	"github.com/allisson/employee-api/internal/metrics"
)

// employeeUseCaseWithMetrics decorates EmployeeUseCase with metrics instrumentation.
type employeeUseCaseWithMetrics struct {
	next    EmployeeUseCase
	metrics metrics.BusinessMetrics
}

// NewEmployeeUseCaseWithMetrics wraps an EmployeeUseCase with metrics recording.
func NewEmployeeUseCaseWithMetrics(useCase EmployeeUseCase, m metrics.BusinessMetrics) EmployeeUseCase {
	return &employeeUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record reports the operation outcome and duration.
func (e *employeeUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	e.metrics.RecordOperation(ctx, "employee", operation, status)
	e.metrics.RecordDuration(ctx, "employee", operation, time.Since(start), status)
}

func (e *employeeUseCaseWithMetrics) Create(
	ctx context.Context,
	input CreateEmployeeInput,
) (*employeeDomain.Employee, error) {
	start := time.Now()
	employee, err := e.next.Create(ctx, input)
	e.record(ctx, "create", start, err)
	return employee, err
}

func (e *employeeUseCaseWithMetrics) Get(
	ctx context.Context,
	employeeID uuid.UUID,
) (*employeeDomain.Employee, error) {
	start := time.Now()
	employee, err := e.next.Get(ctx, employeeID)
	e.record(ctx, "get", start, err)
	return employee, err
}

func (e *employeeUseCaseWithMetrics) List(
	ctx context.Context,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	start := time.Now()
	employees, err := e.next.List(ctx, offset, limit)
	e.record(ctx, "list", start, err)
	return employees, err
}

func (e *employeeUseCaseWithMetrics) ListByStatus(
	ctx context.Context,
	status employeeDomain.Status,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	start := time.Now()
	employees, err := e.next.ListByStatus(ctx, status, offset, limit)
	e.record(ctx, "list_by_status", start, err)
	return employees, err
}

func (e *employeeUseCaseWithMetrics) Search(
	ctx context.Context,
	query string,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	start := time.Now()
	employees, err := e.next.Search(ctx, query, offset, limit)
	e.record(ctx, "search", start, err)
	return employees, err
}

func (e *employeeUseCaseWithMetrics) Update(
	ctx context.Context,
	employeeID uuid.UUID,
	input UpdateEmployeeInput,
) (*employeeDomain.Employee, error) {
	start := time.Now()
	employee, err := e.next.Update(ctx, employeeID, input)
	e.record(ctx, "update", start, err)
	return employee, err
}

func (e *employeeUseCaseWithMetrics) Delete(ctx context.Context, employeeID uuid.UUID) error {
	start := time.Now()
	err := e.next.Delete(ctx, employeeID)
	e.record(ctx, "delete", start, err)
	return err
}
