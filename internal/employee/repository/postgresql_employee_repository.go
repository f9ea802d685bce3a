// Package repository provides data persistence implementations for employee entities.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/allisson/employee-api/internal/database"
	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	apperrors "github.com/allisson/employee-api/internal/errors"
)

// PostgreSQLEmployeeRepository handles employee persistence for PostgreSQL
type PostgreSQLEmployeeRepository struct {
	db *sql.DB
}

// NewPostgreSQLEmployeeRepository creates a new PostgreSQLEmployeeRepository
func NewPostgreSQLEmployeeRepository(db *sql.DB) *PostgreSQLEmployeeRepository {
	return &PostgreSQLEmployeeRepository{
		db: db,
	}
}

// Create inserts a new employee
func (r *PostgreSQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO employees (id, first_name, last_name, position, hired_at, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())`

	_, err := querier.ExecContext(
		ctx,
		query,
		employee.ID,
		employee.FirstName,
		employee.LastName,
		employee.Position,
		employee.HiredAt,
		employee.Status,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create employee")
	}
	return nil
}

// Update modifies an existing employee
func (r *PostgreSQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE employees
			  SET first_name = $1,
			  	  last_name = $2,
				  position = $3,
				  hired_at = $4,
				  status = $5,
				  updated_at = NOW()
			  WHERE id = $6`

	result, err := querier.ExecContext(
		ctx,
		query,
		employee.FirstName,
		employee.LastName,
		employee.Position,
		employee.HiredAt,
		employee.Status,
		employee.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update employee")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return employeeDomain.ErrEmployeeNotFound
	}
	return nil
}

// Delete removes an employee
func (r *PostgreSQLEmployeeRepository) Delete(ctx context.Context, employeeID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM employees WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, employeeID)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete employee")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return employeeDomain.ErrEmployeeNotFound
	}
	return nil
}

// GetByID retrieves an employee by ID
func (r *PostgreSQLEmployeeRepository) GetByID(
	ctx context.Context,
	employeeID uuid.UUID,
) (*employeeDomain.Employee, error) {
	var employee employeeDomain.Employee
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, employeeID).Scan(
		&employee.ID,
		&employee.FirstName,
		&employee.LastName,
		&employee.Position,
		&employee.HiredAt,
		&employee.Status,
		&employee.CreatedAt,
		&employee.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, employeeDomain.ErrEmployeeNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get employee by id")
	}

	return &employee, nil
}

// List retrieves employees ordered by creation time, newest first
func (r *PostgreSQLEmployeeRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// ListByStatus retrieves employees with the given status, newest first
func (r *PostgreSQLEmployeeRepository) ListByStatus(
	ctx context.Context,
	status employeeDomain.Status,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees
			  WHERE status = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees by status")
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// Search retrieves employees whose name or position contains the query substring
func (r *PostgreSQLEmployeeRepository) Search(
	ctx context.Context,
	searchQuery string,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees
			  WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR position ILIKE $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	pattern := "%" + searchQuery + "%"
	rows, err := querier.QueryContext(ctx, query, pattern, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search employees")
	}
	defer rows.Close()

	return scanEmployees(rows)
}

// scanEmployees collects employee rows into a slice.
func scanEmployees(rows *sql.Rows) ([]*employeeDomain.Employee, error) {
	employees := make([]*employeeDomain.Employee, 0)
	for rows.Next() {
		var employee employeeDomain.Employee
		if err := rows.Scan(
			&employee.ID,
			&employee.FirstName,
			&employee.LastName,
			&employee.Position,
			&employee.HiredAt,
			&employee.Status,
			&employee.CreatedAt,
			&employee.UpdatedAt,
		); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan employee")
		}
		employees = append(employees, &employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employees")
	}
	return employees, nil
}
