package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/allisson/employee-api/internal/database"
	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
	apperrors "github.com/allisson/employee-api/internal/errors"
)

// MySQLEmployeeRepository handles employee persistence for MySQL
type MySQLEmployeeRepository struct {
	db *sql.DB
}

// NewMySQLEmployeeRepository creates a new MySQLEmployeeRepository
func NewMySQLEmployeeRepository(db *sql.DB) *MySQLEmployeeRepository {
	return &MySQLEmployeeRepository{
		db: db,
	}
}

// Create inserts a new employee
func (r *MySQLEmployeeRepository) Create(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO employees (id, first_name, last_name, position, hired_at, status, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := employee.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		uuidBytes,
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
func (r *MySQLEmployeeRepository) Update(ctx context.Context, employee *employeeDomain.Employee) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE employees
			  SET first_name = ?,
			  	  last_name = ?,
				  position = ?,
				  hired_at = ?,
				  status = ?,
				  updated_at = NOW()
			  WHERE id = ?`

	uuidBytes, err := employee.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(
		ctx,
		query,
		employee.FirstName,
		employee.LastName,
		employee.Position,
		employee.HiredAt,
		employee.Status,
		uuidBytes,
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
func (r *MySQLEmployeeRepository) Delete(ctx context.Context, employeeID uuid.UUID) error {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM employees WHERE id = ?`

	uuidBytes, err := employeeID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, uuidBytes)
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
func (r *MySQLEmployeeRepository) GetByID(
	ctx context.Context,
	employeeID uuid.UUID,
) (*employeeDomain.Employee, error) {
	var employee employeeDomain.Employee
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees WHERE id = ?`

	uuidBytes, err := employeeID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes,
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

	// Convert bytes back to UUID
	if err := employee.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &employee, nil
}

// List retrieves employees ordered by creation time, newest first
func (r *MySQLEmployeeRepository) List(
	ctx context.Context,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees")
	}
	defer rows.Close()

	return scanMySQLEmployees(rows)
}

// ListByStatus retrieves employees with the given status, newest first
func (r *MySQLEmployeeRepository) ListByStatus(
	ctx context.Context,
	status employeeDomain.Status,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees
			  WHERE status = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list employees by status")
	}
	defer rows.Close()

	return scanMySQLEmployees(rows)
}

// Search retrieves employees whose name or position contains the query substring
func (r *MySQLEmployeeRepository) Search(
	ctx context.Context,
	searchQuery string,
	offset, limit int,
) ([]*employeeDomain.Employee, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, first_name, last_name, position, hired_at, status, created_at, updated_at
			  FROM employees
			  WHERE LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(position) LIKE ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	pattern := "%" + strings.ToLower(searchQuery) + "%"
	rows, err := querier.QueryContext(ctx, query, pattern, pattern, pattern, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to search employees")
	}
	defer rows.Close()

	return scanMySQLEmployees(rows)
}

// scanMySQLEmployees collects employee rows into a slice, decoding binary UUIDs.
func scanMySQLEmployees(rows *sql.Rows) ([]*employeeDomain.Employee, error) {
	employees := make([]*employeeDomain.Employee, 0)
	for rows.Next() {
		var employee employeeDomain.Employee
		var idBytes []byte
		if err := rows.Scan(
			&idBytes,
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
		if err := employee.ID.UnmarshalBinary(idBytes); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
		}
		employees = append(employees, &employee)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate employees")
	}
	return employees, nil
}
