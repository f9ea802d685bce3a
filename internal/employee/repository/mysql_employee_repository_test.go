package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	employeeDomain "github.com/allisson/employee-api/internal/employee/domain"
)

func uuidBytes(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func mysqlEmployeeRows(t *testing.T, employees ...*employeeDomain.Employee) *sqlmock.Rows {
	t.Helper()
	rows := sqlmock.NewRows([]string{
		"id", "first_name", "last_name", "position", "hired_at", "status", "created_at", "updated_at",
	})
	for _, e := range employees {
		rows.AddRow(uuidBytes(t, e.ID), e.FirstName, e.LastName, e.Position, e.HiredAt, e.Status, e.CreatedAt, e.UpdatedAt)
	}
	return rows
}

func TestMySQLEmployeeRepository_Create(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	employee := testEmployee()

	mock.ExpectExec(`INSERT INTO employees`).
		WithArgs(
			uuidBytes(t, employee.ID),
			employee.FirstName,
			employee.LastName,
			employee.Position,
			employee.HiredAt,
			employee.Status,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMySQLEmployeeRepository(db)
	assert.NoError(t, repo.Create(ctx, employee))
}

func TestMySQLEmployeeRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_BinaryUUIDRoundTrip", func(t *testing.T) {
		db, mock := newMock(t)
		employee := testEmployee()

		mock.ExpectQuery(`SELECT .+ FROM employees WHERE id`).
			WithArgs(uuidBytes(t, employee.ID)).
			WillReturnRows(mysqlEmployeeRows(t, employee))

		repo := NewMySQLEmployeeRepository(db)
		got, err := repo.GetByID(ctx, employee.ID)
		require.NoError(t, err)
		assert.Equal(t, employee.ID, got.ID)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMock(t)
		employeeID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`SELECT .+ FROM employees WHERE id`).
			WithArgs(uuidBytes(t, employeeID)).
			WillReturnError(sql.ErrNoRows)

		repo := NewMySQLEmployeeRepository(db)
		_, err := repo.GetByID(ctx, employeeID)
		assert.ErrorIs(t, err, employeeDomain.ErrEmployeeNotFound)
	})
}

func TestMySQLEmployeeRepository_Search(t *testing.T) {
	ctx := context.Background()
	db, mock := newMock(t)
	employee := testEmployee()

	mock.ExpectQuery(`SELECT .+ FROM employees WHERE LOWER\(first_name\) LIKE`).
		WithArgs("%ada%", "%ada%", "%ada%", 50, 0).
		WillReturnRows(mysqlEmployeeRows(t, employee))

	repo := NewMySQLEmployeeRepository(db)
	got, err := repo.Search(ctx, "Ada", 0, 50)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
