// Package repository provides data persistence implementations for authentication entities.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	"github.com/allisson/employee-api/internal/database"
	apperrors "github.com/allisson/employee-api/internal/errors"
)

// PostgreSQLUserRepository handles user persistence for PostgreSQL
type PostgreSQLUserRepository struct {
	db *sql.DB
}

// NewPostgreSQLUserRepository creates a new PostgreSQLUserRepository
func NewPostgreSQLUserRepository(db *sql.DB) *PostgreSQLUserRepository {
	return &PostgreSQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *PostgreSQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, password, role, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, NOW(), NOW())`

	_, err := querier.ExecContext(ctx, query, user.ID, user.Email, user.Password, user.Role, user.IsActive)
	if err != nil {
		// Check for unique constraint violation (duplicate email)
		if isPostgreSQLUniqueViolation(err) {
			return authDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Update modifies an existing user's mutable fields
func (r *PostgreSQLUserRepository) Update(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET password = $1, role = $2, is_active = $3, updated_at = NOW()
			  WHERE id = $4`

	result, err := querier.ExecContext(ctx, query, user.Password, user.Role, user.IsActive, user.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to update user")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to get rows affected")
	}
	if rows == 0 {
		return authDomain.ErrUserNotFound
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *PostgreSQLUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*authDomain.User, error) {
	var user authDomain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE id = $1`

	err := querier.QueryRowContext(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *PostgreSQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	var user authDomain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE email = $1`

	err := querier.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	return &user, nil
}

// isPostgreSQLUniqueViolation checks if the error is a PostgreSQL unique constraint violation
func isPostgreSQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// PostgreSQL: "duplicate key value violates unique constraint" or "pq: duplicate key"
	return strings.Contains(errMsg, "duplicate key") || strings.Contains(errMsg, "unique constraint")
}
