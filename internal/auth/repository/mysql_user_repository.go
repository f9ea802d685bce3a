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

// MySQLUserRepository handles user persistence for MySQL
type MySQLUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new MySQLUserRepository
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{
		db: db,
	}
}

// Create inserts a new user
func (r *MySQLUserRepository) Create(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO users (id, email, password, role, is_active, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?, NOW(), NOW())`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(ctx, query, uuidBytes, user.Email, user.Password, user.Role, user.IsActive)
	if err != nil {
		// Check for unique constraint violation (duplicate email)
		if isMySQLUniqueViolation(err) {
			return authDomain.ErrUserAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create user")
	}
	return nil
}

// Update modifies an existing user's mutable fields
func (r *MySQLUserRepository) Update(ctx context.Context, user *authDomain.User) error {
	querier := database.GetTx(ctx, r.db)

	query := `UPDATE users
			  SET password = ?, role = ?, is_active = ?, updated_at = NOW()
			  WHERE id = ?`

	uuidBytes, err := user.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	result, err := querier.ExecContext(ctx, query, user.Password, user.Role, user.IsActive, uuidBytes)
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
func (r *MySQLUserRepository) GetByID(ctx context.Context, userID uuid.UUID) (*authDomain.User, error) {
	var user authDomain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE id = ?`

	// Convert UUID to bytes for MySQL BINARY(16)
	uuidBytes, err := userID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal UUID")
	}

	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, uuidBytes).Scan(
		&idBytes, &user.Email, &user.Password, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by id")
	}

	// Convert bytes back to UUID
	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &user, nil
}

// GetByEmail retrieves a user by email
func (r *MySQLUserRepository) GetByEmail(ctx context.Context, email string) (*authDomain.User, error) {
	var user authDomain.User
	querier := database.GetTx(ctx, r.db)

	query := `SELECT id, email, password, role, is_active, created_at, updated_at
			  FROM users WHERE email = ?`

	var idBytes []byte
	err := querier.QueryRowContext(ctx, query, email).Scan(
		&idBytes, &user.Email, &user.Password, &user.Role, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get user by email")
	}

	// Convert bytes back to UUID
	if err := user.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal UUID")
	}

	return &user, nil
}

// isMySQLUniqueViolation checks if the error is a MySQL unique constraint violation
func isMySQLUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	// MySQL: "Error 1062: Duplicate entry"
	return strings.Contains(errMsg, "duplicate entry") || strings.Contains(errMsg, "1062")
}
