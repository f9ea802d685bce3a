package repository

import (
	"context"
	"database/sql"
	"time"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	"github.com/allisson/employee-api/internal/database"
	apperrors "github.com/allisson/employee-api/internal/errors"
)

// MySQLRevokedTokenRepository handles token denylist persistence for MySQL.
// The denylist is keyed by the raw token string with a unique constraint, so a
// double insert of the same token is swallowed rather than surfaced.
type MySQLRevokedTokenRepository struct {
	db *sql.DB
}

// NewMySQLRevokedTokenRepository creates a new MySQLRevokedTokenRepository
func NewMySQLRevokedTokenRepository(db *sql.DB) *MySQLRevokedTokenRepository {
	return &MySQLRevokedTokenRepository{
		db: db,
	}
}

// Create inserts a denylist entry. Inserting an already revoked token is a no-op.
func (r *MySQLRevokedTokenRepository) Create(ctx context.Context, token *authDomain.RevokedToken) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT IGNORE INTO revoked_tokens (id, token, user_id, revoked_at, expires_at)
			  VALUES (?, ?, ?, ?, ?)`

	// Convert UUIDs to bytes for MySQL BINARY(16)
	idBytes, err := token.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}
	userIDBytes, err := token.UserID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal UUID")
	}

	_, err = querier.ExecContext(
		ctx,
		query,
		idBytes,
		token.Token,
		userIDBytes,
		token.RevokedAt,
		token.ExpiresAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create revoked token")
	}
	return nil
}

// Exists reports whether the raw token is denylisted
func (r *MySQLRevokedTokenRepository) Exists(ctx context.Context, rawToken string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token = ?)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, rawToken).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check revoked token")
	}
	return exists, nil
}

// DeleteExpiredBefore removes denylist entries whose token expiry has passed
func (r *MySQLRevokedTokenRepository) DeleteExpiredBefore(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM revoked_tokens WHERE expires_at < ?`

	result, err := querier.ExecContext(ctx, query, now)
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to delete expired revoked tokens")
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Wrap(err, "failed to get rows affected")
	}
	return rows, nil
}
