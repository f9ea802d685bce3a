package repository

import (
	"context"
	"database/sql"
	"time"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	"github.com/allisson/employee-api/internal/database"
	apperrors "github.com/allisson/employee-api/internal/errors"
)

// PostgreSQLRevokedTokenRepository handles token denylist persistence for PostgreSQL.
// The denylist is keyed by the raw token string with a unique constraint, so a
// double insert of the same token is swallowed rather than surfaced.
type PostgreSQLRevokedTokenRepository struct {
	db *sql.DB
}

// NewPostgreSQLRevokedTokenRepository creates a new PostgreSQLRevokedTokenRepository
func NewPostgreSQLRevokedTokenRepository(db *sql.DB) *PostgreSQLRevokedTokenRepository {
	return &PostgreSQLRevokedTokenRepository{
		db: db,
	}
}

// Create inserts a denylist entry. Inserting an already revoked token is a no-op.
func (r *PostgreSQLRevokedTokenRepository) Create(ctx context.Context, token *authDomain.RevokedToken) error {
	querier := database.GetTx(ctx, r.db)

	query := `INSERT INTO revoked_tokens (id, token, user_id, revoked_at, expires_at)
			  VALUES ($1, $2, $3, $4, $5)
			  ON CONFLICT (token) DO NOTHING`

	_, err := querier.ExecContext(
		ctx,
		query,
		token.ID,
		token.Token,
		token.UserID,
		token.RevokedAt,
		token.ExpiresAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create revoked token")
	}
	return nil
}

// Exists reports whether the raw token is denylisted
func (r *PostgreSQLRevokedTokenRepository) Exists(ctx context.Context, rawToken string) (bool, error) {
	querier := database.GetTx(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM revoked_tokens WHERE token = $1)`

	var exists bool
	if err := querier.QueryRowContext(ctx, query, rawToken).Scan(&exists); err != nil {
		return false, apperrors.Wrap(err, "failed to check revoked token")
	}
	return exists, nil
}

// DeleteExpiredBefore removes denylist entries whose token expiry has passed
func (r *PostgreSQLRevokedTokenRepository) DeleteExpiredBefore(ctx context.Context, now time.Time) (int64, error) {
	querier := database.GetTx(ctx, r.db)

	query := `DELETE FROM revoked_tokens WHERE expires_at < $1`

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
