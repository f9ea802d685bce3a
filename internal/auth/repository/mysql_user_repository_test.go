package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
)

func uuidBytes(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock := newMock(t)
		user := testUser()

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(uuidBytes(t, user.ID), user.Email, user.Password, user.Role, user.IsActive).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLUserRepository(db)
		assert.NoError(t, repo.Create(ctx, user))
	})

	t.Run("Error_DuplicateEmail", func(t *testing.T) {
		db, mock := newMock(t)
		user := testUser()

		mock.ExpectExec(`INSERT INTO users`).
			WithArgs(uuidBytes(t, user.ID), user.Email, user.Password, user.Role, user.IsActive).
			WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice@x.com' for key 'users.email'"))

		repo := NewMySQLUserRepository(db)
		assert.ErrorIs(t, repo.Create(ctx, user), authDomain.ErrUserAlreadyExists)
	})
}

func TestMySQLUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_BinaryUUIDRoundTrip", func(t *testing.T) {
		db, mock := newMock(t)
		user := testUser()

		rows := sqlmock.NewRows([]string{"id", "email", "password", "role", "is_active", "created_at", "updated_at"}).
			AddRow(uuidBytes(t, user.ID), user.Email, user.Password, user.Role, user.IsActive, user.CreatedAt, user.UpdatedAt)

		mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
			WithArgs(uuidBytes(t, user.ID)).
			WillReturnRows(rows)

		repo := NewMySQLUserRepository(db)
		got, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.Email, got.Email)
	})

	t.Run("Error_NotFound", func(t *testing.T) {
		db, mock := newMock(t)
		userID := uuid.Must(uuid.NewV7())

		mock.ExpectQuery(`SELECT .+ FROM users WHERE id`).
			WithArgs(uuidBytes(t, userID)).
			WillReturnError(sql.ErrNoRows)

		repo := NewMySQLUserRepository(db)
		_, err := repo.GetByID(ctx, userID)
		assert.ErrorIs(t, err, authDomain.ErrUserNotFound)
	})
}

func TestMySQLRevokedTokenRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create_Success", func(t *testing.T) {
		db, mock := newMock(t)
		token := testRevokedToken()

		mock.ExpectExec(`INSERT IGNORE INTO revoked_tokens`).
			WithArgs(uuidBytes(t, token.ID), token.Token, uuidBytes(t, token.UserID), token.RevokedAt, token.ExpiresAt).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMySQLRevokedTokenRepository(db)
		assert.NoError(t, repo.Create(ctx, token))
	})

	t.Run("Exists", func(t *testing.T) {
		db, mock := newMock(t)

		mock.ExpectQuery(`SELECT EXISTS`).
			WithArgs("raw-token").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		repo := NewMySQLRevokedTokenRepository(db)
		exists, err := repo.Exists(ctx, "raw-token")
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
