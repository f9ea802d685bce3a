package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithTx(t *testing.T) {
	t.Run("commit on success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE employees").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		manager := NewTxManager(db)
		err = manager.WithTx(context.Background(), func(ctx context.Context) error {
			querier := GetTx(ctx, db)
			_, execErr := querier.ExecContext(ctx, "UPDATE employees SET status = 'active'")
			return execErr
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		manager := NewTxManager(db)
		expectedErr := errors.New("boom")
		err = manager.WithTx(context.Background(), func(ctx context.Context) error {
			return expectedErr
		})

		assert.ErrorIs(t, err, expectedErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetTx(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Run("returns db when no transaction in context", func(t *testing.T) {
		querier := GetTx(context.Background(), db)
		assert.Equal(t, db, querier)
	})
}
