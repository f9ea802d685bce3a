package commands

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	authMocks "github.com/allisson/employee-api/internal/auth/http/mocks"
)

func TestRunCleanExpiredTokens(t *testing.T) {
	ctx := context.Background()
	logger := slog.Default()

	t.Run("text-output", func(t *testing.T) {
		mockUseCase := &authMocks.MockAuthUseCase{}
		mockUseCase.On("CleanExpiredTokens", ctx).Return(int64(10), nil)

		var out bytes.Buffer
		err := RunCleanExpiredTokens(ctx, mockUseCase, logger, &out, "text")

		require.NoError(t, err)
		require.Contains(t, out.String(), "Successfully deleted 10 expired token(s)")
		mockUseCase.AssertExpectations(t)
	})

	t.Run("json-output", func(t *testing.T) {
		mockUseCase := &authMocks.MockAuthUseCase{}
		mockUseCase.On("CleanExpiredTokens", ctx).Return(int64(5), nil)

		var out bytes.Buffer
		err := RunCleanExpiredTokens(ctx, mockUseCase, logger, &out, "json")

		require.NoError(t, err)
		require.Contains(t, out.String(), `"count": 5`)
		mockUseCase.AssertExpectations(t)
	})

	t.Run("usecase-error", func(t *testing.T) {
		mockUseCase := &authMocks.MockAuthUseCase{}
		mockUseCase.On("CleanExpiredTokens", ctx).Return(int64(0), context.DeadlineExceeded)

		err := RunCleanExpiredTokens(ctx, mockUseCase, logger, &bytes.Buffer{}, "text")

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to clean expired tokens")
	})
}
