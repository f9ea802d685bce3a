package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
)

// mockAuthUseCase is a mock implementation of AuthUseCase for testing.
type mockAuthUseCase struct {
	mock.Mock
}

func (m *mockAuthUseCase) Register(ctx context.Context, input RegisterInput) (*authDomain.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func (m *mockAuthUseCase) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*LoginOutput), args.Error(1)
}

func (m *mockAuthUseCase) Logout(ctx context.Context, rawToken string, userID uuid.UUID) error {
	args := m.Called(ctx, rawToken, userID)
	return args.Error(0)
}

func (m *mockAuthUseCase) Authenticate(ctx context.Context, rawToken string) (*authDomain.User, error) {
	args := m.Called(ctx, rawToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*authDomain.User), args.Error(1)
}

func (m *mockAuthUseCase) CleanExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestTokenReaper(t *testing.T) {
	defer goleak.VerifyNone(t)

	t.Run("RunsCleanupOnEachTick", func(t *testing.T) {
		authUC := &mockAuthUseCase{}

		done := make(chan struct{})
		authUC.On("CleanExpiredTokens", mock.Anything).Return(int64(2), nil).Run(func(args mock.Arguments) {
			select {
			case done <- struct{}{}:
			default:
			}
		})

		reaper := NewTokenReaper(5*time.Millisecond, authUC, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan error, 1)
		go func() {
			stopped <- reaper.Start(ctx)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("reaper never ran a cleanup pass")
		}

		cancel()
		select {
		case err := <-stopped:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("reaper did not stop after context cancellation")
		}
	})

	t.Run("SurvivesCleanupFailure", func(t *testing.T) {
		authUC := &mockAuthUseCase{}

		calls := make(chan struct{}, 4)
		authUC.On("CleanExpiredTokens", mock.Anything).
			Return(int64(0), assert.AnError).
			Run(func(args mock.Arguments) {
				select {
				case calls <- struct{}{}:
				default:
				}
			})

		reaper := NewTokenReaper(5*time.Millisecond, authUC, discardLogger())

		ctx, cancel := context.WithCancel(context.Background())
		stopped := make(chan error, 1)
		go func() {
			stopped <- reaper.Start(ctx)
		}()

		// The loop must keep ticking after a failed pass
		for range 2 {
			select {
			case <-calls:
			case <-time.After(time.Second):
				t.Fatal("reaper stopped ticking after a failure")
			}
		}

		cancel()
		select {
		case err := <-stopped:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("reaper did not stop after context cancellation")
		}
	})
}
