package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/employee-api/internal/auth/domain"
	"github.com/allisson/employee-api/internal/metrics"
)

// authUseCaseWithMetrics decorates AuthUseCase with metrics instrumentation.
type authUseCaseWithMetrics struct {
	next    AuthUseCase
	metrics metrics.BusinessMetrics
}

// NewAuthUseCaseWithMetrics wraps an AuthUseCase with metrics recording.
func NewAuthUseCaseWithMetrics(useCase AuthUseCase, m metrics.BusinessMetrics) AuthUseCase {
	return &authUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// record reports the operation outcome and duration.
func (a *authUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	a.metrics.RecordOperation(ctx, "auth", operation, status)
	a.metrics.RecordDuration(ctx, "auth", operation, time.Since(start), status)
}

// Register records metrics for registration operations.
func (a *authUseCaseWithMetrics) Register(ctx context.Context, input RegisterInput) (*authDomain.User, error) {
	start := time.Now()
	user, err := a.next.Register(ctx, input)
	a.record(ctx, "register", start, err)
	return user, err
}

// Login records metrics for login operations.
func (a *authUseCaseWithMetrics) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	start := time.Now()
	output, err := a.next.Login(ctx, input)
	a.record(ctx, "login", start, err)
	return output, err
}

// Logout records metrics for logout operations.
func (a *authUseCaseWithMetrics) Logout(ctx context.Context, rawToken string, userID uuid.UUID) error {
	start := time.Now()
	err := a.next.Logout(ctx, rawToken, userID)
	a.record(ctx, "logout", start, err)
	return err
}

// Authenticate records metrics for per-request token authentication.
func (a *authUseCaseWithMetrics) Authenticate(ctx context.Context, rawToken string) (*authDomain.User, error) {
	start := time.Now()
	user, err := a.next.Authenticate(ctx, rawToken)
	a.record(ctx, "authenticate", start, err)
	return user, err
}

// CleanExpiredTokens records metrics for denylist compaction runs.
func (a *authUseCaseWithMetrics) CleanExpiredTokens(ctx context.Context) (int64, error) {
	start := time.Now()
	count, err := a.next.CleanExpiredTokens(ctx)
	a.record(ctx, "clean_expired_tokens", start, err)
	return count, err
}
