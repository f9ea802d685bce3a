package usecase

import (
	"context"
	"log/slog"
	"time"
)

// TokenReaper periodically purges expired entries from the token denylist.
// It is owned by the process supervisor: started after the stores are
// initialized and stopped via context cancellation on shutdown. A failed run
// is logged and retried on the next tick; it is never fatal.
type TokenReaper struct {
	interval    time.Duration
	authUseCase AuthUseCase
	logger      *slog.Logger
}

// NewTokenReaper creates a TokenReaper running at the given interval.
func NewTokenReaper(interval time.Duration, authUseCase AuthUseCase, logger *slog.Logger) *TokenReaper {
	return &TokenReaper{
		interval:    interval,
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Start runs the reaper loop until the context is cancelled.
func (r *TokenReaper) Start(ctx context.Context) error {
	r.logger.Info("starting token reaper",
		slog.Duration("interval", r.interval),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("stopping token reaper")
			return ctx.Err()
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

// runOnce executes a single cleanup pass.
func (r *TokenReaper) runOnce(ctx context.Context) {
	count, err := r.authUseCase.CleanExpiredTokens(ctx)
	if err != nil {
		r.logger.Error("failed to clean expired tokens", slog.Any("error", err))
		return
	}

	if count > 0 {
		r.logger.Info("cleaned expired tokens", slog.Int64("count", count))
	}
}
