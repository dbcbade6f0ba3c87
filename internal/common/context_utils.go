package common

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CheckCancellationWithLog reports whether ctx is done and logs it once if so.
func CheckCancellationWithLog(ctx context.Context, logger zerolog.Logger, operation string) bool {
	select {
	case <-ctx.Done():
		logger.Info().Str("operation", operation).Msg("Context cancelled")
		return true
	default:
		return false
	}
}

// WaitWithCancellation waits for a duration or until context is cancelled.
// A non-positive duration only checks ctx.
func WaitWithCancellation(ctx context.Context, duration time.Duration) error {
	if duration <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(duration)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
