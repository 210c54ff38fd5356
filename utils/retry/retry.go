package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	cerr "github.com/muhammadheryan/stock-ledger/utils/errors"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	"github.com/muhammadheryan/stock-ledger/utils/metrics"
	"go.uber.org/zap"
)

type Policy struct {
	MaxRetries     int
	BaseDelay      time.Duration
	MaxDelay       time.Duration
	AttemptTimeout time.Duration
}

// OnConflict runs fn until it succeeds, fails with an error that is not lock
// contention, or MaxRetries retries have been spent. Every attempt runs under its
// own AttemptTimeout so a blocked lock wait cannot hang the caller.
func OnConflict(ctx context.Context, p Policy, operation string, fn func(ctx context.Context) error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = p.BaseDelay
	eb.MaxInterval = p.MaxDelay
	eb.MaxElapsedTime = 0

	maxRetries := p.MaxRetries
	if maxRetries < 0 {
		maxRetries = 0
	}
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(maxRetries)), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := runAttempt(ctx, p.AttemptTimeout, fn)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil || !cerr.IsConflict(err) {
			return backoff.Permanent(err)
		}
		metrics.ConflictRetries.WithLabelValues(operation).Inc()
		logger.Warn("[retry] lock conflict", zap.String("operation", operation), zap.Int("attempt", attempt), zap.String("error", err.Error()))
		return err
	}, b)
}

func runAttempt(ctx context.Context, timeout time.Duration, fn func(ctx context.Context) error) error {
	if timeout <= 0 {
		return fn(ctx)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(attemptCtx)
}
