// Package retry provides a small generic retry helper with exponential
// backoff, used for the hosted inference calls.
package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy controls retry behavior.
type Policy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	OnRetry        func(attempt int, err error, backoff time.Duration)
}

// Operation is a retryable operation returning a value.
type Operation[T any] func() (T, error)

// Do runs op up to p.MaxAttempts times, doubling the backoff after each
// failure. The context cancels waiting between attempts, not a running op;
// operations carry their own deadline.
func Do[T any](ctx context.Context, p Policy, op Operation[T]) (T, error) {
	backoff := p.InitialBackoff

	for attempt := 1; ; attempt++ {
		val, err := op()
		if err == nil {
			return val, nil
		}

		if attempt == p.MaxAttempts {
			var zero T
			return zero, fmt.Errorf("failed after %d attempts: %w", p.MaxAttempts, err)
		}

		if p.OnRetry != nil {
			p.OnRetry(attempt, err, backoff)
		}

		select {
		case <-time.After(backoff):
			backoff *= 2
		case <-ctx.Done():
			var zero T
			return zero, fmt.Errorf("context cancelled during retry: %w", ctx.Err())
		}
	}
}
