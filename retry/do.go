package retry

import (
	"context"
	"fmt"
)

// Do calls fn until it succeeds, the retrier from ctx declines to retry, or
// the maximum number of attempts is reached. Errors the retrier declines are
// returned unchanged; exhausting the attempts wraps the last error.
func Do[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	var zero T
	retrier := FromContextOrNoop(ctx)
	maxAttempts := retrier.MaxAttempts()

	var lastErr error
	for attempt := 1; maxAttempts <= 0 || attempt <= maxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retrier.ShouldRetry(err, attempt) {
			return zero, err
		}

		if maxAttempts > 0 && attempt >= maxAttempts {
			break
		}

		if waitErr := retrier.Wait(ctx, attempt); waitErr != nil {
			return zero, fmt.Errorf("context cancelled during retry wait: %w", waitErr)
		}
	}

	return zero, fmt.Errorf("max retry attempts (%d) reached: %w", maxAttempts, lastErr)
}

// DoVoid is Do for functions that only return an error.
func DoVoid(ctx context.Context, fn func() error) error {
	_, err := Do(ctx, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}
