package providers

import (
	"context"
	"time"
)

// retryBase is the first back-off delay; it doubles per attempt.
var retryBase = time.Second

// retryWithBackoff runs fn once, then up to maxRetries more times while the
// error is a rate limit or server error.
func retryWithBackoff(ctx context.Context, maxRetries int, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}
		if attempt < maxRetries {
			backoff := retryBase << uint(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
