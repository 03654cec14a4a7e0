package batch

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/readmode"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is called before each retry with the attempt number about to
// run (starting at 2) and the error that caused it.
type RetryFunc func(url string, attempt int, err error)

// DefaultRetryDelays returns the backoff delays for fetch retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether a fetch error is worth another attempt.
// Caller errors and missing pages are final.
func Retryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	switch readmode.ErrorCode(err) {
	case readmode.EINVALID, readmode.ENOTFOUND, readmode.EMALFORMED:
		return false
	}
	return true
}

// FetchWithRetry calls fetch until it succeeds, returns a final error, or
// the delays run out. len(delays)+1 attempts are made at most.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, delays []time.Duration, onRetry RetryFunc) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if !Retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		if onRetry != nil {
			onRetry(url, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
