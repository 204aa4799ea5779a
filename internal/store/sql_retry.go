package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay  = 50 * time.Millisecond
	retryMaxRetries = 3
)

// withRetry runs fn and repeats it with exponential backoff while the
// classifier reports the error as [Retryable]. Only idempotent reads go
// through here.
func withRetry[T any](ctx context.Context, classifier ErrorClassificator, fn func() (T, error)) (T, error) {
	var res T

	backoff := retry.WithMaxRetries(retryMaxRetries, retry.NewExponential(retryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		res, err = fn()
		if err != nil && classifier != nil && classifier.Classify(err) == Retryable {
			return retry.RetryableError(err)
		}
		return err
	})

	return res, err
}
