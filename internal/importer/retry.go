package importer

import (
	"context"
	"fmt"
	"time"
)

// withRetry runs fn up to attempts times, doubling the delay between
// attempts starting from baseDelay. It stops early when the context is
// cancelled. The upload step is the only caller; matching and upserts are
// not retried.
func withRetry(ctx context.Context, attempts int, baseDelay time.Duration, fn func(context.Context) error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	delay := baseDelay
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(ctx); err == nil {
			return nil
		}
		if attempt == attempts {
			break
		}
		if delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
			delay *= 2
		} else if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	if attempts == 1 {
		return err
	}
	return fmt.Errorf("after %d attempts: %w", attempts, err)
}
