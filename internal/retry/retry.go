// Package retry implements the exponential-backoff-with-jitter schedule
// and the consecutive-failure ceiling described for both the prediction
// client's connect loop and the capture prediction loop.
package retry

import (
	"context"
	"math/rand"
	"time"
)

// Schedule computes the delay sequence for a retry loop: delay_i =
// min(initialDelay * backoffFactor^i, maxDelay) * jitter, jitter uniform
// in [0.9, 1.1).
type Schedule struct {
	InitialDelay   time.Duration
	BackoffFactor  float64
	MaxDelay       time.Duration
	MaxRetries     int
	PerAttemptTimeout time.Duration
}

// Delay returns the backoff delay before attempt i (0-based, i.e. the
// delay taken after the (i+1)-th failure).
func (s Schedule) Delay(attempt int) time.Duration {
	d := float64(s.InitialDelay)
	for i := 0; i < attempt; i++ {
		d *= s.BackoffFactor
	}
	capped := d
	if max := float64(s.MaxDelay); capped > max {
		capped = max
	}
	jitter := 0.9 + rand.Float64()*0.2
	return time.Duration(capped * jitter)
}

// Do runs fn up to MaxRetries+1 times (the initial attempt plus
// MaxRetries retries), sleeping the schedule's delay between attempts.
// It returns nil on the first success, or the last error once retries
// are exhausted. Context cancellation aborts the wait immediately.
func (s Schedule) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 0; ; attempt++ {
		attemptCtx := ctx
		var cancel context.CancelFunc
		if s.PerAttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(ctx, s.PerAttemptTimeout)
		}
		lastErr = fn(attemptCtx)
		if cancel != nil {
			cancel()
		}
		if lastErr == nil {
			return nil
		}
		if attempt >= s.MaxRetries {
			return lastErr
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.Delay(attempt)):
		}
	}
}

// ConsecutiveFailureTracker implements the per-loop "max consecutive
// failures" ceiling: a successful iteration resets the counter; a
// failed one (after its own internal retries are exhausted) increments
// it, and Fail reports whether the loop must now exit fatally.
type ConsecutiveFailureTracker struct {
	Max     int
	current int
}

func (t *ConsecutiveFailureTracker) Success() {
	t.current = 0
}

// Fail increments the counter and reports whether Max has been reached.
func (t *ConsecutiveFailureTracker) Fail() (exceeded bool) {
	t.current++
	return t.current >= t.Max
}

func (t *ConsecutiveFailureTracker) Count() int {
	return t.current
}
