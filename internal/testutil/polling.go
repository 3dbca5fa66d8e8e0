// Package testutil provides shared helpers for tests that drive trees on
// real goroutines: polling with bounded timeouts, timing constants and
// traceable run IDs.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// Poll checks condition every interval until it is true, timeout expires or
// ctx is done.
func Poll(ctx context.Context, condition func() bool, timeout, interval time.Duration) error {
	_, err := WaitForState(ctx, condition, func(ok bool) bool { return ok }, timeout, interval)
	return err
}

// WaitForState calls getter every interval until predicate accepts its
// result, timeout expires or ctx is done. It returns the accepted value.
//
// Example usage:
//
//	ticks, err := WaitForState(ctx, runner.Ticks,
//		func(n int) bool { return n >= 3 },
//		RunTimeout,
//		PollInterval)
func WaitForState[T any](ctx context.Context, getter func() T, predicate func(T) bool, timeout, interval time.Duration) (T, error) {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	tick := time.NewTicker(interval)
	defer tick.Stop()

	for {
		state := getter()
		if predicate(state) {
			return state, nil
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		case <-deadline.C:
			var zero T
			return zero, fmt.Errorf("timeout waiting for target state (type %T, threshold: %v)", state, timeout)
		case <-tick.C:
		}
	}
}

// WithTimeout returns a context that is cancelled after timeout or when tb
// finishes, whichever comes first.
func WithTimeout(tb testing.TB, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(tb.Context(), timeout)
}
