// Package stream emits snapshots at a fixed pace.
package stream

import (
	"context"
	"time"
)

// Paced returns a channel that yields items one by one, waiting interval
// before each of them. The channel is closed after the last item or as soon
// as ctx is done, whichever comes first; the producing goroutine never
// outlives ctx.
func Paced[T any](ctx context.Context, items []T, interval time.Duration) <-chan T {
	out := make(chan T)

	go func() {
		defer close(out)

		for _, item := range items {
			if !wait(ctx, interval) {
				return
			}

			select {
			case out <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func wait(ctx context.Context, interval time.Duration) bool {
	if interval <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
