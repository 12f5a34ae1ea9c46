// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Wait blocks for d, until wake receives, or until ctx is done. It reports whether it
// returned early because of wake. A nil wake channel never fires.
func Wait(ctx context.Context, d time.Duration, wake <-chan struct{}) (bool, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case <-wake:
		return true, nil
	case <-timer.C:
		return false, nil
	}
}

// Notify performs a non-blocking send on a wake channel. Pending wakes are coalesced.
func Notify(wake chan<- struct{}) {
	select {
	case wake <- struct{}{}:
	default:
	}
}
