package timer

import (
	"context"
	"errors"
	"time"
)

// ErrInterrupted is returned when a pause ends before its full duration.
var ErrInterrupted = errors.New("pause interrupted")

// Pause blocks for d or until ctx is done, whichever comes first.
// Callers treat ErrInterrupted as best effort: log it and carry on.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer stopTimer(t)
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ErrInterrupted
	}
}

// Stops the timer and drains it.
func stopTimer(t *time.Timer) {
	if !t.Stop() {
		select {
		case <-t.C:
		default:
		}
	}
}

// Ticker calls fn every interval until ctx is done or fn returns false.
func Ticker(ctx context.Context, interval time.Duration, fn func() bool) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-t.C:
			if !fn() {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
