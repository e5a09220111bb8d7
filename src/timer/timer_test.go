package timer

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestPauseCompletes(t *testing.T) {
	start := time.Now()
	if err := Pause(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("Pause() error = %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("Pause returned after %v, expected at least 20ms", elapsed)
	}
}

func TestPauseInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	start := time.Now()
	err := Pause(ctx, 5*time.Second)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("Pause() error = %v, expected ErrInterrupted", err)
	}
	if time.Since(start) > time.Second {
		t.Error("Pause did not return promptly after cancellation")
	}
}

func TestPauseZero(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Pause(ctx, 0); err != nil {
		t.Errorf("zero pause should never be interrupted, got %v", err)
	}
}

func TestTickerStopsWhenFnReturnsFalse(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	calls := 0
	Ticker(ctx, time.Millisecond, func() bool {
		calls++
		return calls < 3
	})
	if calls != 3 {
		t.Errorf("fn called %d times, expected 3", calls)
	}
}
