package application

import (
	"context"
	"time"
)

// Clock interface supaya gampang ditest
type Clock interface {
	Now() time.Time
}

// SystemClock implementasi default, pakai time.Now()
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Delayer suspends the caller for a cosmetic delay. Implementations must
// return early with ctx.Err() when ctx is done.
type Delayer interface {
	Wait(ctx context.Context, d time.Duration) error
}

// SleepDelayer waits in real time.
type SleepDelayer struct{}

func (SleepDelayer) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay skips the wait entirely, for tests and headless callers.
type NoDelay struct{}

func (NoDelay) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
