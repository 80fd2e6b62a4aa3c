package engine

import (
	"context"
	"time"
)

// Sleeper paces the game between ticks. An interrupted sleep simply
// returns early; the tick that follows runs as usual.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration)
}

// SleeperFunc adapts a function to the Sleeper interface.
type SleeperFunc func(ctx context.Context, d time.Duration)

// Sleep implements Sleeper.
func (f SleeperFunc) Sleep(ctx context.Context, d time.Duration) {
	f(ctx, d)
}

// NoDelay is a Sleeper that returns immediately.
var NoDelay Sleeper = SleeperFunc(func(context.Context, time.Duration) {})

// TimerSleeper waits on a timer, returning early if ctx is done.
type TimerSleeper struct{}

// Sleep implements Sleeper.
func (TimerSleeper) Sleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
