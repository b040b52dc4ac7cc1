package game

import (
	"context"
	"time"
)

// Scheduler invokes frame once per display refresh until frame returns
// false, the context ends, or the scheduler runs out of frames.
type Scheduler interface {
	Run(ctx context.Context, frame func() bool) error
}

// Loop runs step then render once per scheduled frame. step returning false
// stops the loop after that frame is rendered.
func Loop(ctx context.Context, sched Scheduler, step func() bool, render func()) error {
	return sched.Run(ctx, func() bool {
		more := step()
		if render != nil {
			render()
		}
		return more
	})
}

// FrameScheduler runs a fixed number of frames back to back. Used by
// headless runs and tests.
type FrameScheduler struct {
	Frames int
}

func (fs FrameScheduler) Run(ctx context.Context, frame func() bool) error {
	for i := 0; i < fs.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !frame() {
			return nil
		}
	}
	return nil
}

// TickerScheduler runs one frame per tick of Period.
type TickerScheduler struct {
	Period time.Duration
}

// DefaultFramePeriod is roughly 60 frames per second.
const DefaultFramePeriod = 16 * time.Millisecond

func (ts TickerScheduler) Run(ctx context.Context, frame func() bool) error {
	period := ts.Period
	if period <= 0 {
		period = DefaultFramePeriod
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !frame() {
				return nil
			}
		}
	}
}
