package game

import "time"

// Clock returns the current time. Sessions take one so tests can drive time.
type Clock func() time.Time

// Deferred is a one-shot action that fires on the first Poll at or after its
// due time. It is polled from the frame loop, so the action runs on the
// simulation goroutine.
type Deferred struct {
	due       time.Time
	fn        func()
	fired     bool
	cancelled bool
}

// NewDeferred schedules fn to run delay after now.
func NewDeferred(now time.Time, delay time.Duration, fn func()) *Deferred {
	return &Deferred{due: now.Add(delay), fn: fn}
}

// Poll runs the action if it is due and has not run or been cancelled.
// It reports whether the action ran during this call.
func (d *Deferred) Poll(now time.Time) bool {
	if d == nil || d.fired || d.cancelled || now.Before(d.due) {
		return false
	}
	d.fired = true
	if d.fn != nil {
		d.fn()
	}
	return true
}

// Cancel prevents a pending action from running.
func (d *Deferred) Cancel() {
	if d != nil && !d.fired {
		d.cancelled = true
	}
}

// Pending reports whether the action is still waiting to fire.
func (d *Deferred) Pending() bool {
	return d != nil && !d.fired && !d.cancelled
}

// Fired reports whether the action has run.
func (d *Deferred) Fired() bool { return d != nil && d.fired }
