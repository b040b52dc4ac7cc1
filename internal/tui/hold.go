// Package tui is the terminal frontend. It draws the maze with tcell and
// feeds key events into the same session the desktop frontend uses.
package tui

import (
	"time"

	"github.com/Garsondee/Letter-Maze/internal/game"
)

// HoldTracker turns key presses into held keys. Terminals report presses and
// auto-repeats but never releases, so a direction counts as held for window
// after its most recent press.
type HoldTracker struct {
	window time.Duration
	last   [4]time.Time
}

// NewHoldTracker returns a tracker with the given hold window.
func NewHoldTracker(window time.Duration) *HoldTracker {
	return &HoldTracker{window: window}
}

// Press records a press or repeat of d at now.
func (h *HoldTracker) Press(d game.Direction, now time.Time) {
	if int(d) < len(h.last) {
		h.last[d] = now
	}
}

// Held returns the directions pressed within the window ending at now.
func (h *HoldTracker) Held(now time.Time) game.KeySet {
	var ks game.KeySet
	for d, t := range h.last {
		if !t.IsZero() && now.Sub(t) < h.window {
			ks = ks.With(game.Direction(d))
		}
	}
	return ks
}

// Reset forgets every press.
func (h *HoldTracker) Reset() { h.last = [4]time.Time{} }
