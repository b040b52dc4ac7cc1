package game

import (
	"testing"
	"time"
)

func TestDeferred_FiresOnceWhenDue(t *testing.T) {
	t0 := time.Unix(0, 0)
	calls := 0
	d := NewDeferred(t0, time.Second, func() { calls++ })

	if d.Poll(t0.Add(999 * time.Millisecond)) {
		t.Fatal("fired before due")
	}
	if !d.Poll(t0.Add(time.Second)) {
		t.Fatal("should fire exactly at due time")
	}
	if d.Poll(t0.Add(2 * time.Second)) {
		t.Fatal("fired twice")
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
	if d.Pending() || !d.Fired() {
		t.Fatal("state should be fired, not pending")
	}
}

func TestDeferred_Cancel(t *testing.T) {
	t0 := time.Unix(0, 0)
	d := NewDeferred(t0, time.Millisecond, func() { t.Fatal("cancelled action ran") })
	d.Cancel()
	if d.Poll(t0.Add(time.Hour)) {
		t.Fatal("cancelled action reported as fired")
	}
	if d.Pending() {
		t.Fatal("cancelled action still pending")
	}
}

func TestDeferred_NilIsInert(t *testing.T) {
	var d *Deferred
	if d.Poll(time.Now()) || d.Pending() || d.Fired() {
		t.Fatal("nil deferred should do nothing")
	}
	d.Cancel()
}
