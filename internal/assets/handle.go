// Package assets loads optional resources in the background. Renderers poll
// a Handle every frame and fall back to procedural drawing until it reports
// Loaded.
package assets

import (
	"context"
	"fmt"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
)

// Status is the load state of a Handle.
type Status int32

const (
	Pending Status = iota
	Loaded
	Failed
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Loaded:
		return "loaded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", int32(s))
	}
}

// Handle is the result of an asynchronous load. The value and error are
// written once, before the status leaves Pending.
type Handle[T any] struct {
	name   string
	status atomic.Int32
	value  T
	err    error
	done   chan struct{}
}

// Loader produces an asset value.
type Loader[T any] func(ctx context.Context) (T, error)

// Load starts load in its own goroutine and returns immediately.
func Load[T any](ctx context.Context, name string, load Loader[T]) *Handle[T] {
	h := &Handle[T]{name: name, done: make(chan struct{})}
	go func() {
		defer close(h.done)
		v, err := load(ctx)
		if err != nil {
			h.err = err
			h.status.Store(int32(Failed))
			log.WithError(err).WithField("asset", name).Warn("asset unavailable, using fallback")
			return
		}
		h.value = v
		h.status.Store(int32(Loaded))
		log.WithField("asset", name).Debug("asset loaded")
	}()
	return h
}

// Ready returns a handle that is already loaded.
func Ready[T any](name string, v T) *Handle[T] {
	h := &Handle[T]{name: name, value: v, done: make(chan struct{})}
	h.status.Store(int32(Loaded))
	close(h.done)
	return h
}

// Name returns the name the handle was created with.
func (h *Handle[T]) Name() string { return h.name }

// Status returns the current load state without blocking.
func (h *Handle[T]) Status() Status {
	if h == nil {
		return Failed
	}
	return Status(h.status.Load())
}

// Poll returns the value and true once loaded; the zero value and false
// otherwise. A nil handle is never loaded.
func (h *Handle[T]) Poll() (T, bool) {
	var zero T
	if h.Status() != Loaded {
		return zero, false
	}
	return h.value, true
}

// Err returns the load error once the handle has Failed.
func (h *Handle[T]) Err() error {
	if h.Status() != Failed {
		return nil
	}
	return h.err
}

// Wait blocks until the load finishes or ctx ends.
func (h *Handle[T]) Wait(ctx context.Context) (T, error) {
	var zero T
	select {
	case <-h.done:
		if h.Status() == Failed {
			return zero, h.err
		}
		return h.value, nil
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
