// Package audio plays the looping background track. Every failure here is
// logged and swallowed; the game runs silently without it.
package audio

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Track is a looping, pausable stream.
type Track interface {
	Play() error
	IsPlaying() bool
	SetVolume(v float64)
	Close() error
}

// Opener opens the track. It is called at most once per Background.
type Opener func() (Track, error)

// ErrDisabled is returned by Disabled.
var ErrDisabled = errors.New("audio disabled")

// Disabled is an Opener for when audio is switched off in the config.
func Disabled() (Track, error) { return nil, ErrDisabled }

// Background starts and resumes the track. Safe for concurrent use; the
// ebiten frontend calls it from Update and the terminal frontend from its
// event goroutine.
type Background struct {
	mu     sync.Mutex
	open   Opener
	volume float64
	track  Track
	opened bool
	logger log.FieldLogger
}

// NewBackground prepares a controller; nothing is opened until Start.
func NewBackground(open Opener, volume float64, logger log.FieldLogger) *Background {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Background{open: open, volume: volume, logger: logger}
}

// Start attempts autoplay.
func (b *Background) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ensureOpen() {
		return
	}
	if err := b.track.Play(); err != nil {
		b.logger.WithError(err).Info("audio autoplay prevented")
	}
}

// Resume plays the track again if it is paused, e.g. after returning from
// the reward screen.
func (b *Background) Resume() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.ensureOpen() || b.track.IsPlaying() {
		return
	}
	if err := b.track.Play(); err != nil {
		b.logger.WithError(err).Info("could not resume audio")
	}
}

// Playing reports whether the track is currently playing.
func (b *Background) Playing() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.track != nil && b.track.IsPlaying()
}

// Close releases the track.
func (b *Background) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.track == nil {
		return
	}
	if err := b.track.Close(); err != nil {
		b.logger.WithError(err).Debug("audio close")
	}
	b.track = nil
}

// ensureOpen opens the track on first use. A failed open is not retried.
func (b *Background) ensureOpen() bool {
	if b.opened {
		return b.track != nil
	}
	b.opened = true
	t, err := b.open()
	if err != nil {
		if errors.Is(err, ErrDisabled) {
			b.logger.Debug("audio disabled")
		} else {
			b.logger.WithError(err).Warn("background music unavailable")
		}
		return false
	}
	t.SetVolume(b.volume)
	b.track = t
	return true
}
