package audio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat is returned for track files no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

var speakerOnce struct {
	sync.Once
	err error
}

// BeepFile returns an Opener that loops a WAV file through the system
// speaker. Used by the terminal frontend, which has no ebiten context.
func BeepFile(path string) Opener {
	return func() (Track, error) {
		if strings.ToLower(filepath.Ext(path)) != ".wav" {
			return nil, ErrUnsupportedFormat
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		streamer, format, err := wav.Decode(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		speakerOnce.Do(func() {
			speakerOnce.err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10))
		})
		if speakerOnce.err != nil {
			streamer.Close()
			return nil, speakerOnce.err
		}
		ctrl := &beep.Ctrl{Streamer: beep.Loop(-1, streamer), Paused: true}
		vol := &effects.Volume{Streamer: ctrl, Base: 2}
		speaker.Play(vol)
		return &beepTrack{ctrl: ctrl, vol: vol, src: streamer}, nil
	}
}

type beepTrack struct {
	ctrl *beep.Ctrl
	vol  *effects.Volume
	src  beep.StreamSeekCloser
}

func (t *beepTrack) Play() error {
	speaker.Lock()
	t.ctrl.Paused = false
	speaker.Unlock()
	return nil
}

func (t *beepTrack) IsPlaying() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return !t.ctrl.Paused
}

// SetVolume maps a linear 0-1 gain onto beep's logarithmic volume.
func (t *beepTrack) SetVolume(v float64) {
	speaker.Lock()
	defer speaker.Unlock()
	if v <= 0 {
		t.vol.Silent = true
		return
	}
	t.vol.Silent = false
	t.vol.Volume = math.Log2(v)
}

func (t *beepTrack) Close() error {
	speaker.Lock()
	t.ctrl.Paused = true
	t.ctrl.Streamer = nil
	speaker.Unlock()
	return t.src.Close()
}
