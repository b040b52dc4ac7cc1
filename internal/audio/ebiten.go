package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is used for the ebiten audio context.
const SampleRate = 48000

type decodedStream interface {
	io.ReadSeeker
	Length() int64
}

// decode picks a decoder by file extension.
func decode(path string, data []byte) (decodedStream, error) {
	r := bytes.NewReader(data)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.DecodeWithSampleRate(SampleRate, r)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(SampleRate, r)
	case ".mp3":
		return mp3.DecodeWithSampleRate(SampleRate, r)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
}

// EbitenFile returns an Opener that loops the file at path through ctx.
func EbitenFile(ctx *audio.Context, path string) Opener {
	return func() (Track, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		s, err := decode(path, data)
		if err != nil {
			return nil, err
		}
		p, err := ctx.NewPlayer(audio.NewInfiniteLoop(s, s.Length()))
		if err != nil {
			return nil, err
		}
		return &ebitenTrack{player: p}, nil
	}
}

type ebitenTrack struct {
	player *audio.Player
}

func (t *ebitenTrack) Play() error {
	t.player.Play()
	return nil
}

func (t *ebitenTrack) IsPlaying() bool     { return t.player.IsPlaying() }
func (t *ebitenTrack) SetVolume(v float64) { t.player.SetVolume(v) }
func (t *ebitenTrack) Close() error        { return t.player.Close() }
