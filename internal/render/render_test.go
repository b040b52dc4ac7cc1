package render

import (
	"math"
	"testing"
	"time"
)

func TestSpriteRect(t *testing.T) {
	left, top, side := SpriteRect(48, 48, 6)
	if side != 30 {
		t.Fatalf("side = %v, want 30 (6·2·2.5)", side)
	}
	if left != 33 || top != 33 {
		t.Fatalf("corner = (%v,%v), want (33,33)", left, top)
	}
}

func TestOverlayAlpha(t *testing.T) {
	if a := OverlayAlpha(0); a != 0 {
		t.Fatalf("alpha at win = %v, want 0", a)
	}
	mid := OverlayAlpha(overlayFade / 2)
	if mid <= 0 || mid >= overlayAlpha {
		t.Fatalf("alpha mid-fade = %v, want in (0, %v)", mid, overlayAlpha)
	}
	prev := float32(0)
	for d := time.Duration(0); d <= overlayFade; d += 10 * time.Millisecond {
		a := OverlayAlpha(d)
		if a < prev {
			t.Fatalf("alpha decreased at %v: %v < %v", d, a, prev)
		}
		prev = a
	}
	for _, d := range []time.Duration{overlayFade, time.Second, time.Hour} {
		if a := OverlayAlpha(d); math.Abs(float64(a)-overlayAlpha) > 1e-6 {
			t.Fatalf("alpha after %v = %v, want %v", d, a, overlayAlpha)
		}
	}
}

func TestTextAlphaTracksDim(t *testing.T) {
	if a := textAlpha(overlayAlpha); math.Abs(float64(a)-1) > 1e-6 {
		t.Fatalf("text alpha at full dim = %v, want 1", a)
	}
	if a := textAlpha(0); a != 0 {
		t.Fatalf("text alpha at no dim = %v, want 0", a)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		cols int
		want string
	}{
		{"fits", "dear you", 20, "dear you"},
		{"wraps", "one two three four", 9, "one two\nthree\nfour"},
		{"keeps newlines", "hi\n\nbye now", 4, "hi\n\nbye\nnow"},
		{"long word", "supercalifragilistic ok", 5, "supercalifragilistic\nok"},
		{"no limit", "a b", 0, "a b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WrapText(tt.in, tt.cols); got != tt.want {
				t.Fatalf("WrapText(%q, %d) = %q, want %q", tt.in, tt.cols, got, tt.want)
			}
		})
	}
}

func TestSpriteNilIsMissing(t *testing.T) {
	var s *Sprite
	if s.Image() != nil {
		t.Fatal("nil sprite should have no image")
	}
	if NewSprite(nil).Image() != nil {
		t.Fatal("sprite with nil handle should have no image")
	}
}
