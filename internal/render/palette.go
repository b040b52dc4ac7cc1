// Package render draws a game.View onto an ebiten image. It never mutates
// the session it is given.
package render

import (
	"image/color"
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	backgroundColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	wallColor        = color.RGBA{A: 255}
	goalFill         = color.RGBA{R: 0x00, G: 0xcc, B: 0x44, A: 255}
	goalOutline      = color.RGBA{R: 0x00, G: 0x88, B: 0x33, A: 255}
	playerFill       = color.RGBA{R: 0xff, G: 0x33, B: 0x33, A: 255}
	playerOutline    = color.RGBA{R: 0xcc, G: 0x00, B: 0x00, A: 255}
	overlayTextColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	rewardTextColor  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

const (
	// spriteScale is the drawn sprite size relative to the entity diameter.
	spriteScale  = 2.5
	outlineWidth = 2

	// overlayAlpha is the final opacity of the win dim.
	overlayAlpha = 0.7
	overlayFade  = 250 * time.Millisecond

	titleText    = "You Won!"
	subtitleText = "Opening your letter..."
	titleSize    = 32
	subtitleSize = 16
	bodySize     = 16
)

// SpriteRect returns the top-left corner and side length of a sprite drawn
// for an entity of radius r centred at (x, y).
func SpriteRect(x, y, r float64) (left, top, side float64) {
	side = r * 2 * spriteScale
	return x - side/2, y - side/2, side
}

// OverlayAlpha is the opacity of the win dim after sinceWin. It eases from
// zero to overlayAlpha over overlayFade.
func OverlayAlpha(sinceWin time.Duration) float32 {
	if sinceWin <= 0 {
		return 0
	}
	tw := gween.New(0, overlayAlpha, float32(overlayFade.Seconds()), ease.OutQuad)
	a, _ := tw.Set(float32(sinceWin.Seconds()))
	return float32(math.Min(float64(a), overlayAlpha))
}

// textAlpha scales the overlay text with the dim so both arrive together.
func textAlpha(dim float32) float32 {
	return dim / overlayAlpha
}
