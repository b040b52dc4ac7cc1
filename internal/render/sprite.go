package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Letter-Maze/internal/assets"
)

// Sprite converts a loaded image to an ebiten image on first use. Until the
// handle is loaded, and forever if it failed, Image returns nil and callers
// draw the fallback shape.
type Sprite struct {
	handle *assets.Handle[image.Image]
	img    *ebiten.Image
}

// NewSprite wraps h. A nil handle is a permanently missing sprite.
func NewSprite(h *assets.Handle[image.Image]) *Sprite {
	return &Sprite{handle: h}
}

// Image returns the ebiten image, or nil if the asset is not usable yet.
func (s *Sprite) Image() *ebiten.Image {
	if s == nil {
		return nil
	}
	if s.img != nil {
		return s.img
	}
	src, ok := s.handle.Poll()
	if !ok {
		return nil
	}
	s.img = ebiten.NewImageFromImage(src)
	return s.img
}
