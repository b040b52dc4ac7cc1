package render

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Fonts holds the faces used for overlay and reward text.
type Fonts struct {
	Title    text.Face
	Subtitle text.Face
	Body     text.Face
}

// LoadFonts parses the embedded Go fonts.
func LoadFonts() (*Fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("bold font: %w", err)
	}
	return &Fonts{
		Title:    &text.GoTextFace{Source: bold, Size: titleSize},
		Subtitle: &text.GoTextFace{Source: regular, Size: subtitleSize},
		Body:     &text.GoTextFace{Source: regular, Size: bodySize},
	}, nil
}
