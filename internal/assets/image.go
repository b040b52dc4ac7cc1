package assets

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // decoder registration
	_ "image/png"  // decoder registration
	"os"
)

// ImageFile returns a Loader that decodes the image at path.
func ImageFile(path string) Loader[image.Image] {
	return func(ctx context.Context) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		img, _, err := image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		return img, nil
	}
}

// LoadImage starts decoding path in the background. An empty path yields a
// handle that fails immediately.
func LoadImage(ctx context.Context, path string) *Handle[image.Image] {
	if path == "" {
		return Load(ctx, "(none)", func(context.Context) (image.Image, error) {
			return nil, ErrNoPath
		})
	}
	return Load(ctx, path, ImageFile(path))
}
