package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/gift"
)

const (
	MaxWidth    = 1600
	MaxHeight   = 1600
	JPEGQuality = 90
)

var ErrEmptyImage = errors.New("imaging: empty image data")

// Fit is a pure transform: decode the input bytes, downscale so the
// image fits within maxW x maxH preserving aspect ratio, and re-encode
// as JPEG. Images already within bounds are re-encoded but never
// upscaled. It touches no global state and needs no rendering surface.
func Fit(data []byte, maxW, maxH int) ([]byte, error) {
	if len(data) == 0 {
		return nil, ErrEmptyImage
	}
	if maxW <= 0 || maxH <= 0 {
		return nil, fmt.Errorf("imaging: invalid bounds %dx%d", maxW, maxH)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("imaging: decode: %w", err)
	}

	g := gift.New()
	b := src.Bounds()
	if b.Dx() > maxW || b.Dy() > maxH {
		g.Add(gift.ResizeToFit(maxW, maxH, gift.LanczosResampling))
	}

	dst := image.NewRGBA(g.Bounds(b))
	g.Draw(dst, src)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("imaging: encode: %w", err)
	}
	return out.Bytes(), nil
}
