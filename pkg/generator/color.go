// color.go — Color parsing and background synthesis.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/lucasb-eyer/go-colorful"
)

// Default gradient endpoints, matching the extension's popup theme.
var (
	DefaultStart = color.RGBA{R: 102, G: 126, B: 234, A: 255} // #667eea
	DefaultEnd   = color.RGBA{R: 118, G: 75, B: 162, A: 255}  // #764ba2
)

// ParseColor parses a "#rrggbb" hex string into an opaque RGBA color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected hex like #rrggbb", s)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// lerp interpolates a single channel with truncation. The truncation (not
// rounding) keeps the generated pixels identical to the reference icon set.
func lerp(start, end uint8, ratio float64) uint8 {
	return uint8(float64(start) + (float64(end)-float64(start))*ratio)
}

// NewGradientImage creates a size×size canvas blending vertically from start
// at the top to end at the bottom. Row y uses ratio y/size, so every pixel
// within a row shares one color and the final row stops just short of end.
func NewGradientImage(size int, start, end color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		ratio := float64(y) / float64(size)
		row := color.RGBA{
			R: lerp(start.R, end.R, ratio),
			G: lerp(start.G, end.G, ratio),
			B: lerp(start.B, end.B, ratio),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, size, y+1), &image.Uniform{row}, image.Point{}, draw.Src)
	}
	return img
}

// NewSolidImage creates a uniform solid-color image using draw.Draw (O(1) fill).
func NewSolidImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}
