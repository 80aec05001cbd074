// renderer.go - Icon label rendering: label and point-size selection, glyph
// measurement, centering, and the shadow-then-foreground draw pass.
package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Labels by canvas size. Small icons only have room for a single glyph;
// from the extensions-page size up the full mark fits.
const (
	FullLabel  = "A→中"
	ShortLabel = "A"
)

// Fill colors for the two draw passes. The shadow is half-transparent
// black composited over the opaque gradient, so covered pixels darken by
// half their glyph coverage.
var (
	shadowColor = color.NRGBA{A: 128}
	textColor   = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Label returns the text drawn on an icon of the given size.
func Label(size int) string {
	if size >= 48 {
		return FullLabel
	}
	return ShortLabel
}

// PointSize returns the font size for a canvas side length: a quarter of
// the side for the larger icons, half for the small ones where a quarter
// would be unreadable. Integer division before the float conversion.
func PointSize(size int) float64 {
	if size >= 48 {
		return float64(size / 4)
	}
	return float64(size / 2)
}

// Renderer draws centered icon labels using a shared FontManager.
type Renderer struct {
	fonts *FontManager
}

// NewRenderer creates a renderer. fontPath may be empty; see NewFontManager
// for the fallback chain.
func NewRenderer(fontPath string) *Renderer {
	return &Renderer{fonts: NewFontManager(fontPath)}
}

// Draw renders the size-appropriate label centered on dst with a 2px drop
// shadow. Centering uses the measured glyph box, including its top bearing,
// so fonts with unusual metrics still land visually centered.
func (r *Renderer) Draw(dst draw.Image, size int) error {
	label := Label(size)

	face, err := r.fonts.Face(PointSize(size))
	if err != nil {
		return err
	}

	bounds, _ := font.BoundString(face, label)
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()

	// Center the glyph box, then shift back to a baseline origin: the box
	// extends Min.X right of the dot and Min.Y (negative) above it.
	x := (size-width)/2 - bounds.Min.X.Floor()
	y := (size-height)/2 - bounds.Min.Y.Floor()

	drawString(dst, label, x+2, y+2, shadowColor, face)
	drawString(dst, label, x, y, textColor, face)
	return nil
}

// drawString draws text with its baseline origin at (x, y).
func drawString(dst draw.Image, text string, x, y int, col color.Color, face font.Face) {
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	drawer.DrawString(text)
}
