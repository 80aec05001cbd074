// fonts.go - Font management with custom TTF support and layered fallback.
// Uses golang.org/x/image/font for OpenType rendering. Tries an explicit
// font path first, then well-known system font files, then the embedded Go
// Regular font; if nothing scalable parses, degrades to the built-in
// fixed-size bitmap face.
package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// systemFonts are probed in order when no custom font is given.
var systemFonts = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/Library/Fonts/Arial.ttf",
	"/System/Library/Fonts/Supplemental/Arial.ttf",
	`C:\Windows\Fonts\arial.ttf`,
}

// FontManager handles font loading with fallback.
type FontManager struct {
	parsed *opentype.Font // nil when degraded to the bitmap face
}

// NewFontManager creates a font manager. If customPath is empty or cannot
// be read, it probes known system fonts and finally the embedded Go font.
// Loading never fails: an unparseable font degrades to the bitmap face.
func NewFontManager(customPath string) *FontManager {
	var fontData []byte

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			fmt.Printf("Warning: could not load custom font '%s', using default\n", customPath)
		} else {
			fontData = data
		}
	}

	if fontData == nil {
		for _, path := range systemFonts {
			if data, err := os.ReadFile(path); err == nil {
				fontData = data
				break
			}
		}
	}

	if fontData == nil {
		fontData = goregular.TTF
	}

	parsed, err := opentype.Parse(fontData)
	if err != nil {
		return &FontManager{}
	}

	return &FontManager{parsed: parsed}
}

// Bitmap reports whether the manager degraded to the built-in bitmap face.
func (fm *FontManager) Bitmap() bool {
	return fm.parsed == nil
}

// Face returns a font.Face at the specified point size (72 DPI). In
// degraded mode the fixed-size bitmap face is returned regardless of size.
func (fm *FontManager) Face(size float64) (font.Face, error) {
	if fm.parsed == nil {
		return basicfont.Face7x13, nil
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return face, nil
}
