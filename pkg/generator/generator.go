// Package generator builds the extension icon set.
//
// All output follows a unified pipeline: synthesize a gradient canvas for
// each size, render the centered label onto it, then write it as a PNG
// (and optionally bundle the whole set into one ICO).
package generator

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/translex/iconkit/pkg/render"
)

// Sizes lists the dimensions browsers expect from an extension: toolbar
// (16), extensions page (48) and web store listing (128). Ascending order.
var Sizes = []int{16, 48, 128}

// Config holds parameters for icon generation.
type Config struct {
	Sizes    []int      // Pixel sizes, ascending (default: Sizes)
	OutDir   string     // Output directory, created if absent (default: "icons")
	Start    color.RGBA // Gradient top color (default: DefaultStart)
	End      color.RGBA // Gradient bottom color (default: DefaultEnd)
	FontPath string     // Custom TTF/OTF; empty uses the system/embedded chain

	// Progress, if set, is called with the path of each icon after it has
	// been written to disk.
	Progress func(path string)
}

// Result describes one generated icon.
type Result struct {
	Size  int
	Path  string
	Image image.Image
}

// Generate renders every configured size and writes icon<size>.png files
// into cfg.OutDir, overwriting previous output. Each size is rendered and
// written to completion before the next begins, so a failure never leaves
// a half-written icon behind an already-reported one.
func Generate(cfg Config) ([]Result, error) {
	sizes := cfg.Sizes
	if len(sizes) == 0 {
		sizes = Sizes
	}
	outDir := cfg.OutDir
	if outDir == "" {
		outDir = "icons"
	}
	start, end := cfg.Start, cfg.End
	if start.A == 0 {
		start = DefaultStart
	}
	if end.A == 0 {
		end = DefaultEnd
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	renderer := render.NewRenderer(cfg.FontPath)

	results := make([]Result, 0, len(sizes))
	for _, size := range sizes {
		img := NewGradientImage(size, start, end)
		if err := renderer.Draw(img, size); err != nil {
			return nil, fmt.Errorf("render %dpx label: %w", size, err)
		}

		path := filepath.Join(outDir, fmt.Sprintf("icon%d.png", size))
		if err := WritePNG(path, img); err != nil {
			return nil, err
		}
		if cfg.Progress != nil {
			cfg.Progress(path)
		}
		results = append(results, Result{Size: size, Path: path, Image: img})
	}

	return results, nil
}
