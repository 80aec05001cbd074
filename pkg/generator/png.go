// png.go — PNG file writer.
package generator

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// WritePNG encodes img to a PNG file at the given path, overwriting any
// existing file.
func WritePNG(output string, img image.Image) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}
