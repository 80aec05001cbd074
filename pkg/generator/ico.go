// ico.go — Multi-resolution ICO bundling.
//
// Browsers read the PNGs declared in the manifest; the ICO exists so the
// same artwork can double as a favicon or desktop shortcut without
// re-rendering.
package generator

import (
	"fmt"
	"image"
	"os"

	ico "github.com/sergeymakinen/go-ico"
)

// WriteICO bundles the given images into a single ICO file at path. The
// images are stored as separate directory entries in the order given.
func WriteICO(output string, imgs []image.Image) error {
	if len(imgs) == 0 {
		return fmt.Errorf("no images to bundle into %s", output)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := ico.EncodeAll(f, imgs); err != nil {
		return fmt.Errorf("encode ICO: %w", err)
	}
	return nil
}
