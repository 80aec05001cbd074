// iconkit — Extension icon asset generator.
//
// Usage:
//
//	iconkit [options]
//
// A bare run writes icons/icon16.png, icon48.png and icon128.png relative
// to the working directory, ready for the extension manifest.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/translex/iconkit/pkg/generator"
	"github.com/translex/iconkit/pkg/manifest"
)

var successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	if err := run(os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("iconkit", flag.ExitOnError)

	var (
		outDir       string
		fontPath     string
		icoPath      string
		manifestPath string
		startHex     string
		endHex       string
	)

	fs.StringVar(&outDir, "o", "icons", "Output directory")
	fs.StringVar(&outDir, "out", "icons", "Output directory")
	fs.StringVar(&fontPath, "font", "", "Custom TTF/OTF font file")
	fs.StringVar(&icoPath, "ico", "", "Also bundle all sizes into an ICO at this path")
	fs.StringVar(&manifestPath, "manifest", "", "Sync icon declarations in this manifest.json")
	fs.StringVar(&startHex, "start", "#667eea", "Gradient top color")
	fs.StringVar(&endHex, "end", "#764ba2", "Gradient bottom color")

	fs.Usage = printUsage
	if err := fs.Parse(args); err != nil {
		return err
	}

	start, err := generator.ParseColor(startHex)
	if err != nil {
		return err
	}
	end, err := generator.ParseColor(endHex)
	if err != nil {
		return err
	}

	fmt.Println("Generating extension icons...")
	results, err := generator.Generate(generator.Config{
		OutDir:   outDir,
		Start:    start,
		End:      end,
		FontPath: fontPath,
		Progress: func(path string) { fmt.Printf("Created %s\n", path) },
	})
	if err != nil {
		return err
	}

	if icoPath != "" {
		imgs := make([]image.Image, len(results))
		for i, res := range results {
			imgs[i] = res.Image
		}
		if err := generator.WriteICO(icoPath, imgs); err != nil {
			return err
		}
		fmt.Printf("Created %s\n", icoPath)
	}

	if manifestPath != "" {
		if err := syncManifest(manifestPath, outDir, results); err != nil {
			return err
		}
	}

	fmt.Println()
	fmt.Println(successStyle.Render("✓ All icons generated successfully!"))
	fmt.Printf("Icons saved to: %s\n", outDir)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Reload the extension in Chrome (chrome://extensions/)")
	fmt.Println("2. You should now see the custom icons!")
	return nil
}

// syncManifest rewrites the manifest's icon declarations to match the
// generated set, reporting stale declarations first.
func syncManifest(path, outDir string, results []generator.Result) error {
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}

	sizes := make([]int, len(results))
	for i, res := range results {
		sizes[i] = res.Size
	}

	for _, w := range m.Validate(sizes) {
		fmt.Printf("Warning: %s\n", w)
	}

	m.SyncIcons(filepath.ToSlash(outDir), sizes)
	if err := m.Save(path); err != nil {
		return err
	}

	fmt.Printf("Updated %s\n", path)
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Print(`iconkit — Extension Icon Asset Generator

USAGE:
    iconkit [options]

OPTIONS:
    -o, --out <dir>        Output directory (default: icons)
    --font <path>          Custom TTF/OTF font file
    --ico <path>           Also bundle all sizes into a multi-resolution ICO
    --manifest <path>      Sync icon declarations in this manifest.json
    --start <hex>          Gradient top color (default: #667eea)
    --end <hex>            Gradient bottom color (default: #764ba2)

EXAMPLES:
    iconkit
    iconkit -o assets/icons
    iconkit --font fonts/NotoSansSC.ttf
    iconkit --ico icons/favicon.ico --manifest manifest.json
`)
}
