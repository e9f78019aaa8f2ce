// Command pbn turns a photograph into a paint-by-numbers template.
//
// Usage:
//
//	pbn interactive [image]                 launch the terminal prompt
//	pbn process [options] <input> <outdir>  run the pipeline non-interactively
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mosaicforge/pbncore/pkg/cli"
	"github.com/mosaicforge/pbncore/pkg/pbncore"
	"github.com/mosaicforge/pbncore/pkg/pbnexport"
	"github.com/mosaicforge/pbncore/pkg/stdimg"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "interactive":
		os.Args = os.Args[1:]
		cli.RunCLI()
	case "process":
		err = runProcess(os.Args[2:])
	case "-h", "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "pbn: unknown command %q\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "pbn: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Usage:

  pbn interactive [image]
        Launch the terminal prompt for loading, preprocessing, and
        exporting a paint-by-numbers template.

  pbn process [options] <input> <outdir>
        Run the pipeline non-interactively, writing template.svg,
        filled.png, outline.png, palette.png, and composed.png into
        outdir.

Options for process:
  -k int           number of palette colors, 2-50 (default 16)
  -min-region int  minimum connected-component size (default 12)
  -max-edge int    bound the longest edge before processing (default 1600)
  -seed int        RNG seed for deterministic quantization (default 1)
`)
}

func runProcess(args []string) error {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	k := fs.Int("k", 16, "number of palette colors")
	minRegion := fs.Int("min-region", 12, "minimum connected-component size")
	maxEdge := fs.Int("max-edge", 1600, "bound the longest edge before processing")
	seed := fs.Int64("seed", 1, "RNG seed")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected <input> <outdir>, got %d arguments", fs.NArg())
	}
	inputPath := fs.Arg(0)
	outDir := fs.Arg(1)

	img, _, err := cli.LoadImage(inputPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", inputPath, err)
	}
	bounded := stdimg.BoundLongestEdge(img, *maxEdge)

	b := bounded.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := bounded.At(x, y).RGBA()
			pix[i+0] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bl >> 8)
			pix[i+3] = byte(a >> 8)
			i += 4
		}
	}

	input := pbncore.ProcessInput{
		Pixels:   pbncore.PixelBuffer{Width: w, Height: h, Pix: pix},
		Settings: pbncore.Settings{KColors: *k, MinRegionSize: *minRegion, Seed: *seed},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	result, err := pbncore.Process(ctx, input, func(p pbncore.Progress) {
		fmt.Printf("%s: %.0f%%\n", p.Stage, p.Fraction*100)
	})
	if err != nil {
		return fmt.Errorf("processing: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "template.svg"), func(f *os.File) error {
		return pbnexport.WriteSVG(f, result)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "filled.png"), func(f *os.File) error {
		return pbnexport.WritePNG(f, pbnexport.RenderFilledPreview(result))
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "outline.png"), func(f *os.File) error {
		img, err := pbnexport.RenderOutlinePreview(result)
		if err != nil {
			return err
		}
		return pbnexport.WritePNG(f, img)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "palette.png"), func(f *os.File) error {
		img, err := pbnexport.RenderPalettePanel(result, 48)
		if err != nil {
			return err
		}
		return pbnexport.WritePNG(f, img)
	}); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(outDir, "composed.png"), func(f *os.File) error {
		img, err := pbnexport.RenderComposedPreview(result, 48)
		if err != nil {
			return err
		}
		return pbnexport.WritePNG(f, img)
	}); err != nil {
		return err
	}

	fmt.Printf("wrote %d regions across %d colors to %s\n", len(result.Regions), len(result.Palette), outDir)
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
