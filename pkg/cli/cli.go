package cli

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mosaicforge/pbncore/pkg/pbncore"
	"github.com/mosaicforge/pbncore/pkg/pbnexport"
	"github.com/mosaicforge/pbncore/pkg/stdimg"
)

// Version is set at build time via -ldflags "-X ...cli.Version=...";
// it defaults to "dev" for local builds.
var Version = "dev"

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  o  - open a source photograph")
	fmt.Println("  p  - preprocess (resize/trim) before processing")
	fmt.Println("  w  - write the preprocessed source photo to disk")
	fmt.Println("  k  - set K colors and minimum region size")
	fmt.Println("  r  - run the paint-by-numbers pipeline")
	fmt.Println("  s  - export the result (svg/filled/outline/composed/webp/palette)")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

// toPixelBuffer flattens an image.Image into the row-major RGBA buffer
// pbncore.Process expects, via the standard library's color-model
// conversion (alpha is read but ignored downstream).
func toPixelBuffer(img image.Image) pbncore.PixelBuffer {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]byte, w*h*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			pix[i+0] = byte(r >> 8)
			pix[i+1] = byte(g >> 8)
			pix[i+2] = byte(bl >> 8)
			pix[i+3] = byte(a >> 8)
			i += 4
		}
	}
	return pbncore.PixelBuffer{Width: w, Height: h, Pix: pix}
}

// printSourceInfo prints the dimensions/format line for a freshly
// loaded image — annotated with a region-count readiness warning
// against the current settings — plus, for JPEG sources only, a
// one-line EXIF caption (camera, capture date, GPS) when the file
// carries one. The caption is advisory only: paint-by-numbers
// rendering never preserves it, so a failure to extract EXIF (PNG
// input, no tags, corrupt segment) is silently skipped rather than
// surfaced as an error.
func printSourceInfo(path string, img image.Image, settings pbncore.Settings) {
	fmt.Println(DescribeSourceImage(img, settings))
	if summary, ok := SourcePhotoSummary(path); ok {
		fmt.Println(summary)
	}
}

// RunCLI drives the interactive prompt: load a photo, optionally
// preprocess it, configure the palette size and minimum region size,
// run the pipeline, preview the result in the terminal, and export it.
func RunCLI() {
	var inputImagePath string
	if len(os.Args) >= 2 {
		inputImagePath = os.Args[1]
	}

	storeStd := NewMetaStoreFromStdimg(stdimg.Commands)

	var cur image.Image
	settings := pbncore.Settings{KColors: 16, MinRegionSize: 12, Seed: 1}
	var result pbncore.Result
	haveResult := false

	if inputImagePath != "" {
		img, _, err := LoadImage(inputImagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", inputImagePath, err)
			os.Exit(1)
		}
		cur = img
		_ = PreviewImage(cur, "")
		printSourceInfo(inputImagePath, cur, settings)
	}

	fmt.Println("Paint-by-numbers generator")
	fmt.Printf("Current settings: k=%d min-region-size=%d\n", settings.KColors, settings.MinRegionSize)
	usage()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case 'o':
			selected, selErr := SelectFileWithFzf(".")
			var newPath string
			if selErr != nil || selected == "" {
				newPath, _ = PromptLine("Enter path to image to open (leave empty to cancel): ")
				if newPath == "" {
					fmt.Println("open cancelled")
					continue
				}
			} else {
				newPath = selected
			}

			img, _, err := LoadImage(newPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", newPath, err)
				continue
			}
			cur = img
			haveResult = false
			fmt.Printf("Opened %s\n", newPath)
			_ = PreviewImage(cur, "")
			printSourceInfo(newPath, cur, settings)
			continue

		case 'p':
			if cur == nil {
				fmt.Println("No image loaded. Press 'o' to open an image first.")
				continue
			}
			name, err := SelectCommandWithFzfStd(stdimg.Commands)
			if err != nil || name == "" {
				fmt.Println("Command selection (fallback):")
				for i, c := range stdimg.Commands {
					fmt.Printf("  %d) %s - %s\n", i+1, c.Name, c.Description)
				}
				selection, _ := PromptLine("Enter number or command name (leave empty to cancel): ")
				if selection == "" {
					fmt.Println("selection cancelled")
					continue
				}
				if idx, perr := strconv.Atoi(selection); perr == nil {
					if idx < 1 || idx > len(stdimg.Commands) {
						fmt.Println("invalid selection")
						continue
					}
					name = stdimg.Commands[idx-1].Name
				} else {
					selLower := strings.ToLower(selection)
					for _, c := range stdimg.Commands {
						if strings.ToLower(c.Name) == selLower {
							name = c.Name
							break
						}
					}
					if name == "" {
						fmt.Printf("unknown command: %s\n", selection)
						continue
					}
				}
			}

			c, ok := storeStd.byName[name]
			if !ok {
				fmt.Printf("unknown command: %s\n", name)
				continue
			}
			tooltip, _, _ := storeStd.GetCommandHelp(name)
			fmt.Println("\n" + tooltip + "\n")
			rawArgs := make([]string, len(c.Args))
			for i, a := range c.Args {
				val, perr := PromptLine(fmt.Sprintf("%s (%s): ", a.Name, a.Type))
				if perr != nil {
					val = ""
				}
				rawArgs[i] = val
			}
			normArgs, err := NormalizeArgsFromStd(storeStd, name, rawArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "input validation error: %v\n", err)
				continue
			}
			newImg, err := stdimg.ApplyCommandStdlib(cur, name, normArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "apply command error: %v\n", err)
				continue
			}
			cur = newImg
			haveResult = false
			fmt.Printf("Applied %s\n", name)
			_ = PreviewImage(cur, "")
			continue

		case 'w':
			if cur == nil {
				fmt.Println("No image loaded. Press 'o' to open an image first.")
				continue
			}
			out, _ := PromptLine("Write preprocessed source to filename: ")
			if out == "" {
				fmt.Println("no filename provided")
				continue
			}
			if err := SaveImage(out, cur); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write image: %v\n", err)
				continue
			}
			fmt.Printf("Saved to %s\n", out)
			continue

		case 'k':
			kRaw, _ := PromptLine(fmt.Sprintf("K colors [%d]: ", settings.KColors))
			if strings.TrimSpace(kRaw) != "" {
				k, err := ParseKColors(kRaw)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
					continue
				}
				settings.KColors = k
			}
			mRaw, _ := PromptLine(fmt.Sprintf("Min region size [%d]: ", settings.MinRegionSize))
			if strings.TrimSpace(mRaw) != "" {
				m, err := ParseMinRegionSize(mRaw)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%v\n", err)
					continue
				}
				settings.MinRegionSize = m
			}
			fmt.Printf("Settings: k=%d min-region-size=%d\n", settings.KColors, settings.MinRegionSize)
			continue

		case 'r':
			if cur == nil {
				fmt.Println("No image loaded. Press 'o' to open an image first.")
				continue
			}
			bounded := stdimg.BoundLongestEdge(cur, 1600)
			input := pbncore.ProcessInput{Pixels: toPixelBuffer(bounded), Settings: settings}
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			res, err := pbncore.Process(ctx, input, func(p pbncore.Progress) {
				fmt.Printf("  %s: %.0f%%\n", p.Stage, p.Fraction*100)
			})
			cancel()
			if err != nil {
				fmt.Fprintf(os.Stderr, "processing failed: %v\n", err)
				continue
			}
			result = res
			haveResult = true
			if err := PreviewResult(result, PreviewComposed); err != nil {
				fmt.Fprintf(os.Stderr, "preview failed: %v\n", err)
			}
			continue

		case 's':
			if !haveResult {
				fmt.Println("Nothing to export yet; press 'r' to run the pipeline first.")
				continue
			}
			if err := exportResult(result); err != nil {
				fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
			}
			continue

		case 'u':
			if err := CheckForUpdates(); err != nil {
				fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
			}
			continue

		case 'h':
			usage()
			continue

		case 'q':
			fmt.Println("Exiting...")
			return

		default:
			// ignore other keys, including the newline after each prompt
		}
	}
}

// exportResult prompts for an output kind and path, then writes the
// corresponding pbnexport rendering.
func exportResult(result pbncore.Result) error {
	kind, _ := PromptLine("Export as svg/filled/outline/composed/webp/palette: ")
	kind = strings.ToLower(strings.TrimSpace(kind))
	out, _ := PromptLine("Output filename: ")
	if out == "" {
		return fmt.Errorf("no filename provided")
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	switch kind {
	case "svg":
		return pbnexport.WriteSVG(f, result)
	case "filled":
		return pbnexport.WritePNG(f, pbnexport.RenderFilledPreview(result))
	case "outline":
		img, err := pbnexport.RenderOutlinePreview(result)
		if err != nil {
			return err
		}
		return pbnexport.WritePNG(f, img)
	case "composed":
		img, err := pbnexport.RenderComposedPreview(result, 48)
		if err != nil {
			return err
		}
		return pbnexport.WritePNG(f, img)
	case "webp":
		return pbnexport.WriteWebP(f, pbnexport.RenderFilledPreview(result))
	case "palette":
		img, err := pbnexport.RenderPalettePanel(result, 48)
		if err != nil {
			return err
		}
		return pbnexport.WritePNG(f, img)
	default:
		return fmt.Errorf("unknown export kind: %s", kind)
	}
}
