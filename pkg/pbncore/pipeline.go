package pbncore

import (
	"context"
	"fmt"
)

const (
	minK = 2
	maxK = 50
)

func validate(input ProcessInput) error {
	px := input.Pixels
	if px.Width <= 0 || px.Height <= 0 {
		return newValidationError("image dimensions must be positive, got %dx%d", px.Width, px.Height)
	}
	if len(px.Pix) != px.Width*px.Height*4 {
		return newValidationError("pixel buffer length %d does not match %dx%d RGBA", len(px.Pix), px.Width, px.Height)
	}
	if input.Settings.KColors < minK || input.Settings.KColors > maxK {
		return newValidationError("k must be in [%d,%d], got %d", minK, maxK, input.Settings.KColors)
	}
	if input.Settings.MinRegionSize < 0 {
		return newValidationError("min region size must be >= 0, got %d", input.Settings.MinRegionSize)
	}
	return nil
}

func cancelled(ctx context.Context, stage string) error {
	select {
	case <-ctx.Done():
		return &CancelledError{Stage: stage}
	default:
		return nil
	}
}

// Process runs the full paint-by-numbers pipeline over input: color
// conversion, quantization, region cleanup, contour extraction and
// label placement, per spec.md section 3. It is a pure function of its
// inputs — given the same PixelBuffer and Settings.Seed, two calls
// produce byte-identical results (spec.md section 8, property P6).
//
// ctx is checked at each stage boundary; a cancelled context aborts the
// pipeline and returns a *CancelledError naming the stage that was
// about to start. progress may be nil.
func Process(ctx context.Context, input ProcessInput, progress ProgressFunc) (Result, error) {
	if err := validate(input); err != nil {
		return Result{}, err
	}

	if err := cancelled(ctx, StageColorConvert); err != nil {
		return Result{}, err
	}
	lab := ToLabBuffer(input.Pixels)
	report(progress, StageColorConvert, 0.2)

	if err := cancelled(ctx, StageQuantize); err != nil {
		return Result{}, err
	}
	palette, labels, err := Quantize(lab, input.Settings.KColors, input.Settings.Seed)
	if err != nil {
		return Result{}, err
	}
	if len(labels.Labels) != input.Pixels.Width*input.Pixels.Height {
		return Result{}, &FatalError{Msg: fmt.Sprintf(
			"quantize returned a label buffer of length %d, want %d",
			len(labels.Labels), input.Pixels.Width*input.Pixels.Height)}
	}
	report(progress, StageQuantize, 0.4)

	if err := cancelled(ctx, StageCleanup); err != nil {
		return Result{}, err
	}
	cleaned := Cleanup(labels, input.Settings.MinRegionSize)
	if len(cleaned.Labels) != len(labels.Labels) {
		return Result{}, &FatalError{Msg: fmt.Sprintf(
			"cleanup returned a label buffer of length %d, want %d",
			len(cleaned.Labels), len(labels.Labels))}
	}
	report(progress, StageCleanup, 0.6)

	if err := cancelled(ctx, StageContours); err != nil {
		return Result{}, err
	}
	regions, dropped := ExtractRegions(cleaned, input.Settings.KColors)
	report(progress, StageContours, 0.8)

	if err := cancelled(ctx, StagePlacement); err != nil {
		return Result{}, err
	}
	placements := make([]Placement, 0, len(regions))
	for _, r := range regions {
		p, ok := PlaceLabel(r)
		if !ok {
			dropped = append(dropped, &InternalError{
				Stage: StagePlacement,
				Msg:   fmt.Sprintf("region with color index %d has a degenerate outer ring, no label placed", r.ColorIndex),
			})
			continue
		}
		placements = append(placements, Placement{X: p.X, Y: p.Y, Label: r.ColorIndex + 1})
	}
	report(progress, StagePlacement, 1.0)

	return Result{
		Width:      input.Pixels.Width,
		Height:     input.Pixels.Height,
		Palette:    palette,
		Labels:     cleaned,
		Regions:    regions,
		Placements: placements,
		Dropped:    dropped,
	}, nil
}
