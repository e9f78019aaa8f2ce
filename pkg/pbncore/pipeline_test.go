package pbncore

import (
	"context"
	"errors"
	"testing"
)

func TestProcessRejectsOutOfRangeK(t *testing.T) {
	input := ProcessInput{
		Pixels:   solidImage(10, 10, 1, 2, 3),
		Settings: Settings{KColors: 1, MinRegionSize: 0, Seed: 1},
	}
	_, err := Process(context.Background(), input, nil)
	if err == nil {
		t.Fatal("expected ValidationError for K=1")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}

func TestProcessRejectsMismatchedBuffer(t *testing.T) {
	input := ProcessInput{
		Pixels:   PixelBuffer{Width: 4, Height: 4, Pix: make([]byte, 10)},
		Settings: Settings{KColors: 2, Seed: 1},
	}
	if _, err := Process(context.Background(), input, nil); err == nil {
		t.Fatal("expected ValidationError for mismatched buffer length")
	}
}

func TestProcessSplitImageTwoRegions(t *testing.T) {
	input := ProcessInput{
		Pixels:   splitImage(200, 200),
		Settings: Settings{KColors: 2, MinRegionSize: 20, Seed: 3},
	}
	result, err := Process(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Regions) != 2 {
		t.Fatalf("got %d regions, want 2", len(result.Regions))
	}
	if len(result.Placements) != 2 {
		t.Fatalf("got %d placements, want 2", len(result.Placements))
	}
	for _, p := range result.Placements {
		if p.Y < 90 || p.Y > 110 {
			t.Errorf("placement y = %v, want ~100", p.Y)
		}
	}
}

func TestProcessDeterministic(t *testing.T) {
	input := ProcessInput{
		Pixels:   squareOnBackgroundImage(60, 60, 12),
		Settings: Settings{KColors: 2, MinRegionSize: 20, Seed: 99},
	}
	r1, err := Process(context.Background(), input, nil)
	if err != nil {
		t.Fatal(err)
	}
	r2, err := Process(context.Background(), input, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(r1.Placements) != len(r2.Placements) {
		t.Fatalf("placement counts differ: %d vs %d", len(r1.Placements), len(r2.Placements))
	}
	for i := range r1.Placements {
		if r1.Placements[i] != r2.Placements[i] {
			t.Fatalf("placement %d differs across runs: %+v vs %+v", i, r1.Placements[i], r2.Placements[i])
		}
	}
	for i := range r1.Labels.Labels {
		if r1.Labels.Labels[i] != r2.Labels.Labels[i] {
			t.Fatalf("label %d differs across runs", i)
		}
	}
}

func TestProcessCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	input := ProcessInput{
		Pixels:   solidImage(10, 10, 1, 2, 3),
		Settings: Settings{KColors: 2, Seed: 1},
	}
	_, err := Process(ctx, input, nil)
	if err == nil {
		t.Fatal("expected CancelledError")
	}
	var ce *CancelledError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *CancelledError, got %T", err)
	}
}

func TestProcessCleanRunHasNoDrops(t *testing.T) {
	input := ProcessInput{
		Pixels:   splitImage(200, 200),
		Settings: Settings{KColors: 2, MinRegionSize: 20, Seed: 3},
	}
	result, err := Process(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Dropped) != 0 {
		t.Fatalf("got %d drops for a clean split image, want 0: %v", len(result.Dropped), result.Dropped)
	}
}

func TestProcessReportsProgressInOrder(t *testing.T) {
	var stages []string
	input := ProcessInput{
		Pixels:   solidImage(20, 20, 9, 9, 9),
		Settings: Settings{KColors: 2, Seed: 1},
	}
	_, err := Process(context.Background(), input, func(p Progress) {
		stages = append(stages, p.Stage)
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{StageColorConvert, StageQuantize, StageCleanup, StageContours, StagePlacement}
	if len(stages) != len(want) {
		t.Fatalf("got %d progress events, want %d", len(stages), len(want))
	}
	for i, s := range want {
		if stages[i] != s {
			t.Fatalf("stage %d = %s, want %s", i, stages[i], s)
		}
	}
}
