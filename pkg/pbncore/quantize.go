package pbncore

import (
	"math/rand"
	"runtime"
	"sync"
)

const (
	maxTrainingIterations = 10
	convergenceThreshold  = 0.01
	trainingSampleCap     = 50000
)

// Quantize runs Lloyd-style k-means over lab in K clusters and returns the
// resulting palette plus a full-resolution label map, per spec.md section
// 4.2. Initialization samples K starting centroids uniformly at random
// (with replacement) from the pixel set, seeded by seed for
// reproducibility; callers that don't need determinism may pass a
// time-derived seed.
func Quantize(lab LabBuffer, k int, seed int64) (Palette, LabelMap, error) {
	n := lab.Width * lab.Height
	if k <= 0 {
		return nil, LabelMap{}, newValidationError("k must be > 0, got %d", k)
	}
	if n == 0 {
		return nil, LabelMap{}, newValidationError("empty image")
	}

	rng := rand.New(rand.NewSource(seed))

	centroids := make([]LabColor, k)
	for i := range centroids {
		centroids[i] = lab.Lab[rng.Intn(n)]
	}

	stride := n / trainingSampleCap
	if stride < 1 {
		stride = 1
	}

	sums := make([]labAccum, k)
	for iter := 0; iter < maxTrainingIterations; iter++ {
		for i := range sums {
			sums[i] = labAccum{}
		}
		for i := 0; i < n; i += stride {
			c := lab.Lab[i]
			idx := nearestCentroid(c, centroids)
			sums[idx].l += float64(c.L)
			sums[idx].a += float64(c.A)
			sums[idx].b += float64(c.B)
			sums[idx].count++
		}

		movement := 0.0
		for i := range centroids {
			if sums[i].count == 0 {
				continue
			}
			newCentroid := LabColor{
				L: float32(sums[i].l / float64(sums[i].count)),
				A: float32(sums[i].a / float64(sums[i].count)),
				B: float32(sums[i].b / float64(sums[i].count)),
			}
			movement += labDistSq(newCentroid, centroids[i])
			centroids[i] = newCentroid
		}
		if movement < convergenceThreshold {
			break
		}
	}

	labels := make([]uint8, n)
	assignFullResolution(lab, centroids, labels)

	return Palette(centroids), LabelMap{Width: lab.Width, Height: lab.Height, Labels: labels}, nil
}

type labAccum struct {
	l, a, b float64
	count   int
}

// nearestCentroid returns the index of the centroid with the smallest
// squared Lab distance to c, lowest index winning ties.
func nearestCentroid(c LabColor, centroids []LabColor) int {
	best := 0
	bestDist := labDistSq(c, centroids[0])
	for i := 1; i < len(centroids); i++ {
		d := labDistSq(c, centroids[i])
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best
}

// assignFullResolution labels every pixel, split across workers exactly
// as ToLabBuffer splits its conversion pass.
func assignFullResolution(lab LabBuffer, centroids []LabColor, labels []uint8) {
	n := len(lab.Lab)
	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if n == 0 {
		return
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				labels[i] = uint8(nearestCentroid(lab.Lab[i], centroids))
			}
		}(start, end)
	}
	wg.Wait()
}
