package pbncore

// Cleanup absorbs connected components smaller than minSize into the
// most common differing label among their 4-connected boundary
// neighbors, per spec.md section 4.3. It runs exactly once — components
// that remain under-threshold after absorption are not re-examined.
//
// The flood fill uses an explicit index stack sized to Width*Height
// (the teacher's FloodfillPaint uses the same explicit-stack technique
// to avoid recursion depth issues on large images).
func Cleanup(lm LabelMap, minSize int) LabelMap {
	w, h := lm.Width, lm.Height
	n := w * h
	out := LabelMap{Width: w, Height: h, Labels: make([]uint8, n)}
	copy(out.Labels, lm.Labels)
	if n == 0 {
		return out
	}

	visited := make([]bool, n)
	stack := make([]int, 0, n)
	component := make([]int, 0, n)

	// fixed-size tally: labels are stored as uint8, so 256 buckets
	// covers every possible value regardless of the configured K.
	var tally [256]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		label := out.Labels[start]
		component = component[:0]
		stack = append(stack[:0], start)
		visited[start] = true

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			component = append(component, p)

			px := p % w
			py := p / w
			// 4-connectivity: up, down, left, right
			if py > 0 {
				q := p - w
				if !visited[q] && out.Labels[q] == label {
					visited[q] = true
					stack = append(stack, q)
				}
			}
			if py < h-1 {
				q := p + w
				if !visited[q] && out.Labels[q] == label {
					visited[q] = true
					stack = append(stack, q)
				}
			}
			if px > 0 {
				q := p - 1
				if !visited[q] && out.Labels[q] == label {
					visited[q] = true
					stack = append(stack, q)
				}
			}
			if px < w-1 {
				q := p + 1
				if !visited[q] && out.Labels[q] == label {
					visited[q] = true
					stack = append(stack, q)
				}
			}
		}

		if len(component) >= minSize {
			continue
		}

		for i := range tally {
			tally[i] = 0
		}
		hasNeighbor := false
		for _, p := range component {
			px := p % w
			py := p / w
			if py > 0 {
				q := p - w
				if out.Labels[q] != label {
					tally[out.Labels[q]]++
					hasNeighbor = true
				}
			}
			if py < h-1 {
				q := p + w
				if out.Labels[q] != label {
					tally[out.Labels[q]]++
					hasNeighbor = true
				}
			}
			if px > 0 {
				q := p - 1
				if out.Labels[q] != label {
					tally[out.Labels[q]]++
					hasNeighbor = true
				}
			}
			if px < w-1 {
				q := p + 1
				if out.Labels[q] != label {
					tally[out.Labels[q]]++
					hasNeighbor = true
				}
			}
		}
		if !hasNeighbor {
			continue
		}

		winner := 0
		winnerCount := -1
		for lbl, count := range tally {
			if count > winnerCount {
				winnerCount = count
				winner = lbl
			}
		}
		for _, p := range component {
			out.Labels[p] = uint8(winner)
		}
	}

	return out
}
