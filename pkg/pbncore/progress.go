package pbncore

// Stage names reported through ProgressFunc, in pipeline order.
const (
	StageColorConvert = "color_convert"
	StageQuantize      = "quantize"
	StageCleanup       = "cleanup"
	StageContours      = "contours"
	StagePlacement     = "placement"
)

// Progress reports that Stage has finished. Fraction is in [0,1] and
// monotonically increases across a single Process call.
type Progress struct {
	Stage    string
	Fraction float64
}

// ProgressFunc receives one Progress event per completed stage. It may
// be nil, in which case Process reports nothing.
type ProgressFunc func(Progress)

func report(fn ProgressFunc, stage string, fraction float64) {
	if fn == nil {
		return
	}
	fn(Progress{Stage: stage, Fraction: fraction})
}
