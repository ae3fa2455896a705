package classify

import (
	"log/slog"
	"path/filepath"
)

// DefaultCorrectionThreshold is the green-red difference at or above
// which a borderline orange or unknown portrait moves to the green
// group
const DefaultCorrectionThreshold = -10.0

// Recommended bounds for the correction threshold. Values outside are
// accepted with a warning.
const (
	correctionThresholdMin = -15.0
	correctionThresholdMax = 0.0
)

// CheckCorrectionThreshold warns when threshold leaves the recommended
// range
func CheckCorrectionThreshold(threshold float64) {
	if threshold < correctionThresholdMin || threshold > correctionThresholdMax {
		slog.Warn("Correction threshold outside the recommended range",
			"threshold", threshold,
			"min", correctionThresholdMin,
			"max", correctionThresholdMax)
	}
}

// Correct re-examines orange and unknown results and moves those whose
// sample shows a green-red difference at or above threshold into the
// green group. Green results are never touched and results without a
// valid sample are skipped, so running the pass twice moves nothing
// the second time. Returns the number of portraits moved.
func Correct(results []Result, threshold float64) int {
	moved := 0
	for i := range results {
		r := &results[i]
		if r.Category == Green || !r.Sample.Valid() {
			continue
		}
		if r.Sample.Diff() >= threshold {
			slog.Info("Moving portrait to the green group",
				"file", filepath.Base(r.Path),
				"was", r.Category.String(),
				"diff", r.Sample.Diff())
			r.Category = Green
			r.Corrected = true
			moved++
		}
	}
	return moved
}
