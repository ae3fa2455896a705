package classify

import (
	"image"

	"github.com/spelprogrammen/portraits/internal/imaging"
)

// DefaultMinDiff is the green-red difference needed to assign a
// portrait directly, without the grey point fallback
const DefaultMinDiff = 5.0

// Category is the shirt color group a portrait is assigned to
type Category int

const (
	// Unknown marks portraits the color rules could not place
	Unknown Category = iota
	// Green is the game design cohort
	Green
	// Orange is the game graphics cohort
	Orange
)

func (c Category) String() string {
	switch c {
	case Green:
		return "green"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// ParseCategory maps the stored string form back to a Category
func ParseCategory(s string) Category {
	switch s {
	case "green":
		return Green
	case "orange":
		return Orange
	default:
		return Unknown
	}
}

// Result is the classification outcome for one portrait file
type Result struct {
	Path      string
	Category  Category
	Sample    Sample
	Corrected bool
	Error     string
}

// Decide assigns a category from an averaged sample. A green-red
// difference at or beyond minDiff assigns directly. Inside the band
// the channel that rises furthest above the sample's grey point wins;
// a tie, or no channel above grey, stays Unknown.
func Decide(s Sample, minDiff float64) Category {
	diff := s.Diff()
	switch {
	case diff >= minDiff:
		return Green
	case diff <= -minDiff:
		return Orange
	}

	grey := (s.R + s.G + s.B) / 3
	devR := s.R - grey
	devG := s.G - grey
	switch {
	case devG > devR && devG > 0:
		return Green
	case devR > devG && devR > 0:
		return Orange
	}
	return Unknown
}

// Classify samples the bottom strip of img and decides its category
func Classify(img image.Image, minDiff float64) (Category, Sample) {
	s := SampleBottom(img)
	return Decide(s, minDiff), s
}

// ClassifyFile decodes and classifies a single portrait. Decode
// failures are recorded on the result instead of returned.
func ClassifyFile(path string, minDiff float64) Result {
	img, err := imaging.DecodeFile(path)
	if err != nil {
		return Result{Path: path, Category: Unknown, Error: err.Error()}
	}
	cat, sample := Classify(img, minDiff)
	return Result{Path: path, Category: cat, Sample: sample}
}
