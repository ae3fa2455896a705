package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spelprogrammen/portraits/internal/imaging"
)

func writePortrait(t *testing.T, path string, w, h int, c color.NRGBA) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

func testPortraits(t *testing.T, dir string, n int) []string {
	t.Helper()
	paths := make([]string, 0, n)
	for i := 0; i < n; i++ {
		path := filepath.Join(dir, fmt.Sprintf("portrait_%02d.png", i))
		writePortrait(t, path, 40, 50, color.NRGBA{R: 60, G: 140, B: 70, A: 255})
		paths = append(paths, path)
	}
	return paths
}

func assertPDF(t *testing.T, path string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Errorf("Expected a PDF at %s", path)
	}
}

func TestCollage(t *testing.T) {
	dir := t.TempDir()
	paths := testPortraits(t, dir, 5)
	out := filepath.Join(dir, "out.pdf")

	err := Collage(paths, out, "Speldesignstudenter SP23", false, imaging.NewDecoder())
	if err != nil {
		t.Fatalf("Collage failed: %v", err)
	}
	assertPDF(t, out)
}

func TestCollageLandscape(t *testing.T) {
	dir := t.TempDir()
	paths := testPortraits(t, dir, 7)
	out := filepath.Join(dir, "out.pdf")

	err := Collage(paths, out, "Spelgrafikstudenter SP23", true, imaging.NewDecoder())
	if err != nil {
		t.Fatalf("Collage failed: %v", err)
	}
	assertPDF(t, out)
}

func TestCollageSkipsBrokenPortraits(t *testing.T) {
	dir := t.TempDir()
	paths := testPortraits(t, dir, 3)

	broken := filepath.Join(dir, "portrait_99.png")
	if err := os.WriteFile(broken, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	paths = append(paths, broken)

	out := filepath.Join(dir, "out.pdf")
	err := Collage(paths, out, "Speldesignstudenter SP23", false, imaging.NewDecoder())
	if err != nil {
		t.Fatalf("Collage failed: %v", err)
	}
	assertPDF(t, out)
}

func TestCollageNoPortraits(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pdf")

	if err := Collage(nil, out, "Speldesignstudenter SP23", false, imaging.NewDecoder()); err == nil {
		t.Error("Expected an error for an empty group")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("Expected no PDF to be written")
	}
}

func TestCollageAllBroken(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	out := filepath.Join(dir, "out.pdf")
	if err := Collage([]string{broken}, out, "Speldesignstudenter SP23", false, imaging.NewDecoder()); err == nil {
		t.Error("Expected an error when no portrait is readable")
	}
}

func TestFirstAspect(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.png")
	if err := os.WriteFile(broken, []byte("not an image"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	good := filepath.Join(dir, "good.png")
	writePortrait(t, good, 40, 50, color.NRGBA{R: 60, G: 140, B: 70, A: 255})

	aspect, err := firstAspect([]string{broken, good})
	if err != nil {
		t.Fatalf("firstAspect failed: %v", err)
	}
	if aspect != 1.25 {
		t.Errorf("Expected aspect 1.25, got %.2f", aspect)
	}
}

func TestFitBox(t *testing.T) {
	tests := []struct {
		name      string
		bounds    image.Rectangle
		boxW      float64
		boxH      float64
		expectedW float64
		expectedH float64
	}{
		{
			name:      "matching ratio fills the box",
			bounds:    image.Rect(0, 0, 40, 50),
			boxW:      100,
			boxH:      125,
			expectedW: 100,
			expectedH: 125,
		},
		{
			name:      "taller portrait limited by height",
			bounds:    image.Rect(0, 0, 40, 80),
			boxW:      100,
			boxH:      125,
			expectedW: 62.5,
			expectedH: 125,
		},
		{
			name:      "wider portrait limited by width",
			bounds:    image.Rect(0, 0, 80, 40),
			boxW:      100,
			boxH:      125,
			expectedW: 100,
			expectedH: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitBox(tt.bounds, tt.boxW, tt.boxH)
			if w != tt.expectedW || h != tt.expectedH {
				t.Errorf("Expected %.1fx%.1f, got %.1fx%.1f", tt.expectedW, tt.expectedH, w, h)
			}
		})
	}
}
