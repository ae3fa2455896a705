package render

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"math"
	"path/filepath"

	"codeberg.org/go-pdf/fpdf"

	"github.com/spelprogrammen/portraits/internal/imaging"
	"github.com/spelprogrammen/portraits/internal/layout"
)

// Embedded portraits are downscaled to this print density before they
// go into the PDF
const embedDPI = 150.0

const jpegQuality = 85

// Collage lays the portraits out on a single A4 page and writes the
// PDF to outPath. The grid is sized from the first readable portrait;
// portraits that fail to decode leave their cell empty.
func Collage(paths []string, outPath, title string, landscape bool, dec *imaging.Decoder) error {
	page := layout.A4Portrait()
	pdfOrientation := "P"
	if landscape {
		page = layout.A4Landscape()
		pdfOrientation = "L"
	}

	aspect, err := firstAspect(paths)
	if err != nil {
		return err
	}

	var grid *layout.Grid
	if landscape {
		grid, err = layout.ComputeWide(len(paths), page, aspect)
	} else {
		grid, err = layout.Compute(len(paths), page, aspect)
	}
	if err != nil {
		return err
	}

	pdf := fpdf.New(pdfOrientation, "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(page.Margin, page.Margin, title)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(page.Margin, page.Margin+15, fmt.Sprintf("Total: %d portraits", len(paths)))

	placed := 0
	for i, path := range paths {
		row, col := grid.Cell(i)
		if err := embed(pdf, dec, grid, path, row, col); err != nil {
			slog.Warn("Failed to embed portrait", "file", filepath.Base(path), "error", err)
			continue
		}
		placed++
	}

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	slog.Info("Created collage",
		"path", outPath,
		"portraits", placed,
		"rows", grid.Rows,
		"cols", grid.Cols)
	return nil
}

// firstAspect probes paths until one yields usable dimensions
func firstAspect(paths []string) (float64, error) {
	for _, p := range paths {
		w, h, err := imaging.ProbeSize(p)
		if err != nil || w <= 0 || h <= 0 {
			continue
		}
		return float64(h) / float64(w), nil
	}
	return 0, fmt.Errorf("no readable portraits among %d files", len(paths))
}

// embed scales one portrait to the cell's print density and places it
// centered in its cell
func embed(pdf *fpdf.Fpdf, dec *imaging.Decoder, grid *layout.Grid, path string, row, col int) error {
	img, err := dec.Decode(path)
	if err != nil {
		return err
	}

	target := int(math.Ceil(grid.ImageWidth / 72.0 * embedDPI))
	scaled := imaging.ScaleToWidth(img, target)
	data, err := imaging.EncodeJPEG(scaled, jpegQuality)
	if err != nil {
		return err
	}

	// Odd sized portraits are fitted inside the shared image box so
	// they are never stretched.
	w, h := fitBox(scaled.Bounds(), grid.ImageWidth, grid.ImageHeight)
	x, y := grid.ImageOrigin(row, col)
	x += (grid.ImageWidth - w) / 2
	y += (grid.ImageHeight - h) / 2

	name := fmt.Sprintf("%s#%dx%d", path, scaled.Bounds().Dx(), scaled.Bounds().Dy())
	opt := fpdf.ImageOptions{ImageType: "JPEG"}
	pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(data))
	pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
	return nil
}

// fitBox scales pixel bounds to the largest size inside boxW x boxH
// that keeps the ratio
func fitBox(b image.Rectangle, boxW, boxH float64) (w, h float64) {
	ratio := float64(b.Dy()) / float64(b.Dx())
	w = boxW
	h = w * ratio
	if h > boxH {
		h = boxH
		w = h / ratio
	}
	return w, h
}
