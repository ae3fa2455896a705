package layout

import (
	"errors"
	"math"
)

// A4 page size in PostScript points
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// Default page chrome, in points
const (
	DefaultMargin      = 20.0
	DefaultTitleHeight = 30.0
	DefaultSpacing     = 5.0
)

// ErrNoItems is returned when a grid is requested for zero items
var ErrNoItems = errors.New("layout: no items to place")

// PageSpec describes the page a grid is laid out on. Margin applies to
// all four edges and TitleHeight is reserved below the top margin.
type PageSpec struct {
	Width       float64
	Height      float64
	Margin      float64
	TitleHeight float64
	Spacing     float64
}

// A4Portrait returns the page used for cohort collages
func A4Portrait() PageSpec {
	return PageSpec{
		Width:       A4Width,
		Height:      A4Height,
		Margin:      DefaultMargin,
		TitleHeight: DefaultTitleHeight,
		Spacing:     DefaultSpacing,
	}
}

// A4Landscape returns the same page turned a quarter turn
func A4Landscape() PageSpec {
	p := A4Portrait()
	p.Width, p.Height = p.Height, p.Width
	return p
}

// usable returns the area left for grid cells
func (p PageSpec) usable() (w, h float64) {
	return p.Width - 2*p.Margin, p.Height - 2*p.Margin - p.TitleHeight
}

// Grid is a computed collage layout. Items fill cells row by row and
// every image is drawn at the shared scaled size, centered in its cell.
type Grid struct {
	Rows  int
	Cols  int
	Items int

	CellWidth   float64
	CellHeight  float64
	ImageWidth  float64
	ImageHeight float64

	page PageSpec
}

// Empty returns the number of unused cells
func (g *Grid) Empty() int {
	return g.Rows*g.Cols - g.Items
}

// Cell returns the row and column of item i in row-major order
func (g *Grid) Cell(i int) (row, col int) {
	return i / g.Cols, i % g.Cols
}

// CellOrigin returns the top left page coordinates of a cell
func (g *Grid) CellOrigin(row, col int) (x, y float64) {
	x = g.page.Margin + float64(col)*(g.CellWidth+g.page.Spacing)
	y = g.page.Margin + g.page.TitleHeight + float64(row)*(g.CellHeight+g.page.Spacing)
	return x, y
}

// ImageOrigin returns the top left page coordinates of the image
// centered inside a cell
func (g *Grid) ImageOrigin(row, col int) (x, y float64) {
	cx, cy := g.CellOrigin(row, col)
	return cx + (g.CellWidth-g.ImageWidth)/2, cy + (g.CellHeight-g.ImageHeight)/2
}

// Compute finds the tall grid that shows items at the largest size.
// aspect is the item height over its width. Every column count from
// one up to ceil(sqrt(items)) is tried with the row count that fits
// all items, keeping grids at least as tall as wide. The candidate
// with the largest scaled image area wins; ties go to fewer empty
// cells, then fewer columns.
func Compute(items int, page PageSpec, aspect float64) (*Grid, error) {
	return compute(items, page, aspect, false)
}

// ComputeWide is Compute mirrored for landscape pages: row counts are
// enumerated and grids are at least as wide as tall.
func ComputeWide(items int, page PageSpec, aspect float64) (*Grid, error) {
	return compute(items, page, aspect, true)
}

func compute(items int, page PageSpec, aspect float64, wide bool) (*Grid, error) {
	if items <= 0 {
		return nil, ErrNoItems
	}

	availW, availH := page.usable()
	limit := int(math.Ceil(math.Sqrt(float64(items))))

	var best *Grid
	var bestArea float64
	for minor := 1; minor <= limit; minor++ {
		major := (items + minor - 1) / minor
		if major < minor {
			continue
		}
		rows, cols := major, minor
		if wide {
			rows, cols = minor, major
		}

		g := &Grid{Rows: rows, Cols: cols, Items: items, page: page}
		g.CellWidth = (availW - float64(cols-1)*page.Spacing) / float64(cols)
		g.CellHeight = (availH - float64(rows-1)*page.Spacing) / float64(rows)
		g.ImageWidth = math.Min(g.CellWidth, g.CellHeight/aspect)
		if g.ImageWidth < 0 {
			g.ImageWidth = 0
		}
		g.ImageHeight = g.ImageWidth * aspect

		area := g.ImageWidth * g.ImageHeight
		if best == nil || better(g, area, best, bestArea, wide) {
			best, bestArea = g, area
		}
	}
	return best, nil
}

// better reports whether candidate g beats the current best. Larger
// image area wins; on equal area the grid with fewer empty cells is
// preferred, then the one with fewer entries along the enumerated
// axis.
func better(g *Grid, area float64, best *Grid, bestArea float64, wide bool) bool {
	if area != bestArea {
		return area > bestArea
	}
	if g.Empty() != best.Empty() {
		return g.Empty() < best.Empty()
	}
	if wide {
		return g.Rows < best.Rows
	}
	return g.Cols < best.Cols
}
