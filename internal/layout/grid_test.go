package layout

import (
	"errors"
	"math"
	"testing"
)

func TestComputeZeroItems(t *testing.T) {
	_, err := Compute(0, A4Portrait(), 1.25)
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("Expected ErrNoItems, got %v", err)
	}

	_, err = ComputeWide(0, A4Landscape(), 1.25)
	if !errors.Is(err, ErrNoItems) {
		t.Errorf("Expected ErrNoItems, got %v", err)
	}
}

func TestComputeSingleItem(t *testing.T) {
	grid, err := Compute(1, A4Portrait(), 1.25)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if grid.Rows != 1 || grid.Cols != 1 {
		t.Errorf("Expected a 1x1 grid, got %dx%d", grid.Rows, grid.Cols)
	}
	if grid.Empty() != 0 {
		t.Errorf("Expected no empty cells, got %d", grid.Empty())
	}
}

func TestComputeFullCohort(t *testing.T) {
	// 74 portraits at the typical 4:5 portrait ratio: a 10x8 grid
	// shows them larger than the denser 9x9 alternative.
	grid, err := Compute(74, A4Portrait(), 1.25)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if grid.Rows != 10 || grid.Cols != 8 {
		t.Errorf("Expected a 10x8 grid, got %dx%d", grid.Rows, grid.Cols)
	}
	if grid.Empty() != 6 {
		t.Errorf("Expected 6 empty cells, got %d", grid.Empty())
	}
}

func TestComputeWideFullCohort(t *testing.T) {
	grid, err := ComputeWide(74, A4Landscape(), 1.25)
	if err != nil {
		t.Fatalf("ComputeWide failed: %v", err)
	}
	if grid.Rows != 6 || grid.Cols != 13 {
		t.Errorf("Expected a 6x13 grid, got %dx%d", grid.Rows, grid.Cols)
	}
}

func TestComputeInvariants(t *testing.T) {
	page := A4Portrait()
	availW := page.Width - 2*page.Margin
	availH := page.Height - 2*page.Margin - page.TitleHeight

	for _, aspect := range []float64{0.8, 1.0, 1.25, 1.4} {
		for n := 1; n <= 60; n++ {
			grid, err := Compute(n, page, aspect)
			if err != nil {
				t.Fatalf("Compute(%d) failed: %v", n, err)
			}

			if grid.Rows < grid.Cols {
				t.Errorf("n=%d aspect=%.2f: grid %dx%d is wider than tall", n, aspect, grid.Rows, grid.Cols)
			}
			if grid.Rows*grid.Cols < n {
				t.Errorf("n=%d: grid %dx%d cannot hold all items", n, grid.Rows, grid.Cols)
			}
			if (grid.Rows-1)*grid.Cols >= n {
				t.Errorf("n=%d: grid %dx%d has a spare row", n, grid.Rows, grid.Cols)
			}

			usedW := float64(grid.Cols)*grid.CellWidth + float64(grid.Cols-1)*page.Spacing
			usedH := float64(grid.Rows)*grid.CellHeight + float64(grid.Rows-1)*page.Spacing
			if usedW > availW+1e-6 || usedH > availH+1e-6 {
				t.Errorf("n=%d: grid overflows the usable area", n)
			}

			if grid.ImageWidth > grid.CellWidth+1e-6 || grid.ImageHeight > grid.CellHeight+1e-6 {
				t.Errorf("n=%d: image does not fit its cell", n)
			}
			if math.Abs(grid.ImageHeight-grid.ImageWidth*aspect) > 1e-9 {
				t.Errorf("n=%d: image ratio drifted from %.2f", n, aspect)
			}
		}
	}
}

func TestComputeWideInvariants(t *testing.T) {
	page := A4Landscape()
	for n := 1; n <= 60; n++ {
		grid, err := ComputeWide(n, page, 1.25)
		if err != nil {
			t.Fatalf("ComputeWide(%d) failed: %v", n, err)
		}
		if grid.Cols < grid.Rows {
			t.Errorf("n=%d: grid %dx%d is taller than wide", n, grid.Rows, grid.Cols)
		}
		if grid.Rows*grid.Cols < n {
			t.Errorf("n=%d: grid %dx%d cannot hold all items", n, grid.Rows, grid.Cols)
		}
	}
}

func TestBetterTieBreaks(t *testing.T) {
	tests := []struct {
		name     string
		g        *Grid
		area     float64
		best     *Grid
		bestArea float64
		expected bool
	}{
		{
			name:     "larger area wins",
			g:        &Grid{Rows: 3, Cols: 3, Items: 9},
			area:     100,
			best:     &Grid{Rows: 9, Cols: 1, Items: 9},
			bestArea: 50,
			expected: true,
		},
		{
			name:     "smaller area loses",
			g:        &Grid{Rows: 9, Cols: 1, Items: 9},
			area:     50,
			best:     &Grid{Rows: 3, Cols: 3, Items: 9},
			bestArea: 100,
			expected: false,
		},
		{
			name:     "equal area prefers fewer empty cells",
			g:        &Grid{Rows: 3, Cols: 3, Items: 9},
			area:     100,
			best:     &Grid{Rows: 5, Cols: 2, Items: 9},
			bestArea: 100,
			expected: true,
		},
		{
			name:     "equal area and empties prefers fewer columns",
			g:        &Grid{Rows: 4, Cols: 2, Items: 8},
			area:     100,
			best:     &Grid{Rows: 2, Cols: 4, Items: 8},
			bestArea: 100,
			expected: true,
		},
		{
			name:     "identical candidate does not replace",
			g:        &Grid{Rows: 4, Cols: 2, Items: 8},
			area:     100,
			best:     &Grid{Rows: 4, Cols: 2, Items: 8},
			bestArea: 100,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := better(tt.g, tt.area, tt.best, tt.bestArea, false)
			if result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestCellPlacement(t *testing.T) {
	page := A4Portrait()
	grid, err := Compute(6, page, 1.25)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if grid.Rows != 3 || grid.Cols != 2 {
		t.Fatalf("Expected a 3x2 grid, got %dx%d", grid.Rows, grid.Cols)
	}

	tests := []struct {
		index int
		row   int
		col   int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2, 1, 0},
		{5, 2, 1},
	}
	for _, tt := range tests {
		row, col := grid.Cell(tt.index)
		if row != tt.row || col != tt.col {
			t.Errorf("Cell(%d): expected (%d, %d), got (%d, %d)", tt.index, tt.row, tt.col, row, col)
		}
	}

	x, y := grid.CellOrigin(0, 0)
	if x != page.Margin || y != page.Margin+page.TitleHeight {
		t.Errorf("Expected the first cell at (%.1f, %.1f), got (%.1f, %.1f)",
			page.Margin, page.Margin+page.TitleHeight, x, y)
	}

	x1, _ := grid.CellOrigin(0, 1)
	if math.Abs(x1-(x+grid.CellWidth+page.Spacing)) > 1e-9 {
		t.Errorf("Expected column stride of cell width plus spacing, got %.2f", x1-x)
	}

	ix, iy := grid.ImageOrigin(0, 0)
	if ix < x || iy < y {
		t.Error("Expected the image inside its cell")
	}
	wantX := x + (grid.CellWidth-grid.ImageWidth)/2
	if math.Abs(ix-wantX) > 1e-9 {
		t.Errorf("Expected the image centered at x=%.2f, got %.2f", wantX, ix)
	}
}

func TestA4Landscape(t *testing.T) {
	p := A4Landscape()
	if p.Width != A4Height || p.Height != A4Width {
		t.Errorf("Expected a rotated A4 page, got %.2fx%.2f", p.Width, p.Height)
	}
}
