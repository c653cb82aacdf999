package world

import "fmt"

// Grid is a dense rows×cols field of integer height levels. It is a plain
// value store: bounds policy (absorb versus reject) lives in Store, which
// owns the two Grid instances making up the edit model.
type Grid struct {
	cols, rows int
	cells      []int
}

// NewGrid returns a grid of the passed dimensions with every cell at
// DefaultHeight. It returns an error for non-positive dimensions: grid
// allocation with bad dimensions is caller misuse, not user input.
func NewGrid(cols, rows int) (*Grid, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("world: invalid grid dimensions %dx%d", cols, rows)
	}
	g := &Grid{cols: cols, rows: rows, cells: make([]int, cols*rows)}
	if DefaultHeight != 0 {
		for i := range g.cells {
			g.cells[i] = DefaultHeight
		}
	}
	return g, nil
}

// Cols returns the number of columns of the grid.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the number of rows of the grid.
func (g *Grid) Rows() int { return g.rows }

// Contains reports whether (x, y) lies within the grid.
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the level at (x, y), or DefaultHeight when out of range.
func (g *Grid) At(x, y int) int {
	if !g.Contains(x, y) {
		return DefaultHeight
	}
	return g.cells[y*g.cols+x]
}

// Set writes a level at (x, y), clamped into [MinHeight, MaxHeight].
// Out-of-range coordinates are a no-op, keeping painting tolerant of stale
// cursor input.
func (g *Grid) Set(x, y, h int) {
	if !g.Contains(x, y) {
		return
	}
	g.cells[y*g.cols+x] = clampHeight(h)
}

// Fill sets every cell to the passed level, clamped.
func (g *Grid) Fill(h int) {
	h = clampHeight(h)
	for i := range g.cells {
		g.cells[i] = h
	}
}

// CopyFrom overwrites this grid's cells with those of src. Both grids must
// have identical dimensions; Store guarantees this for base/working.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.cells, src.cells)
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{cols: g.cols, rows: g.rows, cells: make([]int, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// resized returns a new cols×rows grid holding this grid's overlapping
// top-left region, with all new cells at DefaultHeight.
func (g *Grid) resized(cols, rows int) (*Grid, error) {
	n, err := NewGrid(cols, rows)
	if err != nil {
		return nil, err
	}
	for y := 0; y < min(rows, g.rows); y++ {
		for x := 0; x < min(cols, g.cols); x++ {
			n.cells[y*cols+x] = g.cells[y*g.cols+x]
		}
	}
	return n, nil
}
