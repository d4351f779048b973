package core

import (
	"errors"
	"fmt"
	"slices"
)

// Cell values. Out-of-bounds cells read as Active wherever a neighbourhood is
// counted, so borders close up under smoothing.
const (
	Inactive uint8 = 0
	Active   uint8 = 1
)

var (
	// ErrInvalidSize is returned when a grid is requested with a non-positive dimension.
	ErrInvalidSize = errors.New("grid dimensions must be positive")
	// ErrSizeMismatch is returned when two grids of different dimensions are combined.
	ErrSizeMismatch = errors.New("grid dimensions differ")
)

// Point is an (x, y) cell coordinate. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Grid stores a 2D grid of binary cell values in row-major order. Its
// dimensions are fixed for its lifetime.
type Grid struct {
	W, H int
	data []uint8
}

// NewGrid allocates an all-Inactive grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidSize)
	}
	return &Grid{W: w, H: h, data: make([]uint8, w*h)}, nil
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at (x, y). Out-of-bounds reads return Active.
func (g *Grid) At(x, y int) uint8 {
	if !g.InBounds(x, y) {
		return Active
	}
	return g.data[y*g.W+x]
}

// Set writes v at (x, y) and reports whether the cell was in bounds.
func (g *Grid) Set(x, y int, v uint8) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.data[y*g.W+x] = v
	return true
}

// Fill sets every cell to v.
func (g *Grid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() { g.Fill(Inactive) }

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{W: g.W, H: g.H, data: slices.Clone(g.data)}
}

// CopyFrom overwrites g with the contents of src.
func (g *Grid) CopyFrom(src *Grid) error {
	if src.W != g.W || src.H != g.H {
		return fmt.Errorf("copy %dx%d into %dx%d: %w", src.W, src.H, g.W, g.H, ErrSizeMismatch)
	}
	copy(g.data, src.data)
	return nil
}

// Rows returns the grid as H rows of W values each. The rows alias the
// backing storage.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.H)
	for y := range rows {
		rows[y] = g.data[y*g.W : (y+1)*g.W : (y+1)*g.W]
	}
	return rows
}

// Count returns the number of cells holding v.
func (g *Grid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	return g.W == o.W && g.H == o.H && slices.Equal(g.data, o.data)
}
