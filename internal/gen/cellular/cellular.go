// Package cellular smooths a binary grid with a density-threshold cellular
// automaton over a square neighbourhood.
package cellular

import (
	"errors"
	"fmt"

	"mapgen/internal/core"
)

// ErrNegativeRadius is returned for a neighbourhood radius below zero, which
// would leave the neighbourhood empty.
var ErrNegativeRadius = errors.New("neighbourhood radius must not be negative")

// Mode selects how a smoothing pass reads neighbour values.
type Mode uint8

const (
	// Snapshot computes every cell from a frozen copy of the previous state.
	Snapshot Mode = iota
	// InPlace overwrites cells as it scans, so later cells in the same pass
	// see already-updated neighbours. Faster, but the result depends on scan
	// order.
	InPlace
)

func (m Mode) String() string {
	switch m {
	case Snapshot:
		return "snapshot"
	case InPlace:
		return "inplace"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "snapshot":
		return Snapshot, true
	case "inplace", "in-place":
		return InPlace, true
	}
	return Snapshot, false
}

// Smoother applies one density-threshold pass with a fixed radius and threshold.
type Smoother struct {
	Radius    int
	Threshold float64
	Mode      Mode
}

// Apply runs one pass over g. In Snapshot mode g is left untouched and a new
// grid is returned; in InPlace mode g itself is updated and returned.
func (s Smoother) Apply(g *core.Grid) (*core.Grid, error) {
	if s.Mode == InPlace {
		if err := SmoothInPlace(g, s.Radius, s.Threshold); err != nil {
			return nil, err
		}
		return g, nil
	}
	return Smooth(g, s.Radius, s.Threshold)
}

// Density counts the cells in the (2r+1)x(2r+1) window centred on (x, y),
// the centre included. Offsets falling outside the grid count as active.
func Density(g *core.Grid, x, y, r int) (active, total int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			active += int(g.At(x+dx, y+dy))
			total++
		}
	}
	return active, total
}

// next decides a cell's new value from its neighbourhood density.
func next(g *core.Grid, x, y, r int, u float64) uint8 {
	active, total := Density(g, x, y, r)
	if float64(active)/float64(total) > u {
		return core.Active
	}
	return core.Inactive
}

// Smooth returns a new grid where each cell is Active iff the active ratio of
// its neighbourhood in src strictly exceeds u.
func Smooth(src *core.Grid, r int, u float64) (*core.Grid, error) {
	if r < 0 {
		return nil, fmt.Errorf("smooth radius %d: %w", r, ErrNegativeRadius)
	}
	dst := src.Clone()
	cells := dst.Cells()
	for y := 0; y < src.H; y++ {
		for x := 0; x < src.W; x++ {
			cells[dst.Index(x, y)] = next(src, x, y, r, u)
		}
	}
	return dst, nil
}

// SmoothInPlace applies the same rule as Smooth but writes each result
// straight back into g, scanning rows top to bottom and columns left to right.
func SmoothInPlace(g *core.Grid, r int, u float64) error {
	if r < 0 {
		return fmt.Errorf("smooth radius %d: %w", r, ErrNegativeRadius)
	}
	cells := g.Cells()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cells[g.Index(x, y)] = next(g, x, y, r, u)
		}
	}
	return nil
}
