// Package console prints generation runs as plain text banners and grids.
package console

import (
	"bufio"
	"fmt"
	"io"

	"mapgen/internal/analysis"
	"mapgen/internal/core"
)

const (
	titleBanner    = "--- CELLULAR AUTOMATA AND DRUNK AGENT SIMULATION ---"
	mapHeader      = "--- Current Map ---"
	mapFooter      = "-------------------"
	finishedBanner = "--- Simulation Finished ---"
)

// Printer writes run output to an io.Writer. The first write error is kept
// and returned by every later call.
type Printer struct {
	w   *bufio.Writer
	err error
}

// NewPrinter wraps w in a buffered Printer.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: bufio.NewWriter(w)}
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Flush writes any buffered output.
func (p *Printer) Flush() error {
	if p.err != nil {
		return p.err
	}
	p.err = p.w.Flush()
	return p.err
}

// Title prints the run banner.
func (p *Printer) Title() error {
	p.printf("%s\n", titleBanner)
	return p.Flush()
}

// Map prints g framed by the map header and footer, one row per line with
// every value followed by a space.
func (p *Printer) Map(g *core.Grid) error {
	p.printf("%s\n", mapHeader)
	for _, row := range g.Rows() {
		for _, v := range row {
			p.printf("%d ", v)
		}
		p.printf("\n")
	}
	p.printf("%s\n", mapFooter)
	return p.Flush()
}

// Initial prints the seeded grid before any iteration.
func (p *Printer) Initial(g *core.Grid) error {
	p.printf("\nInitial map state:\n")
	return p.Map(g)
}

// Iteration prints the grid after iteration n (1-based).
func (p *Printer) Iteration(n int, g *core.Grid) error {
	p.printf("\n--- Iteration %d ---\n", n)
	return p.Map(g)
}

// Finished prints the closing banner.
func (p *Printer) Finished() error {
	p.printf("\n%s\n", finishedBanner)
	return p.Flush()
}

// Stats prints a one-line region summary.
func (p *Printer) Stats(s analysis.Summary) error {
	largest := s.Largest()
	p.printf("value %d: %d cells in %d regions, largest %d at (%d,%d)-(%d,%d)\n",
		s.Value, s.Cells, len(s.Regions), largest.Cells,
		largest.Min.X, largest.Min.Y, largest.Max.X, largest.Max.Y)
	return p.Flush()
}

// Params prints a parameter snapshot, one group per line.
func (p *Printer) Params(snap core.ParameterSnapshot) error {
	for _, group := range snap.Groups {
		p.printf("%s:", group.Name)
		for _, param := range group.Params {
			p.printf(" %s=%s", param.Key, param.Value)
		}
		p.printf("\n")
	}
	return p.Flush()
}
