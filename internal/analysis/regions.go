// Package analysis surveys generated grids for connected regions.
package analysis

import (
	"sort"

	"mapgen/internal/core"

	"github.com/zyedidia/generic/mapset"
)

// Region is a 4-connected group of equal cells with its bounding box.
type Region struct {
	Cells    int
	Min, Max core.Point
}

// Summary describes the regions formed by one cell value.
type Summary struct {
	Value   uint8
	Cells   int
	Regions []Region // largest first
}

// Largest returns the biggest region, or the zero Region when there is none.
func (s Summary) Largest() Region {
	if len(s.Regions) == 0 {
		return Region{}
	}
	return s.Regions[0]
}

var neighbours = [4]core.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// Survey flood-fills every region of cells equal to v.
func Survey(g *core.Grid, v uint8) Summary {
	s := Summary{Value: v}
	visited := mapset.New[core.Point]()

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := core.Point{X: x, Y: y}
			if g.At(x, y) != v || visited.Has(p) {
				continue
			}
			r := fill(g, p, v, visited)
			s.Cells += r.Cells
			s.Regions = append(s.Regions, r)
		}
	}

	sort.SliceStable(s.Regions, func(i, j int) bool {
		return s.Regions[i].Cells > s.Regions[j].Cells
	})
	return s
}

func fill(g *core.Grid, start core.Point, v uint8, visited mapset.Set[core.Point]) Region {
	r := Region{Min: start, Max: start}
	queue := []core.Point{start}
	visited.Put(start)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		r.Cells++
		r.Min.X, r.Min.Y = min(r.Min.X, p.X), min(r.Min.Y, p.Y)
		r.Max.X, r.Max.Y = max(r.Max.X, p.X), max(r.Max.Y, p.Y)

		for _, d := range neighbours {
			n := core.Point{X: p.X + d.X, Y: p.Y + d.Y}
			if !g.InBounds(n.X, n.Y) || g.At(n.X, n.Y) != v || visited.Has(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}
	return r
}
