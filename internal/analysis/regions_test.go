package analysis

import (
	"testing"

	"mapgen/internal/core"
)

func gridFrom(t *testing.T, rows []string) *core.Grid {
	t.Helper()
	g, err := core.NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatal(err)
	}
	for y, row := range rows {
		for x, c := range row {
			if c == '1' {
				g.Set(x, y, core.Active)
			}
		}
	}
	return g
}

func TestSurveyFindsRegions(t *testing.T) {
	g := gridFrom(t, []string{
		"11000",
		"11010",
		"00010",
		"10011",
	})

	s := Survey(g, core.Active)
	if s.Cells != 9 {
		t.Fatalf("cells=%d, want 9", s.Cells)
	}
	if len(s.Regions) != 3 {
		t.Fatalf("regions=%d, want 3", len(s.Regions))
	}
	largest := s.Largest()
	if largest.Cells != 4 {
		t.Fatalf("largest=%d cells", largest.Cells)
	}
	// Two regions of four cells tie; the stable sort keeps scan order.
	if largest.Min != (core.Point{X: 0, Y: 0}) || largest.Max != (core.Point{X: 1, Y: 1}) {
		t.Fatalf("largest bounds %v..%v", largest.Min, largest.Max)
	}
	if s.Regions[2].Cells != 1 {
		t.Fatalf("smallest=%d cells", s.Regions[2].Cells)
	}
}

func TestSurveyDiagonalsAreSeparate(t *testing.T) {
	g := gridFrom(t, []string{
		"10",
		"01",
	})
	if n := len(Survey(g, core.Active).Regions); n != 2 {
		t.Fatalf("regions=%d, want 2", n)
	}
	if n := len(Survey(g, core.Inactive).Regions); n != 2 {
		t.Fatalf("inactive regions=%d, want 2", n)
	}
}

func TestSurveyEmpty(t *testing.T) {
	g := gridFrom(t, []string{"000"})
	s := Survey(g, core.Active)
	if s.Cells != 0 || len(s.Regions) != 0 || s.Largest().Cells != 0 {
		t.Fatal("no active cells means no regions")
	}
}
