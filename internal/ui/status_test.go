package ui

import (
	"slices"
	"strings"
	"testing"

	"mapgen/internal/gen/cavern"
)

func TestStatusLines(t *testing.T) {
	cfg := cavern.DefaultConfig()
	cfg.Seed = 3
	gen, err := cavern.New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	lines := StatusLines(gen, true)
	want := []string{
		"drunkca 20x10",
		"iteration 0 (paused)",
		"agent (10,5)",
		"steps 0 rooms 0 bounces 0 carved 0",
	}
	if !slices.Equal(lines, want) {
		t.Fatalf("got %q", lines)
	}

	gen.Run(nil)
	if got := StatusLines(gen, false)[1]; got != "iteration 5 (done)" {
		t.Fatalf("progress line %q", got)
	}
}

func TestParamLines(t *testing.T) {
	gen, err := cavern.New(cavern.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	lines := ParamLines(gen.Parameters())
	if lines[0] != "[Grid]" {
		t.Fatalf("first line %q", lines[0])
	}
	if !slices.ContainsFunc(lines, func(l string) bool { return strings.HasPrefix(l, "  Threshold: 0.5") }) {
		t.Fatalf("threshold missing from %q", lines)
	}
}
