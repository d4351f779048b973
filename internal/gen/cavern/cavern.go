// Package cavern alternates cellular-automata smoothing with drunk-agent
// carving over a single grid.
package cavern

import (
	"fmt"
	"math/rand/v2"

	"mapgen/internal/core"
	"mapgen/internal/gen/drunkard"
	pcore "mapgen/pkg/core"
)

// Name is the registry key of the generator.
const Name = "drunkca"

// Generator owns the grid, the agent and the random source of one run.
type Generator struct {
	cfg Config

	grid  *core.Grid
	agent drunkard.Agent
	rng   *rand.Rand

	iteration int
	last      drunkard.Report
	err       error
}

// New validates cfg and seeds the initial grid.
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g := &Generator{cfg: cfg, grid: grid}
	g.Reset(0)
	return g, nil
}

// Name returns the generator identifier.
func (g *Generator) Name() string { return Name }

// Size reports the grid dimensions.
func (g *Generator) Size() core.Size { return core.Size{W: g.cfg.Width, H: g.cfg.Height} }

// Cells exposes the current grid values in row-major order.
func (g *Generator) Cells() []uint8 { return g.grid.Cells() }

// Grid exposes the current grid.
func (g *Generator) Grid() *core.Grid { return g.grid }

// Agent returns the carver position that the next iteration starts from.
func (g *Generator) Agent() drunkard.Agent { return g.agent }

// Iteration returns how many iterations have completed since the last Reset.
func (g *Generator) Iteration() int { return g.iteration }

// Done reports whether the configured number of iterations has been reached
// or a step has failed.
func (g *Generator) Done() bool { return g.err != nil || g.iteration >= g.cfg.Iterations }

// Err returns the error that stopped the run, if any.
func (g *Generator) Err() error { return g.err }

// LastReport describes the most recent carve.
func (g *Generator) LastReport() drunkard.Report { return g.last }

// Config returns the configuration the generator runs with.
func (g *Generator) Config() Config { return g.cfg }

// Seed returns the seed of the current run.
func (g *Generator) Seed() int64 { return g.cfg.Seed }

// Reset reseeds the random source, refills the grid with noise and puts the
// agent back at the centre. A zero seed reuses the configured seed.
func (g *Generator) Reset(seed int64) {
	if seed != 0 {
		g.cfg.Seed = seed
	}
	g.rng = pcore.NewRNG(g.cfg.Seed).Source()
	pcore.FillChance(g.rng, g.grid.Cells(), g.cfg.FillChance)
	g.agent = drunkard.Agent{X: g.cfg.Width / 2, Y: g.cfg.Height / 2}
	g.iteration = 0
	g.last = drunkard.Report{}
	g.err = nil
}

// Step performs one iteration: a smoothing pass followed by a carve that
// starts where the previous carve left the agent. A failed step leaves the
// grid and agent untouched, records the error in Err and ends the run.
func (g *Generator) Step() {
	if g.err != nil {
		return
	}
	if err := g.step(); err != nil {
		g.err = fmt.Errorf("iteration %d: %w", g.iteration+1, err)
	}
}

func (g *Generator) step() error {
	smoothed, err := g.cfg.Smooth.Apply(g.grid)
	if err != nil {
		return err
	}

	res := drunkard.Carver{Params: g.cfg.Carve}.Carve(smoothed, g.agent, g.rng)
	// Copy back so callers holding Cells() keep seeing the live grid.
	if err := g.grid.CopyFrom(res.Grid); err != nil {
		return err
	}
	g.agent = res.Agent
	g.last = res.Report
	g.iteration++
	return nil
}

// Run steps until the configured iteration count is reached, calling observe
// after every successful iteration when it is non-nil. It returns the error
// that stopped the run early, if any.
func (g *Generator) Run(observe func(iteration int, g *Generator)) error {
	for !g.Done() {
		g.Step()
		if g.err != nil {
			return g.err
		}
		if observe != nil {
			observe(g.iteration, g)
		}
	}
	return g.err
}

func init() {
	core.Register(Name, func(cfg map[string]string) (core.Sim, error) {
		g, err := New(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}

var _ core.Sim = (*Generator)(nil)
