//go:build ebiten

package app

import (
	"image/color"
	"time"

	"mapgen/internal/core"
	"mapgen/internal/gen/drunkard"
	"mapgen/internal/render"
	"mapgen/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type doneReporter interface {
	Done() bool
}

type agentReporter interface {
	Agent() drunkard.Agent
}

// Game adapts a map generator to the ebiten.Game interface, stepping it at a
// fixed number of iterations per second until it reports done.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	pacer   *core.FixedStep

	onColor    color.Color
	offColor   color.Color
	agentColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided generator.
func New(sim core.Sim, scale, ips int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H)
	return &Game{
		sim:        sim,
		painter:    gp,
		overlay:    ui.NewOverlay(sim),
		pacer:      core.NewFixedStep(ips),
		onColor:    color.White,
		offColor:   color.Black,
		agentColor: color.RGBA{R: 220, G: 60, B: 60, A: 255},
		scale:      scale,
		seed:       seed,
	}
}

// Reset reinitializes the generator with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

func (g *Game) done() bool {
	d, ok := g.sim.(doneReporter)
	return ok && d.Done()
}

// Update handles per-frame input and advances the generator when due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()

	due := g.pacer.Due()
	if g.done() {
		g.tickOnce = false
		return nil
	}
	if (!g.paused && due) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the grid, the agent and the overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	mark := core.Point{X: -1, Y: -1}
	if a, ok := g.sim.(agentReporter); ok {
		mark = a.Agent().Point()
	}
	g.painter.Blit(screen, g.sim.Cells(), g.onColor, g.offColor, mark, g.agentColor, g.scale)
	g.overlay.Draw(screen, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
