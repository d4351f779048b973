// Package drunkard carves corridors and rooms into a grid by walking a
// random agent across it.
package drunkard

import (
	"math/rand/v2"

	"mapgen/internal/core"

	"github.com/zyedidia/generic/mapset"
)

// Direction is one of the four axis-aligned headings the agent can take.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var offsets = [4]core.Point{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Offset returns the unit step for d.
func (d Direction) Offset() core.Point { return offsets[d&3] }

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "?"
}

func randomDirection(rng *rand.Rand) Direction {
	return Direction(rng.IntN(4))
}

// Agent is the walker position carried from one carve to the next.
type Agent struct {
	X, Y int
}

// Point returns the agent position as a grid coordinate.
func (a Agent) Point() core.Point { return core.Point{X: a.X, Y: a.Y} }

// Params configures a carve.
type Params struct {
	Outer int // walks per carve (J)
	Inner int // steps per walk (I)

	RoomSizeX int
	RoomSizeY int

	ProbGenerateRoom    float64
	ProbIncreaseRoom    float64
	ProbChangeDirection float64
	ProbIncreaseChange  float64
}

// Report summarises what a carve did.
type Report struct {
	Start   core.Point // agent position after any reseed
	Steps   int        // inner steps taken
	Rooms   int        // rooms stamped
	Bounces int        // walks cut short by the grid edge
	Carved  int        // distinct cells switched from inactive to active
}

// Result is the outcome of one carve.
type Result struct {
	Grid   *core.Grid
	Agent  Agent
	Report Report
}

// Carver walks an agent over a grid, activating the cells it visits and
// occasionally stamping rectangular rooms.
type Carver struct {
	Params
}

// walk holds the per-carve state that is discarded when the carve ends.
type walk struct {
	p   Params
	rng *rand.Rand
	g   *core.Grid

	agent    Agent
	dir      Direction
	roomProb float64
	dirProb  float64

	carved mapset.Set[core.Point]
	report Report
}

// Carve walks the agent over a copy of src and returns the carved copy along
// with the agent's final position. src is not modified. An agent outside the
// grid is first moved to a uniformly random cell.
func (c Carver) Carve(src *core.Grid, agent Agent, rng *rand.Rand) Result {
	g := src.Clone()
	if !g.InBounds(agent.X, agent.Y) {
		agent = Agent{X: rng.IntN(g.W), Y: rng.IntN(g.H)}
	}

	w := newWalk(c.Params, g, agent, rng)
	for j := 0; j < c.Outer; j++ {
		w.run()
	}

	w.report.Carved = w.carved.Size()
	return Result{Grid: g, Agent: w.agent, Report: w.report}
}

func newWalk(p Params, g *core.Grid, agent Agent, rng *rand.Rand) *walk {
	w := &walk{
		p:        p,
		rng:      rng,
		g:        g,
		agent:    agent,
		roomProb: p.ProbGenerateRoom,
		dirProb:  p.ProbChangeDirection,
		dir:      randomDirection(rng),
		carved:   mapset.New[core.Point](),
	}
	w.report.Start = agent.Point()
	return w
}

// run performs one walk of up to Inner steps, stopping early if the next
// step would leave the grid.
func (w *walk) run() {
	for i := 0; i < w.p.Inner; i++ {
		w.report.Steps++
		w.mark(w.agent.X, w.agent.Y)

		if w.rng.Float64() < w.roomProb {
			w.stampRoom(w.agent.X, w.agent.Y)
			w.report.Rooms++
			w.roomProb = w.p.ProbGenerateRoom
		} else {
			w.roomProb = min(1, w.roomProb+w.p.ProbIncreaseRoom)
		}

		if w.rng.Float64() < w.dirProb {
			w.dir = randomDirection(w.rng)
			w.dirProb = w.p.ProbChangeDirection
		} else {
			w.dirProb = min(1, w.dirProb+w.p.ProbIncreaseChange)
		}

		off := w.dir.Offset()
		nx, ny := w.agent.X+off.X, w.agent.Y+off.Y
		if !w.g.InBounds(nx, ny) {
			w.dir = randomDirection(w.rng)
			w.report.Bounces++
			return
		}
		w.agent.X, w.agent.Y = nx, ny
	}
}

// stampRoom activates a RoomSizeX by RoomSizeY rectangle centred on (cx, cy),
// clipped to the grid.
func (w *walk) stampRoom(cx, cy int) {
	x0, x1 := span(cx, w.p.RoomSizeX, w.g.W)
	y0, y1 := span(cy, w.p.RoomSizeY, w.g.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			w.mark(x, y)
		}
	}
}

// span returns the clipped [start, end) range of a run of size cells centred
// on c within [0, limit).
func span(c, size, limit int) (int, int) {
	start := max(0, c-size/2)
	return start, min(limit, start+size)
}

func (w *walk) mark(x, y int) {
	if !w.g.InBounds(x, y) {
		return
	}
	if w.g.At(x, y) == core.Inactive {
		w.carved.Put(core.Point{X: x, Y: y})
	}
	w.g.Set(x, y, core.Active)
}
