//go:build ebiten

package ui

import (
	"mapgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const lineHeight = 14

// Overlay prints run status, and optionally the parameters, over the map.
type Overlay struct {
	sim        core.Sim
	showStatus bool
	showParams bool
}

// NewOverlay constructs an overlay for sim with the status lines visible.
func NewOverlay(sim core.Sim) *Overlay {
	return &Overlay{sim: sim, showStatus: true}
}

// Update toggles overlay sections: H hides the status, P shows parameters.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.showStatus = !o.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showParams = !o.showParams
	}
}

// Draw renders the enabled sections in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image, paused bool) {
	var lines []string
	if o.showStatus {
		lines = append(lines, StatusLines(o.sim, paused)...)
	}
	if o.showParams {
		if pp, ok := o.sim.(core.ParameterProvider); ok {
			lines = append(lines, ParamLines(pp.Parameters())...)
		}
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 4, 4+i*lineHeight)
	}
}
