//go:build ebiten

package render

import (
	"image/color"

	"mapgen/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads binary cell data into a single image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit draws cells onto dst, highlighting the marked cell with markColor.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, mark core.Point, markColor color.Color, scale int) {
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	markPixel(gp.buf, gp.w, mark.X, mark.Y, markColor)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
