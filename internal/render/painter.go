//go:build ebiten

package render

import (
	"gol2/internal/board"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads board colors into a single image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a board of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit paints b into dst at the given scale. Boards of another size are
// ignored; callers rebuild the painter after a resize.
func (gp *GridPainter) Blit(dst *ebiten.Image, b *board.Board, p *Palette, scale int) {
	if b.Width() != gp.w || b.Height() != gp.h {
		return
	}
	FillRGBA(gp.buf, b.Cells(), p)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
