//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight = 16
	margin     = 6
)

// Overlay draws the status block and notifications over the board.
type Overlay struct {
	textColor color.Color
	visible   bool
	pixel     *ebiten.Image
}

// NewOverlay constructs an overlay drawing text in textColor.
func NewOverlay(textColor color.Color) *Overlay {
	o := &Overlay{textColor: textColor, visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Toggle shows or hides the status block.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw paints the status lines in the top-left corner and the notifications
// below them.
func (o *Overlay) Draw(screen *ebiten.Image, status Status, notes *Notifications) {
	var lines []string
	if o.visible {
		lines = StatusLines(status)
	}
	if notes != nil {
		lines = append(lines, notes.Lines()...)
	}
	if len(lines) == 0 {
		return
	}

	face := basicfont.Face7x13
	width := 0
	for _, l := range lines {
		if w := text.BoundString(face, l).Dx(); w > width {
			width = w
		}
	}
	o.drawBackdrop(screen, float64(width+2*margin), float64(len(lines)*lineHeight+margin))

	for i, l := range lines {
		text.Draw(screen, l, face, margin, margin+lineHeight*(i+1)-4, o.textColor)
	}
}

func (o *Overlay) drawBackdrop(screen *ebiten.Image, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.ColorScale.Scale(0, 0, 0, 0.55)
	screen.DrawImage(o.pixel, op)
}
