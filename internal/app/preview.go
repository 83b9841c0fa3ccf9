//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawPreview outlines the line that releasing the mouse would commit.
func (t *Tools) DrawPreview(screen *ebiten.Image, col color.Color, scale int) {
	start, end, ok := t.Pending()
	if !ok {
		return
	}
	half := float32(scale) / 2
	vector.StrokeLine(screen,
		float32(start.X*scale)+half, float32(start.Y*scale)+half,
		float32(end.X*scale)+half, float32(end.Y*scale)+half,
		float32(scale), col, false)
}
