// Package render maps cells to colors for the window.
package render

import (
	"image/color"

	"gol2/internal/board"
	"gol2/internal/config"
)

// Palette colors live cells, and tints dead cells towards Hot in proportion
// to their remaining heat.
type Palette struct {
	Alive color.RGBA
	dead  [256]color.RGBA
}

// NewPalette precomputes the dead-cell color for every heat level. With heat
// disabled every dead cell uses the plain dead color.
func NewPalette(alive, dead, hot color.RGBA, heat bool, intensity float64) *Palette {
	p := &Palette{Alive: alive}
	for h := range p.dead {
		if !heat || h == 0 {
			p.dead[h] = dead
			continue
		}
		p.dead[h] = blendColors(dead, hot, float64(h)/255*intensity)
	}
	return p
}

// PaletteFromConfig builds the palette described by the display and heat
// sections of cfg.
func PaletteFromConfig(cfg config.Config) *Palette {
	d := cfg.Display
	return NewPalette(d.Alive.ToRGBA(), d.Dead.ToRGBA(), d.Hot.ToRGBA(), cfg.Heat.Enabled, cfg.Heat.Intensity)
}

// ColorOf returns the display color of c.
func (p *Palette) ColorOf(c board.Cell) color.RGBA {
	if c.Alive {
		return p.Alive
	}
	return p.dead[c.Heat]
}

// FillRGBA converts cells into RGBA pixels in buf, four bytes per cell.
func FillRGBA(buf []byte, cells []board.Cell, p *Palette) {
	for i, c := range cells {
		col := p.ColorOf(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func blendColors(base, overlay color.RGBA, overlayWeight float64) color.RGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.RGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
