// Package board holds the toroidal cell grid the rules operate on.
package board

import (
	"strings"

	"gol2/internal/core"
	pcore "gol2/pkg/core"
)

// Board is a toroidal grid of cells. Coordinates passed to its methods are
// wrapped onto [0,W) x [0,H) unless documented otherwise.
type Board struct {
	grid *core.Grid[Cell]
}

// New returns a board with every cell dead and cold. Width and height must be
// positive.
func New(width, height int) *Board {
	return &Board{grid: core.NewGrid[Cell](width, height)}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.grid.W }

// Height returns the number of rows.
func (b *Board) Height() int { return b.grid.H }

// Size reports the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.grid.W, H: b.grid.H} }

// Cells exposes the row-major backing slice, index x + y*Width.
func (b *Board) Cells() []Cell { return b.grid.Cells() }

// Get returns the cell at the wrapped coordinates.
func (b *Board) Get(x, y int) Cell { return b.grid.At(x, y) }

// Cell returns a pointer to the cell at the wrapped coordinates.
func (b *Board) Cell(x, y int) *Cell { return b.grid.Ptr(x, y) }

// IsAlive reports the alive flag at the wrapped coordinates.
func (b *Board) IsAlive(x, y int) bool { return b.grid.At(x, y).Alive }

// Set changes the alive flag at the wrapped coordinates. Heat is untouched.
func (b *Board) Set(x, y int, alive bool) {
	b.grid.Ptr(x, y).Alive = alive
}

// IsInside reports whether (x, y) lies on the board without wrapping.
func (b *Board) IsInside(x, y int) bool { return b.grid.Inside(x, y) }

// CountNeighbors returns the number of live cells among the eight wrapped
// Moore neighbours of (x, y).
func (b *Board) CountNeighbors(x, y int) int {
	w, h := b.grid.W, b.grid.H
	x, y = b.grid.Wrap(x, y)
	cells := b.grid.Cells()
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := (y + dy + h) % h
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			if cells[ny*w+nx].Alive {
				n++
			}
		}
	}
	return n
}

// UpdateHeat applies the heat policy to the cell at (x, y).
func (b *Board) UpdateHeat(x, y int, cfg HeatConfig) {
	b.grid.Ptr(x, y).UpdateHeat(cfg)
}

// UpdateAllHeat applies the heat policy to every cell.
func (b *Board) UpdateAllHeat(cfg HeatConfig) {
	cells := b.grid.Cells()
	for i := range cells {
		cells[i].UpdateHeat(cfg)
	}
}

// Randomize flips an unbiased coin for every cell and marks it fully hot.
func (b *Board) Randomize(rng *pcore.RNG) {
	cells := b.grid.Cells()
	for i := range cells {
		cells[i].Alive = rng.Bool()
		cells[i].Heat = MaxHeat
	}
}

// Clear kills every cell and resets its heat.
func (b *Board) Clear() {
	b.grid.Fill(Cell{})
}

// Population returns the number of live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.grid.Cells() {
		if c.Alive {
			n++
		}
	}
	return n
}

// Clone returns a deep copy.
func (b *Board) Clone() *Board {
	return &Board{grid: b.grid.Clone()}
}

// CopyFrom overwrites b with the contents of src. Both boards must share
// dimensions.
func (b *Board) CopyFrom(src *Board) {
	b.grid.CopyFrom(src.grid)
}

// SameSize reports whether o has the same dimensions as b.
func (b *Board) SameSize(o *Board) bool {
	return o != nil && b.grid.W == o.grid.W && b.grid.H == o.grid.H
}

// String renders live cells as '#' and dead cells as ' ', one row per line.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.grid.W + 1) * b.grid.H)
	for y := 0; y < b.grid.H; y++ {
		for x := 0; x < b.grid.W; x++ {
			if b.IsAlive(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
