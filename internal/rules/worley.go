package rules

import (
	"math"

	"gol2/internal/board"
	"gol2/internal/core"
)

// worleyCellsPerSeed sets the seed density of the Worley rule.
const worleyCellsPerSeed = 400

// worleyLines redraws the board every tick as a Voronoi diagram of freshly
// scattered seeds: the interior is dithered by distance to the nearest seed
// and cells whose right or lower neighbour belongs to another seed are forced
// alive, tracing the region borders. Distances are plain Cartesian.
func worleyLines(b *board.Board, heat board.HeatConfig, env *Env) {
	b.Clear()

	w, h := b.Width(), b.Height()
	total := w * h
	n := total / worleyCellsPerSeed
	if n < 1 {
		n = 1
	}
	seeds := make([][2]int, n)
	for i := range seeds {
		seeds[i] = [2]int{env.RNG.IntN(w), env.RNG.IntN(h)}
	}

	if env.owners == nil || env.owners.W != w || env.owners.H != h {
		env.owners = core.NewGrid[int32](w, h)
	}
	owners := env.owners.Cells()
	dist := make([]float64, total)
	maxDist := 0.0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best, bestD := 0, math.MaxInt
			for i, s := range seeds {
				dx, dy := x-s[0], y-s[1]
				if d := dx*dx + dy*dy; d < bestD {
					best, bestD = i, d
				}
			}
			idx := y*w + x
			owners[idx] = int32(best)
			dist[idx] = math.Sqrt(float64(bestD))
			if dist[idx] > maxDist {
				maxDist = dist[idx]
			}
		}
	}

	cells := b.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			v := 0.0
			if maxDist > 0 {
				v = dist[idx] / maxDist
			}
			alive := Dither(x, y, v)
			if x+1 < w && owners[idx+1] != owners[idx] {
				alive = true
			}
			if y+1 < h && owners[idx+w] != owners[idx] {
				alive = true
			}
			c := &cells[idx]
			c.Alive = alive
			if heat.Enabled {
				c.UpdateHeat(heat)
			}
		}
	}
}
