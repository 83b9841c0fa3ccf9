package rules

import (
	"math"

	"gol2/internal/board"
)

// CustomRule is a whole-board transformation applied in place of the
// neighbour-count table. Unlike tables these may draw from env.RNG.
type CustomRule struct {
	Name  string
	Apply func(b *board.Board, heat board.HeatConfig, env *Env)
}

// CustomRules is the fixed, ordered set of custom rules.
var CustomRules = []CustomRule{
	{Name: "Falling stars", Apply: fallingStars},
	{Name: "Maze cycle", Apply: mazeCycle},
	{Name: "Noise", Apply: noise},
	{Name: "Worley lines", Apply: worleyLines},
	{Name: "Space", Apply: space},
	{Name: "Perlin noise", Apply: perlinNoise},
}

const (
	fallingStarsErosion = 40
	fallingStarsSpawn   = 2000
	fallingStarsCooling = 10

	mazeCycleSeedCells   = 6
	mazeCycleSeedRadius  = 2
	mazeCycleHeatGain    = 5
	mazeCycleRespawnHeat = 100

	noiseFlip = 500

	spaceJitter = 10

	perlinFrequency = 0.05
	perlinTimeScale = 0.4
)

// fallingStars erodes random cells, then lets every live cell drop one row if
// the cell below is free, dying in place otherwise. Heat is always tracked,
// whether or not heat is enabled, and every cell then cools by an extra 10.
func fallingStars(b *board.Board, heat board.HeatConfig, env *Env) {
	cells := b.Cells()
	for i := range cells {
		if env.RNG.OneIn(fallingStarsErosion) {
			cells[i].Alive = false
		}
	}

	old := env.Freeze(b)
	w, h := b.Width(), b.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if env.RNG.OneIn(fallingStarsSpawn) {
				b.Set(x, y, true)
			}
			if old.IsAlive(x, y) {
				if !old.IsAlive(x, y+1) {
					b.Set(x, y+1, true)
				}
				b.Set(x, y, false)
			}

			c := b.Cell(x, y)
			c.UpdateHeat(heat)
			c.Heat = board.SubHeat(c.Heat, fallingStarsCooling)
		}
	}
}

// mazeCycleTable is the Maze table the maze cycle rule is built on.
var mazeCycleTable = MustParse("12345/3")

// mazeCycle keeps a maze growing from the centre while heat works as a
// lifetime and a refractory period: a wall burns out when its heat saturates
// and the spot cannot respawn until it has cooled below mazeCycleRespawnHeat.
// Heat here is rule state, so it is tracked whether or not the heat display
// is enabled.
func mazeCycle(b *board.Board, _ board.HeatConfig, env *Env) {
	w, h := b.Width(), b.Height()
	cx, cy := w/2, h/2
	span := 2*mazeCycleSeedRadius + 1
	for i := 0; i < mazeCycleSeedCells; i++ {
		dx := env.RNG.IntN(span) - mazeCycleSeedRadius
		dy := env.RNG.IntN(span) - mazeCycleSeedRadius
		b.Set(cx+dx, cy+dy, true)
	}

	old := env.Freeze(b)
	cells := b.Cells()
	prev := old.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			n := old.CountNeighbors(x, y)
			was := prev[i]
			c := &cells[i]
			if was.Alive {
				c.Alive = mazeCycleTable.Survive[n] && was.Heat < board.MaxHeat
			} else {
				c.Alive = mazeCycleTable.Spawn[n] && was.Heat < mazeCycleRespawnHeat
			}
			if c.Alive {
				c.Heat = board.AddHeat(c.Heat, mazeCycleHeatGain)
			} else {
				c.Heat = board.SubHeat(c.Heat, 1)
			}
		}
	}
}

// noise flips each cell with a small independent probability.
func noise(b *board.Board, heat board.HeatConfig, env *Env) {
	cells := b.Cells()
	for i := range cells {
		c := &cells[i]
		if env.RNG.OneIn(noiseFlip) {
			c.Alive = !c.Alive
		}
		if heat.Enabled {
			c.UpdateHeat(heat)
		}
	}
}

type move struct {
	fromX, fromY int
	toX, toY     int
}

// space moves every live cell one step along a randomly chosen axis, away
// from an occupied neighbour (or occasionally at random) into a free cell.
// Moves are planned against the frozen board and applied afterwards; a move
// whose target was taken earlier in the same batch is dropped, so the
// population is conserved.
func space(b *board.Board, heat board.HeatConfig, env *Env) {
	old := env.Freeze(b)
	w, h := b.Width(), b.Height()
	moves := env.moves[:0]
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !old.IsAlive(x, y) {
				continue
			}
			ax, ay := 1, 0
			if env.RNG.Bool() {
				ax, ay = 0, 1
			}
			if env.RNG.Bool() {
				ax, ay = -ax, -ay
			}
			for attempt := 0; attempt < 2; attempt++ {
				tx, ty := x+ax, y+ay
				if !old.IsAlive(tx, ty) && (old.IsAlive(x-ax, y-ay) || env.RNG.OneIn(spaceJitter)) {
					moves = append(moves, move{fromX: x, fromY: y, toX: tx, toY: ty})
					break
				}
				ax, ay = -ax, -ay
			}
		}
	}

	for _, m := range moves {
		if !b.IsAlive(m.fromX, m.fromY) || b.IsAlive(m.toX, m.toY) {
			continue
		}
		b.Set(m.fromX, m.fromY, false)
		b.Set(m.toX, m.toY, true)
	}
	env.moves = moves

	if heat.Enabled {
		b.UpdateAllHeat(heat)
	}
}

// perlinNoise dithers the magnitude of an animated 4D coherent-noise field.
// The fourth axis follows the engine clock.
func perlinNoise(b *board.Board, heat board.HeatConfig, env *Env) {
	t := env.Elapsed().Seconds() * perlinTimeScale
	w, h := b.Width(), b.Height()
	cells := b.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := math.Abs(env.Noise.Eval4(float64(x)*perlinFrequency, float64(y)*perlinFrequency, 0, t))
			c := &cells[y*w+x]
			c.Alive = Dither(x, y, v)
			if heat.Enabled {
				c.UpdateHeat(heat)
			}
		}
	}
}
