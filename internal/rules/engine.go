package rules

import (
	"fmt"
	"time"

	"gol2/internal/board"
	"gol2/internal/core"
	pcore "gol2/pkg/core"

	"github.com/ojrac/opensimplex-go"
)

// noiseSeed fixes the coherent-noise permutation tables.
const noiseSeed = 0

// Env carries everything a rule may draw on besides the board itself.
type Env struct {
	// RNG is the random source for every stochastic rule.
	RNG *pcore.RNG
	// Noise is the coherent-noise field sampled by the Perlin noise rule.
	Noise opensimplex.Noise

	now   func() time.Time
	epoch time.Time

	frozen *board.Board
	owners *core.Grid[int32]
	moves  []move
}

// Elapsed returns the time since the engine's clock epoch.
func (e *Env) Elapsed() time.Duration { return e.now().Sub(e.epoch) }

// Freeze copies b into a reusable read-only buffer and returns it. Rules read
// neighbourhoods from the frozen copy and write into b, so no read within a
// tick observes a write from the same tick.
func (e *Env) Freeze(b *board.Board) *board.Board {
	if !b.SameSize(e.frozen) {
		e.frozen = b.Clone()
		return e.frozen
	}
	e.frozen.CopyFrom(b)
	return e.frozen
}

// Engine applies one rule per tick to a board.
type Engine struct {
	env Env
}

// NewEngine returns an engine drawing randomness from rng.
func NewEngine(rng *pcore.RNG) *Engine {
	e := &Engine{env: Env{
		RNG:   rng,
		Noise: opensimplex.New(noiseSeed),
	}}
	e.SetClock(time.Now)
	return e
}

// SetClock replaces the wall clock used by time-driven rules and restarts the
// epoch at the clock's current reading.
func (e *Engine) SetClock(now func() time.Time) {
	e.env.now = now
	e.env.epoch = now()
}

// RNG exposes the engine's random source.
func (e *Engine) RNG() *pcore.RNG { return e.env.RNG }

// Step advances b by one generation under rule. A nil rule panics.
func (e *Engine) Step(b *board.Board, rule Rule, heat board.HeatConfig) {
	switch r := rule.(type) {
	case Rulestring:
		e.stepRulestring(b, r, heat)
	case Custom:
		CustomRules[r.index].Apply(b, heat, &e.env)
	default:
		panic(fmt.Sprintf("rules: unsupported rule %T", rule))
	}
}

func (e *Engine) stepRulestring(b *board.Board, r Rulestring, heat board.HeatConfig) {
	old := e.env.Freeze(b)
	w, h := b.Width(), b.Height()
	cells := b.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := old.CountNeighbors(x, y)
			c := &cells[y*w+x]
			c.Alive = r.Next(old.IsAlive(x, y), n)
			if heat.Enabled {
				c.UpdateHeat(heat)
			}
		}
	}
}
