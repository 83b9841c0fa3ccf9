package rules

import (
	"testing"
	"time"

	"gol2/internal/board"
	pcore "gol2/pkg/core"
)

func customRule(t *testing.T, name string) Custom {
	t.Helper()
	n, err := Lookup(name)
	if err != nil {
		t.Fatalf("lookup %q: %v", name, err)
	}
	c, ok := n.Rule.(Custom)
	if !ok {
		t.Fatalf("%q is not a custom rule", name)
	}
	return c
}

func TestCustomRuleOrder(t *testing.T) {
	want := []string{"Falling stars", "Maze cycle", "Noise", "Worley lines", "Space", "Perlin noise"}
	if len(CustomRules) != len(want) {
		t.Fatalf("expected %d custom rules, got %d", len(want), len(CustomRules))
	}
	for i, name := range want {
		if CustomRules[i].Name != name {
			t.Fatalf("custom rule %d = %q, want %q", i, CustomRules[i].Name, name)
		}
	}
}

func TestFallingStarsDropOneRow(t *testing.T) {
	rule := customRule(t, "Falling stars")
	e := NewEngine(pcore.NewRNG(21))
	fell := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		b := board.New(8, 8)
		b.Set(3, 3, true)
		e.Step(b, rule, noHeat)
		if b.IsAlive(3, 4) {
			fell++
		}
	}
	// Erosion removes about one star in forty before it can fall.
	if fell < 170 {
		t.Fatalf("star fell in only %d/%d trials", fell, trials)
	}
}

func TestFallingStarsBlockedStarDies(t *testing.T) {
	rule := customRule(t, "Falling stars")
	e := NewEngine(pcore.NewRNG(5))
	blocked := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		b := board.New(8, 8)
		b.Set(3, 3, true)
		b.Set(3, 4, true)
		e.Step(b, rule, noHeat)
		if b.IsAlive(3, 5) && !b.IsAlive(3, 4) {
			blocked++
		}
	}
	if blocked < 170 {
		t.Fatalf("stacked stars settled as expected in only %d/%d trials", blocked, trials)
	}
}

func TestFallingStarsCoolFaster(t *testing.T) {
	rule := customRule(t, "Falling stars")
	b := board.New(16, 16)
	b.Randomize(pcore.NewRNG(3))
	e := NewEngine(pcore.NewRNG(3))
	e.Step(b, rule, board.HeatConfig{Enabled: true})
	for i, c := range b.Cells() {
		if c.Heat > board.MaxHeat-fallingStarsCooling {
			t.Fatalf("cell %d heat %d exceeds cooled maximum", i, c.Heat)
		}
	}
}

func TestFallingStarsTrackHeatWhenDisabled(t *testing.T) {
	rule := customRule(t, "Falling stars")
	e := NewEngine(pcore.NewRNG(21))
	landed := 0
	const trials = 200
	for i := 0; i < trials; i++ {
		b := board.New(8, 8)
		b.Set(3, 3, true)
		e.Step(b, rule, noHeat)
		if b.IsAlive(3, 4) {
			if got, want := b.Get(3, 4).Heat, board.MaxHeat-fallingStarsCooling; got != want {
				t.Fatalf("landed star heat = %d, want %d", got, want)
			}
			landed++
		}
	}
	if landed == 0 {
		t.Fatal("no star landed")
	}
}

func TestMazeCycleHeatConstraints(t *testing.T) {
	rule := customRule(t, "Maze cycle")
	b := board.New(40, 30)
	e := NewEngine(pcore.NewRNG(8))
	cx, cy := b.Width()/2, b.Height()/2
	seeded := func(x, y int) bool {
		dx, dy := x-cx, y-cy
		return dx >= -mazeCycleSeedRadius && dx <= mazeCycleSeedRadius &&
			dy >= -mazeCycleSeedRadius && dy <= mazeCycleSeedRadius
	}

	sawLife := false
	for tick := 0; tick < 150; tick++ {
		prev := b.Clone()
		e.Step(b, rule, noHeat)
		for y := 0; y < b.Height(); y++ {
			for x := 0; x < b.Width(); x++ {
				before, after := prev.Get(x, y), b.Get(x, y)
				if after.Alive {
					sawLife = true
					if after.Heat == 0 {
						t.Fatalf("tick %d: live cell (%d,%d) gained no heat", tick, x, y)
					}
				}
				if seeded(x, y) {
					continue
				}
				if !before.Alive && after.Alive && before.Heat >= mazeCycleRespawnHeat {
					t.Fatalf("tick %d: (%d,%d) respawned at heat %d", tick, x, y, before.Heat)
				}
				if before.Alive && before.Heat == board.MaxHeat && after.Alive {
					t.Fatalf("tick %d: saturated cell (%d,%d) survived", tick, x, y)
				}
			}
		}
	}
	if !sawLife {
		t.Fatal("maze cycle never produced live cells")
	}
}

func TestNoiseFlipsRarely(t *testing.T) {
	rule := customRule(t, "Noise")
	e := NewEngine(pcore.NewRNG(12))

	empty := board.New(100, 100)
	e.Step(empty, rule, noHeat)
	if p := empty.Population(); p == 0 || p > 80 {
		t.Fatalf("noise spawned %d cells on an empty 100x100 board", p)
	}

	full := board.New(100, 100)
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			full.Set(x, y, true)
		}
	}
	e.Step(full, rule, noHeat)
	if dead := 10000 - full.Population(); dead == 0 || dead > 80 {
		t.Fatalf("noise killed %d cells on a full board", dead)
	}
}

func TestWorleyLinesTraceBoundaries(t *testing.T) {
	rule := customRule(t, "Worley lines")
	b := board.New(60, 40)
	b.Randomize(pcore.NewRNG(1))
	e := NewEngine(pcore.NewRNG(6))
	e.Step(b, rule, noHeat)

	owners := e.env.owners
	if owners == nil || owners.W != 60 || owners.H != 40 {
		t.Fatal("owner grid not recorded")
	}
	borders := 0
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			own := owners.At(x, y)
			edge := (x+1 < 60 && owners.At(x+1, y) != own) || (y+1 < 40 && owners.At(x, y+1) != own)
			if edge {
				borders++
				if !b.IsAlive(x, y) {
					t.Fatalf("boundary cell (%d,%d) is dead", x, y)
				}
			}
		}
	}
	if borders == 0 {
		t.Fatal("expected six seeds to produce region borders")
	}
	// Randomize left every cell hot; Worley clears the board first.
	if b.Get(0, 0).Heat != 0 {
		t.Fatal("worley should start from a cleared board")
	}
}

func TestWorleySingleSeedOnTinyBoard(t *testing.T) {
	rule := customRule(t, "Worley lines")
	b := board.New(4, 4)
	e := NewEngine(pcore.NewRNG(2))
	e.Step(b, rule, board.HeatConfig{Enabled: true})
	for _, o := range e.env.owners.Cells() {
		if o != 0 {
			t.Fatal("tiny board should have exactly one seed")
		}
	}
}

func TestSpaceConservesPopulation(t *testing.T) {
	rule := customRule(t, "Space")
	b := board.New(30, 30)
	b.Randomize(pcore.NewRNG(10))
	want := b.Population()
	e := NewEngine(pcore.NewRNG(10))
	heat := board.HeatConfig{Enabled: true, Soft: true, SoftAmount: 20}
	moved := false
	for i := 0; i < 20; i++ {
		before := b.String()
		e.Step(b, rule, heat)
		if got := b.Population(); got != want {
			t.Fatalf("tick %d: population %d, want %d", i, got, want)
		}
		if b.String() != before {
			moved = true
		}
	}
	if !moved {
		t.Fatal("no particle ever moved")
	}
}

func TestSpaceLoneParticleMovesAtMostOneStep(t *testing.T) {
	rule := customRule(t, "Space")
	e := NewEngine(pcore.NewRNG(4))
	for i := 0; i < 100; i++ {
		b := board.New(9, 9)
		b.Set(4, 4, true)
		e.Step(b, rule, noHeat)
		pts := liveSet(b)
		if len(pts) != 1 {
			t.Fatalf("expected one particle, got %v", pts)
		}
		for p := range pts {
			dx, dy := p[0]-4, p[1]-4
			if dx*dx+dy*dy > 1 {
				t.Fatalf("particle jumped to %v", p)
			}
		}
	}
}

func TestPerlinNoiseFollowsClock(t *testing.T) {
	rule := customRule(t, "Perlin noise")
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	a, b := board.New(64, 64), board.New(64, 64)
	ea, eb := NewEngine(pcore.NewRNG(1)), NewEngine(pcore.NewRNG(2))
	ea.SetClock(clock)
	eb.SetClock(clock)
	ea.Step(a, rule, noHeat)
	eb.Step(b, rule, noHeat)
	if a.String() != b.String() {
		t.Fatal("same clock reading should produce the same pattern")
	}
	if p := a.Population(); p == 0 || p == 64*64 {
		t.Fatalf("expected a textured pattern, got population %d", p)
	}

	now = now.Add(20 * time.Second)
	ea.Step(a, rule, noHeat)
	if a.String() == b.String() {
		t.Fatal("pattern should animate as the clock advances")
	}
}
