package main

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"gol2/internal/board"
	"gol2/internal/core"
	"gol2/internal/rules"
	"gol2/internal/telemetry"
	pcore "gol2/pkg/core"
)

type scenario struct {
	rule rules.Named
	seed int64
}

type sweepParams struct {
	steps int
	size  core.Size
	heat  board.HeatConfig
}

// scenarioResult is one finished run; the embedded stats describe the final
// generation.
type scenarioResult struct {
	Seed int64 `csv:"seed"`
	telemetry.Stats
}

type summary struct {
	Rule        string
	Runs        int
	MeanDensity float64
	StdDensity  float64
	MeanHeat    float64
	Extinct     int
}

func sizeOf(w, h int) core.Size {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return core.Size{W: w, H: h}
}

func buildScenarios(seeds int) []scenario {
	var out []scenario
	for _, named := range rules.Catalog {
		for s := 1; s <= seeds; s++ {
			out = append(out, scenario{rule: named, seed: int64(s)})
		}
	}
	return out
}

func runScenario(sc scenario, p sweepParams) scenarioResult {
	b := board.New(p.size.W, p.size.H)
	eng := rules.NewEngine(pcore.NewRNG(sc.seed))
	b.Randomize(eng.RNG())
	for i := 0; i < p.steps; i++ {
		eng.Step(b, sc.rule.Rule, p.heat)
	}
	return scenarioResult{
		Seed:  sc.seed,
		Stats: telemetry.Measure(b, sc.rule.Name, uint64(p.steps)),
	}
}

// sweep fans scenarios out over a fixed pool of workers. Results come back in
// scenario order.
func sweep(scenarios []scenario, p sweepParams, workers int) []scenarioResult {
	if workers < 1 {
		workers = 1
	}
	type job struct {
		idx int
		sc  scenario
	}
	jobs := make(chan job)
	results := make([]scenarioResult, len(scenarios))
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx] = runScenario(j.sc, p)
			}
		}()
	}
	for i, sc := range scenarios {
		jobs <- job{idx: i, sc: sc}
	}
	close(jobs)
	wg.Wait()
	return results
}

// summarize aggregates results per rule, ordered by mean density, densest
// first.
func summarize(results []scenarioResult) []summary {
	densities := map[string][]float64{}
	heats := map[string][]float64{}
	extinct := map[string]int{}
	var order []string
	for _, r := range results {
		if _, ok := densities[r.Rule]; !ok {
			order = append(order, r.Rule)
		}
		densities[r.Rule] = append(densities[r.Rule], r.Density)
		heats[r.Rule] = append(heats[r.Rule], r.HeatMean)
		if r.Alive == 0 {
			extinct[r.Rule]++
		}
	}

	out := make([]summary, 0, len(order))
	for _, name := range order {
		d := densities[name]
		s := summary{
			Rule:     name,
			Runs:     len(d),
			MeanHeat: stat.Mean(heats[name], nil),
			Extinct:  extinct[name],
		}
		if len(d) > 1 {
			s.MeanDensity, s.StdDensity = stat.MeanStdDev(d, nil)
		} else {
			s.MeanDensity = d[0]
		}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].MeanDensity > out[j].MeanDensity })
	return out
}
