// Command rule-sweep runs every catalogue rule over many seeds and reports
// how populations settle.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"gol2/internal/board"
	"gol2/internal/logging"
)

func main() {
	steps := flag.Int("steps", 200, "ticks to simulate per scenario")
	seeds := flag.Int("seeds", 8, "seeds per rule")
	width := flag.Int("width", 96, "board width")
	height := flag.Int("height", 64, "board height")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	csvPath := flag.String("csv", "", "also write per-scenario results to this CSV file")
	level := flag.String("log-level", "info", "log level")
	flag.Parse()

	logger := logging.NewLogger(*level, os.Stderr)
	params := sweepParams{
		steps: *steps,
		size:  sizeOf(*width, *height),
		heat:  board.HeatConfig{Enabled: true},
	}
	scenarios := buildScenarios(*seeds)
	fmt.Printf("Sweeping %d scenarios (%d workers, %d steps, %dx%d)\n",
		len(scenarios), *workers, params.steps, params.size.W, params.size.H)

	start := time.Now()
	results := sweep(scenarios, params, *workers)
	logger.Info("sweep finished", "scenarios", len(results), "elapsed", time.Since(start).Round(time.Millisecond))

	if *csvPath != "" {
		if err := writeCSV(*csvPath, results); err != nil {
			logger.Error("writing results", "err", err)
			os.Exit(1)
		}
	}

	summaries := summarize(results)
	fmt.Printf("\n%-16s %10s %10s %10s %10s\n", "rule", "density", "std", "heat", "extinct")
	for _, s := range summaries {
		fmt.Printf("%-16s %10.4f %10.4f %10.2f %7d/%d\n",
			s.Rule, s.MeanDensity, s.StdDensity, s.MeanHeat, s.Extinct, s.Runs)
	}
}
