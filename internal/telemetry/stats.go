// Package telemetry measures board populations and writes them as CSV.
package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"gol2/internal/board"
)

// Stats summarises one generation of a board.
type Stats struct {
	Generation uint64  `csv:"generation"`
	Rule       string  `csv:"rule"`
	Alive      int     `csv:"alive"`
	Density    float64 `csv:"density"`
	HeatMean   float64 `csv:"heat_mean"`
	HeatStd    float64 `csv:"heat_std"`
	HotCells   int     `csv:"hot_cells"` // cells with any heat left
}

// Measure computes the statistics of b at the given generation.
func Measure(b *board.Board, rule string, generation uint64) Stats {
	cells := b.Cells()
	heat := make([]float64, len(cells))
	s := Stats{Generation: generation, Rule: rule}
	for i, c := range cells {
		if c.Alive {
			s.Alive++
		}
		if c.Heat > 0 {
			s.HotCells++
		}
		heat[i] = float64(c.Heat)
	}
	if len(cells) > 0 {
		s.Density = float64(s.Alive) / float64(len(cells))
	}
	if len(heat) > 1 {
		s.HeatMean, s.HeatStd = stat.MeanStdDev(heat, nil)
	} else if len(heat) == 1 {
		s.HeatMean = heat[0]
	}
	return s
}

// LogValue implements slog.LogValuer.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("generation", s.Generation),
		slog.String("rule", s.Rule),
		slog.Int("alive", s.Alive),
		slog.Float64("density", s.Density),
		slog.Float64("heat_mean", s.HeatMean),
	)
}
