package telemetry

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gol2/internal/board"
)

func TestMeasure(t *testing.T) {
	b := board.New(4, 1)
	b.Set(0, 0, true)
	b.Cell(0, 0).Heat = 200
	b.Cell(1, 0).Heat = 100

	s := Measure(b, "Conway", 7)
	if s.Generation != 7 || s.Rule != "Conway" {
		t.Fatalf("header fields %+v", s)
	}
	if s.Alive != 1 || s.HotCells != 2 {
		t.Fatalf("counts %+v", s)
	}
	if s.Density != 0.25 {
		t.Fatalf("density = %f", s.Density)
	}
	if math.Abs(s.HeatMean-75) > 1e-9 {
		t.Fatalf("heat mean = %f", s.HeatMean)
	}
	if s.HeatStd <= 0 {
		t.Fatalf("heat std = %f", s.HeatStd)
	}
}

func TestMeasureSingleCell(t *testing.T) {
	b := board.New(1, 1)
	b.Cell(0, 0).Heat = 9
	s := Measure(b, "", 0)
	if s.HeatMean != 9 || s.HeatStd != 0 {
		t.Fatalf("single cell stats %+v", s)
	}
}

func TestWriterHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	for g := uint64(0); g < 3; g++ {
		if err := w.Write(Stats{Generation: g, Rule: "Maze", Alive: int(g)}); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	out := buf.String()
	if strings.Count(out, "generation") != 1 {
		t.Fatalf("header repeated:\n%s", out)
	}
	rows, err := ReadAll(strings.NewReader(out))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 || rows[2].Alive != 2 || rows[1].Rule != "Maze" {
		t.Fatalf("rows = %+v", rows)
	}
}

func TestCreateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "stats.csv")
	w, err := Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := w.Write(Stats{Generation: 1}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), "generation,rule,alive") {
		t.Fatalf("unexpected csv:\n%s", data)
	}
}

func TestCloseTwice(t *testing.T) {
	w, err := Create(filepath.Join(t.TempDir(), "stats.csv"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close: %v", err)
	}
}

func TestNilWriterIsNoop(t *testing.T) {
	var w *Writer
	if err := w.Write(Stats{}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
