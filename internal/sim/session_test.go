package sim

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gol2/internal/board"
	"gol2/internal/config"
	"gol2/internal/logging"
	"gol2/internal/rules"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Board.Width, cfg.Board.Height = 16, 12
	cfg.Simulation.Seed = 42
	cfg.Paths.Saves = filepath.Join(t.TempDir(), "saves")
	return cfg
}

func newSession(t *testing.T, cfg config.Config) *Session {
	t.Helper()
	s, err := New(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Board.Width = 0
	if _, err := New(cfg, logging.Discard()); !errors.Is(err, board.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}

	cfg = testConfig(t)
	cfg.Simulation.Rule = "no such rule"
	if _, err := New(cfg, logging.Discard()); !errors.Is(err, rules.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	a := newSession(t, testConfig(t))
	b := newSession(t, testConfig(t))
	for i := 0; i < 5; i++ {
		a.Step()
		b.Step()
	}
	if a.Board().String() != b.Board().String() {
		t.Fatalf("same seed diverged")
	}
	if a.Seed() != 42 {
		t.Fatalf("seed = %d", a.Seed())
	}
}

func TestStepAndAdvanceCountGenerations(t *testing.T) {
	cfg := testConfig(t)
	cfg.Simulation.Speed = 3
	s := newSession(t, cfg)
	s.Step()
	if s.Generation() != 1 {
		t.Fatalf("generation = %d after Step", s.Generation())
	}
	s.Advance()
	if s.Generation() != 4 {
		t.Fatalf("generation = %d after Advance at speed 3", s.Generation())
	}
	s.Reset(7)
	if s.Generation() != 0 {
		t.Fatalf("generation not reset")
	}
}

func TestRuleSelection(t *testing.T) {
	s := newSession(t, testConfig(t))
	if s.Name() != "Conway" {
		t.Fatalf("default rule = %q", s.Name())
	}
	s.CycleRule(1)
	if s.Name() != "HighLife" {
		t.Fatalf("next rule = %q", s.Name())
	}
	s.CycleRule(-2)
	if s.Name() != rules.Catalog[len(rules.Catalog)-1].Name {
		t.Fatalf("cycling back wrapped to %q", s.Name())
	}
	if err := s.SetRule("seeds"); err != nil || s.Name() != "Seeds" {
		t.Fatalf("SetRule(seeds) = %v, rule %q", err, s.Name())
	}
	if err := s.SetRule("bogus"); !errors.Is(err, rules.ErrUnknownRule) {
		t.Fatalf("expected ErrUnknownRule, got %v", err)
	}
	if s.Name() != "Seeds" {
		t.Fatalf("failed SetRule changed rule to %q", s.Name())
	}
	if s.Config().Simulation.Rule != "Seeds" {
		t.Fatalf("config rule = %q", s.Config().Simulation.Rule)
	}
}

func TestSaveAndLoadBoard(t *testing.T) {
	s := newSession(t, testConfig(t))
	want := s.Board().String()

	path, err := s.SaveBoard("glider")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if filepath.Base(path) != "glider.json" {
		t.Fatalf("save path = %s", path)
	}

	s.Clear()
	s.Step()
	if err := s.LoadBoard("glider"); err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Board().String() != want {
		t.Fatalf("loaded board differs")
	}
	if s.Generation() != 0 {
		t.Fatalf("generation = %d after load", s.Generation())
	}
}

func TestLoadFailureKeepsBoard(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg)
	want := s.Board().String()

	if err := os.MkdirAll(cfg.Paths.Saves, 0o755); err != nil {
		t.Fatal(err)
	}
	bad := `{"width":16,"height":12,"cells":"AQE="}`
	if err := os.WriteFile(filepath.Join(cfg.Paths.Saves, "bad.json"), []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}
	err := s.LoadBoard("bad")
	var de *board.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if s.Board().String() != want {
		t.Fatalf("board replaced by failed load")
	}
	if err := s.LoadBoard("missing"); err == nil {
		t.Fatalf("expected error loading a missing save")
	}
}

func TestLoadAdoptsSavedSize(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg)
	if err := s.Resize(5, 4); err != nil {
		t.Fatal(err)
	}
	s.Board().Set(1, 1, true)
	if _, err := s.SaveBoard("small"); err != nil {
		t.Fatal(err)
	}
	if err := s.Resize(30, 30); err != nil {
		t.Fatal(err)
	}
	if err := s.LoadBoard("small"); err != nil {
		t.Fatal(err)
	}
	if got := s.Size(); got.W != 5 || got.H != 4 || !s.Board().IsAlive(1, 1) {
		t.Fatalf("loaded size %+v", got)
	}
}

func TestSavesListing(t *testing.T) {
	cfg := testConfig(t)
	s := newSession(t, cfg)
	names, err := s.Saves()
	if err != nil || len(names) != 0 {
		t.Fatalf("fresh saves = %v, %v", names, err)
	}
	for _, n := range []string{"b", "a"} {
		if _, err := s.SaveBoard(n); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(cfg.Paths.Saves, "notes.txt"), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	names, err = s.Saves()
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Fatalf("saves = %v", names)
	}
}

func TestSanitizeName(t *testing.T) {
	cases := map[string]string{
		"glider":      "glider",
		"glider.json": "glider",
		"../../etc/x": "x",
		"  spaced  ":  "spaced",
		"":            "",
		"..":          "",
		`..\windows`:  "",
		"dir/sub/":    "sub",
	}
	for in, want := range cases {
		if got := SanitizeName(in); got != want {
			t.Errorf("SanitizeName(%q) = %q, want %q", in, got, want)
		}
	}
	s := newSession(t, testConfig(t))
	if _, err := s.SaveBoard(".."); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("expected ErrInvalidName, got %v", err)
	}
}

func TestResize(t *testing.T) {
	s := newSession(t, testConfig(t))
	if err := s.Resize(0, 3); !errors.Is(err, board.ErrInvalidSize) {
		t.Fatalf("expected ErrInvalidSize, got %v", err)
	}
	if err := s.Resize(7, 3); err != nil {
		t.Fatal(err)
	}
	if s.Board().Population() != 0 || s.Size().W != 7 || s.Size().H != 3 {
		t.Fatalf("resized board not empty 7x3")
	}
	s.Step()
}

func TestParameters(t *testing.T) {
	s := newSession(t, testConfig(t))
	params := s.Parameters()
	if p, ok := params.Lookup("rule"); !ok || p.Value != "Conway" {
		t.Fatalf("rule param = %+v", p)
	}
	if !s.SetIntParameter("speed", 4) {
		t.Fatalf("speed rejected")
	}
	if s.SetIntParameter("speed", 0) {
		t.Fatalf("speed 0 accepted")
	}
	if s.SetIntParameter("soft_amount", 300) {
		t.Fatalf("soft amount 300 accepted")
	}
	if !s.SetBoolParameter("heat", false) {
		t.Fatalf("heat toggle rejected")
	}
	if s.SetBoolParameter("unknown", true) {
		t.Fatalf("unknown key accepted")
	}
	params = s.Parameters()
	if p, _ := params.Lookup("speed"); p.Value != "4" {
		t.Fatalf("speed param = %+v", p)
	}
	if p, _ := params.Lookup("heat"); p.Value != "false" {
		t.Fatalf("heat param = %+v", p)
	}
}

func TestStatsFollowBoard(t *testing.T) {
	s := newSession(t, testConfig(t))
	s.Step()
	st := s.Stats()
	if st.Generation != 1 || st.Alive != s.Board().Population() || st.Rule != "Conway" {
		t.Fatalf("stats = %+v", st)
	}
}
