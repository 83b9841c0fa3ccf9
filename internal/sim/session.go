// Package sim drives a board under a selected rule and manages save slots.
package sim

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gol2/internal/board"
	"gol2/internal/config"
	"gol2/internal/core"
	"gol2/internal/rules"
	"gol2/internal/telemetry"
	pcore "gol2/pkg/core"
)

// ErrInvalidName is returned for save names that do not reduce to a plain
// file name.
var ErrInvalidName = errors.New("sim: invalid save name")

const saveExt = ".json"

// Session owns the live board and everything that advances it.
type Session struct {
	cfg        config.Config
	board      *board.Board
	rule       rules.Named
	engine     *rules.Engine
	generation uint64
	seed       int64
	log        *slog.Logger
}

var _ core.Sim = (*Session)(nil)

// New builds a session from cfg and fills the board randomly. A zero seed in
// cfg is replaced by the current time.
func New(cfg config.Config, logger *slog.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	named, err := rules.Lookup(cfg.Simulation.Rule)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:   cfg,
		board: board.New(cfg.Board.Width, cfg.Board.Height),
		rule:  named,
		log:   logger,
	}
	s.Reset(seed)
	return s, nil
}

// Name identifies the active rule.
func (s *Session) Name() string { return s.rule.Name }

// Size returns the board dimensions.
func (s *Session) Size() core.Size { return s.board.Size() }

// Reset reseeds the random source, randomizes the board and restarts the
// generation counter.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.engine = rules.NewEngine(pcore.NewRNG(seed))
	s.board.Randomize(s.engine.RNG())
	s.generation = 0
	s.log.Debug("board reset", "seed", seed)
}

// Step advances the board by one generation.
func (s *Session) Step() {
	s.engine.Step(s.board, s.rule.Rule, s.cfg.HeatSettings())
	s.generation++
}

// Advance runs one frame's worth of generations, as set by the speed.
func (s *Session) Advance() {
	for i := 0; i < s.cfg.Simulation.Speed; i++ {
		s.Step()
	}
}

// SetClock replaces the clock used by time-driven rules.
func (s *Session) SetClock(now func() time.Time) { s.engine.SetClock(now) }

// Board returns the live board. It is replaced by LoadBoard and Resize, so
// callers should not hold on to it across those calls.
func (s *Session) Board() *board.Board { return s.board }

func (s *Session) Rule() rules.Named { return s.rule }

// Generation counts ticks since the last reset, load or resize.
func (s *Session) Generation() uint64 { return s.generation }

func (s *Session) Seed() int64 { return s.seed }

// Config returns the session settings, including changes made through the
// parameter setters and rule selection.
func (s *Session) Config() config.Config { return s.cfg }

// Stats measures the current generation.
func (s *Session) Stats() telemetry.Stats {
	return telemetry.Measure(s.board, s.rule.Name, s.generation)
}

// SetRule selects a rule by catalogue name or rule notation.
func (s *Session) SetRule(name string) error {
	named, err := rules.Lookup(name)
	if err != nil {
		return err
	}
	s.setRule(named)
	return nil
}

// CycleRule moves delta places through the catalogue.
func (s *Session) CycleRule(delta int) {
	s.setRule(rules.Cycle(s.rule.Name, delta))
}

func (s *Session) setRule(named rules.Named) {
	s.rule = named
	s.cfg.Simulation.Rule = named.Name
	s.log.Info("rule selected", "rule", named.Name, "kind", rules.Describe(named.Rule))
}

// Clear kills every cell.
func (s *Session) Clear() { s.board.Clear() }

// Randomize refills the board from the session's random source without
// resetting the generation counter.
func (s *Session) Randomize() { s.board.Randomize(s.engine.RNG()) }

// Resize replaces the board with an empty one of the given size.
func (s *Session) Resize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("resize to %dx%d: %w", w, h, board.ErrInvalidSize)
	}
	s.board = board.New(w, h)
	s.cfg.Board.Width, s.cfg.Board.Height = w, h
	s.generation = 0
	s.log.Info("board resized", "width", w, "height", h)
	return nil
}

// SaveBoard writes the board into the saves directory and returns the path.
func (s *Session) SaveBoard(name string) (string, error) {
	path, err := s.savePath(name)
	if err != nil {
		return "", err
	}
	if err := board.Save(path, s.board); err != nil {
		return "", err
	}
	s.log.Info("board saved", "path", path)
	return path, nil
}

// LoadBoard replaces the board with a saved one. The live board is left
// untouched unless the whole file decodes.
func (s *Session) LoadBoard(name string) error {
	path, err := s.savePath(name)
	if err != nil {
		return err
	}
	b, err := board.Load(path)
	if err != nil {
		return err
	}
	s.board = b
	s.cfg.Board.Width, s.cfg.Board.Height = b.Width(), b.Height()
	s.generation = 0
	s.log.Info("board loaded", "path", path, "width", b.Width(), "height", b.Height())
	return nil
}

// Saves lists the saved board names, sorted. A missing saves directory is
// an empty list.
func (s *Session) Saves() ([]string, error) {
	entries, err := os.ReadDir(s.cfg.SavesDir())
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != saveExt {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), saveExt))
	}
	sort.Strings(names)
	return names, nil
}

func (s *Session) savePath(name string) (string, error) {
	clean := SanitizeName(name)
	if clean == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.cfg.SavesDir(), clean+saveExt), nil
}

// SanitizeName reduces name to a bare file stem, or "" when nothing usable
// remains.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	name = filepath.Base(filepath.ToSlash(name))
	name = strings.TrimSuffix(name, saveExt)
	if name == "." || name == ".." || name == "/" || strings.ContainsAny(name, `/\`) {
		return ""
	}
	return name
}
