// Package config loads and saves the sandbox settings as YAML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"gol2/internal/board"
)

// AppName names the per-user directories the sandbox writes to.
const AppName = "gol2"

// Config holds all sandbox settings.
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Heat       HeatConfig       `yaml:"heat"`
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Paths      PathsConfig      `yaml:"paths"`
}

// BoardConfig holds the board dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// HeatConfig holds the heat-trail settings.
type HeatConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Soft       bool    `yaml:"soft"`
	SoftAmount uint8   `yaml:"soft_amount"`
	Intensity  float64 `yaml:"intensity"` // 0..1, how strongly trails tint dead cells
}

// SimulationConfig holds rule selection and pacing.
type SimulationConfig struct {
	Rule  string `yaml:"rule"`
	Speed int    `yaml:"speed"` // ticks per frame
	TPS   int    `yaml:"tps"`
	Seed  int64  `yaml:"seed"` // 0 = time-based
}

// DisplayConfig holds window and color settings.
type DisplayConfig struct {
	Scale       int   `yaml:"scale"`
	BrushRadius int   `yaml:"brush_radius"`
	Background  Color `yaml:"background"`
	Alive       Color `yaml:"alive"`
	Dead        Color `yaml:"dead"`
	Hot         Color `yaml:"hot"`
	Text        Color `yaml:"text"`
}

// PathsConfig holds output directories. An empty value resolves under the
// user config directory.
type PathsConfig struct {
	Saves string `yaml:"saves"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{Width: 192, Height: 108},
		Heat: HeatConfig{
			Enabled:    true,
			Soft:       false,
			SoftAmount: 50,
			Intensity:  0.5,
		},
		Simulation: SimulationConfig{Rule: "Conway", Speed: 1, TPS: 60},
		Display: DisplayConfig{
			Scale:       6,
			BrushRadius: 1,
			Background:  Hex(0x002B36),
			Alive:       Hex(0xFDF6E3),
			Dead:        Hex(0x073642),
			Hot:         Hex(0x586E75),
			Text:        Hex(0xFFFFFF),
		},
	}
}

// HeatSettings converts the YAML heat section into the board's heat policy.
func (c Config) HeatSettings() board.HeatConfig {
	return board.HeatConfig{
		Enabled:    c.Heat.Enabled,
		Soft:       c.Heat.Soft,
		SoftAmount: c.Heat.SoftAmount,
	}
}

// Validate rejects unusable values and clamps the rest into range.
func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 || c.Board.Width > board.MaxCells/c.Board.Height {
		return fmt.Errorf("board size %dx%d: %w", c.Board.Width, c.Board.Height, board.ErrInvalidSize)
	}
	if c.Simulation.Speed < 1 {
		c.Simulation.Speed = 1
	}
	if c.Simulation.TPS <= 0 {
		c.Simulation.TPS = 60
	}
	if c.Display.Scale < 1 {
		c.Display.Scale = 1
	}
	if c.Display.BrushRadius < 1 {
		c.Display.BrushRadius = 1
	}
	if c.Heat.SoftAmount == 0 {
		c.Heat.SoftAmount = 1
	}
	c.Heat.Intensity = clamp01(c.Heat.Intensity)
	return nil
}

// SavesDir returns the directory holding saved boards.
func (c Config) SavesDir() string {
	if c.Paths.Saves != "" {
		return c.Paths.Saves
	}
	return filepath.Join(userDir(), "saves")
}

// DefaultPath returns the per-user config file location.
func DefaultPath() string {
	return filepath.Join(userDir(), "config.yaml")
}

func userDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}
	return filepath.Join(base, AppName)
}

// Load reads the YAML file at path over the defaults. A missing file yields
// the defaults; a malformed one is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Color is an RGBA color written as "#RRGGBB" or "#RRGGBBAA" in YAML.
type Color color.RGBA

// Hex builds an opaque color from 0xRRGGBB.
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

// ToRGBA returns the color as a color.RGBA.
func (c Color) ToRGBA() color.RGBA { return color.RGBA(c) }

// String renders the color in hex notation.
func (c Color) String() string {
	if c.A == 0xFF {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColor reads "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	if len(h) == 6 {
		return Hex(uint32(v)), nil
	}
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
