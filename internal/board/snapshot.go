package board

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrInvalidSize reports a snapshot whose width or height is not positive or
// whose cell count exceeds MaxCells.
var ErrInvalidSize = errors.New("board: invalid dimensions")

// MaxCells caps the number of cells a decoded snapshot may describe.
const MaxCells = 1 << 26

// DecodeError describes a snapshot that cannot be turned back into a board.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("board: decode snapshot: %s: %v", e.Reason, e.Err)
	}
	return "board: decode snapshot: " + e.Reason
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Snapshot is the persisted form of a board: dimensions plus the alive flags
// packed eight per byte, least significant bit first, base64 encoded. Heat is
// not stored.
type Snapshot struct {
	Width  int    `json:"width" yaml:"width"`
	Height int    `json:"height" yaml:"height"`
	Cells  string `json:"cells" yaml:"cells"`
}

// Snapshot encodes the board's alive pattern.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{
		Width:  b.Width(),
		Height: b.Height(),
		Cells:  base64.StdEncoding.EncodeToString(packAlive(b.Cells())),
	}
}

// FromSnapshot rebuilds a board from s. Every cell starts cold. The returned
// error is a *DecodeError for any malformed input.
func FromSnapshot(s Snapshot) (*Board, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, &DecodeError{
			Reason: fmt.Sprintf("%dx%d", s.Width, s.Height),
			Err:    ErrInvalidSize,
		}
	}
	if s.Width > MaxCells/s.Height {
		return nil, &DecodeError{
			Reason: fmt.Sprintf("%dx%d exceeds %d cells", s.Width, s.Height, MaxCells),
			Err:    ErrInvalidSize,
		}
	}
	raw, err := base64.StdEncoding.DecodeString(s.Cells)
	if err != nil {
		return nil, &DecodeError{Reason: "invalid base64", Err: err}
	}
	n := s.Width * s.Height
	if want := packedLen(n); len(raw) != want {
		return nil, &DecodeError{
			Reason: fmt.Sprintf("cell data is %d bytes, want %d for %dx%d", len(raw), want, s.Width, s.Height),
		}
	}
	b := New(s.Width, s.Height)
	unpackAlive(raw, b.Cells())
	return b, nil
}

// MarshalJSON encodes the board as a Snapshot document.
func (b *Board) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Snapshot())
}

// UnmarshalJSON replaces the board with the decoded snapshot. On failure the
// receiver is left untouched.
func (b *Board) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return &DecodeError{Reason: "invalid document", Err: err}
	}
	decoded, err := FromSnapshot(s)
	if err != nil {
		return err
	}
	b.grid = decoded.grid
	return nil
}

// Save writes the board snapshot as JSON to path, creating parent directories.
func Save(path string, b *Board) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("encoding board: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating save directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing board: %w", err)
	}
	return nil
}

// Load reads a JSON board snapshot from path.
func Load(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board: %w", err)
	}
	b := &Board{}
	if err := json.Unmarshal(data, b); err != nil {
		return nil, err
	}
	return b, nil
}

func packedLen(n int) int { return (n + 7) / 8 }

func packAlive(cells []Cell) []byte {
	out := make([]byte, packedLen(len(cells)))
	for i, c := range cells {
		if c.Alive {
			out[i/8] |= 1 << (i % 8)
		}
	}
	return out
}

func unpackAlive(raw []byte, cells []Cell) {
	for i := range cells {
		cells[i] = Cell{Alive: raw[i/8]&(1<<(i%8)) != 0}
	}
}
