package telemetry

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// Writer appends Stats rows to a CSV stream, writing the header once.
type Writer struct {
	out           io.Writer
	closer        io.Closer
	headerWritten bool
}

// NewWriter writes rows to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Create opens (truncating) a CSV file at path, creating parent directories.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating stats directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Base(path), err)
	}
	return &Writer{out: f, closer: f}, nil
}

// Write appends one row. A nil Writer discards it.
func (w *Writer) Write(s Stats) error {
	if w == nil {
		return nil
	}
	records := []Stats{s}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.out); err != nil {
			return fmt.Errorf("writing stats: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.out); err != nil {
		return fmt.Errorf("writing stats: %w", err)
	}
	return nil
}

// Close closes the underlying file, if the Writer owns one. Calls after the
// first are no-ops.
func (w *Writer) Close() error {
	if w == nil || w.closer == nil {
		return nil
	}
	c := w.closer
	w.closer = nil
	return c.Close()
}

// ReadAll parses a stats CSV produced by Writer.
func ReadAll(r io.Reader) ([]Stats, error) {
	var rows []Stats
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("reading stats: %w", err)
	}
	return rows, nil
}
