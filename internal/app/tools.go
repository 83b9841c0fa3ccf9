// Package app hosts the interactive window and its drawing tools.
package app

import "gol2/internal/board"

const (
	// configSaveFrames is how often the window writes the config back.
	configSaveFrames = 300
	// notificationFrames is how long the oldest notification stays up.
	notificationFrames = 300
	quickSave          = "quicksave"
)

// Mode selects what the mouse does.
type Mode int

const (
	ModeBrush Mode = iota
	ModeLine
)

func (m Mode) String() string {
	if m == ModeLine {
		return "line"
	}
	return "brush"
}

// Point is a board coordinate under the cursor.
type Point struct{ X, Y int }

// Tools turns mouse presses into board edits. The brush paints while held,
// joining successive positions so fast strokes stay connected. The line tool
// commits a straight line from press to release.
type Tools struct {
	mode     Mode
	last     Point
	hasLast  bool
	start    Point
	end      Point
	dragging bool
	alive    bool
}

// NewTools starts in brush mode.
func NewTools() *Tools { return &Tools{} }

// Mode returns the active tool.
func (t *Tools) Mode() Mode { return t.mode }

// Toggle switches between brush and line, dropping any stroke in progress.
func (t *Tools) Toggle() {
	if t.mode == ModeBrush {
		t.mode = ModeLine
	} else {
		t.mode = ModeBrush
	}
	t.hasLast = false
	t.dragging = false
}

// Press handles a held mouse button at p.
func (t *Tools) Press(b *board.Board, p Point, radius int, alive bool) {
	switch t.mode {
	case ModeBrush:
		if t.hasLast {
			stroke(b, t.last, p, radius, alive)
		} else {
			stamp(b, p, radius, alive)
		}
		t.last, t.hasLast = p, true
	case ModeLine:
		if !t.dragging {
			t.start, t.dragging, t.alive = p, true, alive
		}
		t.end = p
	}
}

// Release handles the mouse buttons being up, committing a pending line.
func (t *Tools) Release(b *board.Board, radius int) {
	t.hasLast = false
	if t.mode == ModeLine && t.dragging {
		stroke(b, t.start, t.end, radius, t.alive)
		t.dragging = false
	}
}

// Pending returns the endpoints of an uncommitted line.
func (t *Tools) Pending() (Point, Point, bool) {
	return t.start, t.end, t.mode == ModeLine && t.dragging
}

func stroke(b *board.Board, from, to Point, radius int, alive bool) {
	if radius <= 1 {
		b.SetLine(from.X, from.Y, to.X, to.Y, alive)
		return
	}
	b.SetThickLine(from.X, from.Y, to.X, to.Y, radius, alive)
}

func stamp(b *board.Board, p Point, radius int, alive bool) {
	if !b.IsInside(p.X, p.Y) {
		return
	}
	if radius <= 1 {
		b.Set(p.X, p.Y, alive)
		return
	}
	b.SetDisc(p.X, p.Y, radius, alive)
}
