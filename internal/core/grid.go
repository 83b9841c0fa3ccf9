package core

import "math"

// Grid stores a 2D grid of values in row-major order.
type Grid[T any] struct {
	W, H int
	data []T
}

// NewGrid allocates a grid with the given dimensions. Non-positive
// dimensions, or dimensions whose product overflows int, are a programming
// error.
func NewGrid[T any](w, h int) *Grid[T] {
	if w <= 0 || h <= 0 {
		panic("core: grid dimensions must be positive")
	}
	if w > math.MaxInt/h {
		panic("core: grid dimensions overflow")
	}
	return &Grid[T]{W: w, H: h, data: make([]T, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid[T]) Cells() []T { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid[T]) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// Inside reports whether (x, y) lies within the grid without wrapping.
func (g *Grid[T]) Inside(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the value at the wrapped coordinates.
func (g *Grid[T]) At(x, y int) T {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Ptr returns a pointer to the value at the wrapped coordinates.
func (g *Grid[T]) Ptr(x, y int) *T {
	x, y = g.Wrap(x, y)
	return &g.data[g.Index(x, y)]
}

// Set stores v at the wrapped coordinates.
func (g *Grid[T]) Set(x, y int, v T) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = v
}

// Fill assigns v to every cell.
func (g *Grid[T]) Fill(v T) {
	for i := range g.data {
		g.data[i] = v
	}
}

// CopyFrom copies the contents of src, which must have identical dimensions.
func (g *Grid[T]) CopyFrom(src *Grid[T]) {
	if src.W != g.W || src.H != g.H {
		panic("core: grid dimension mismatch")
	}
	copy(g.data, src.data)
}

// Clone returns a deep copy of the grid.
func (g *Grid[T]) Clone() *Grid[T] {
	c := &Grid[T]{W: g.W, H: g.H, data: make([]T, len(g.data))}
	copy(c.data, g.data)
	return c
}
