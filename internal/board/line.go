package board

// SetLine rasterises the segment (x0,y0)-(x1,y1) and sets the alive flag of
// every visited cell. Unlike the other mutators the segment is clipped to the
// board rectangle instead of wrapped; only the in-bounds part of the exact
// unclipped line is drawn. It reports whether any cell was touched.
func (b *Board) SetLine(x0, y0, x1, y1 int, alive bool) bool {
	return clipLine(x0, y0, x1, y1, b.Width(), b.Height(), func(x, y int) {
		b.Set(x, y, alive)
	})
}

// SetDisc sets every cell within radius of (x, y), wrapping at the edges.
// A radius below 1 touches only the centre cell.
func (b *Board) SetDisc(x, y, radius int, alive bool) {
	if radius < 1 {
		b.Set(x, y, alive)
		return
	}
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			b.Set(x+dx, y+dy, alive)
		}
	}
}

// SetThickLine stamps a disc of the given radius on every in-bounds point of
// the clipped segment.
func (b *Board) SetThickLine(x0, y0, x1, y1, radius int, alive bool) bool {
	return clipLine(x0, y0, x1, y1, b.Width(), b.Height(), func(x, y int) {
		b.SetDisc(x, y, radius, alive)
	})
}

// clipLine visits the points of the Bresenham line from (x0,y0) to (x1,y1)
// that fall inside [0,w) x [0,h). Points are those of the full segment: the
// minor coordinate at major step i is the nearest integer to the ideal line,
// ties rounding away from the start point. Iteration along the major axis is
// clipped up front, so far-away endpoints cost nothing extra.
func clipLine(x0, y0, x1, y1, w, h int, visit func(x, y int)) bool {
	dx, dy := x1-x0, y1-y0
	sx, sy := sign(dx), sign(dy)
	adx, ady := abs(dx), abs(dy)

	if adx == 0 && ady == 0 {
		if x0 >= 0 && x0 < w && y0 >= 0 && y0 < h {
			visit(x0, y0)
			return true
		}
		return false
	}

	// Swap axes so the loop always walks the major one.
	major0, minor0 := x0, y0
	majorLen, minorLen := adx, ady
	smaj, smin := sx, sy
	majorLimit, minorLimit := w, h
	xMajor := adx >= ady
	if !xMajor {
		major0, minor0 = y0, x0
		majorLen, minorLen = ady, adx
		smaj, smin = sy, sx
		majorLimit, minorLimit = h, w
	}

	lo, hi := stepRange(major0, smaj, majorLimit)
	if lo < 0 {
		lo = 0
	}
	if hi > majorLen {
		hi = majorLen
	}

	drawn := false
	for i := lo; i <= hi; i++ {
		maj := major0 + smaj*i
		mn := minor0 + smin*((2*i*minorLen+majorLen)/(2*majorLen))
		if mn < 0 || mn >= minorLimit {
			continue
		}
		if xMajor {
			visit(maj, mn)
		} else {
			visit(mn, maj)
		}
		drawn = true
	}
	return drawn
}

// stepRange returns the inclusive range of steps i for which start+s*i lies
// in [0, limit). The range is empty (lo > hi) when no step qualifies.
func stepRange(start, s, limit int) (lo, hi int) {
	if s >= 0 {
		return -start, limit - 1 - start
	}
	return start - (limit - 1), start
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
