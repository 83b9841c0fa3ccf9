package board

// MaxHeat is the saturation value of a cell's heat trail.
const MaxHeat uint8 = 255

// Cell is the per-position state: an alive flag and a decaying heat trail.
type Cell struct {
	Alive bool
	Heat  uint8
}

// HeatConfig controls how heat follows a cell's alive flag after each tick.
type HeatConfig struct {
	// Enabled turns heat tracking on.
	Enabled bool
	// Soft accumulates SoftAmount per tick instead of jumping to MaxHeat.
	Soft       bool
	SoftAmount uint8
}

// UpdateHeat applies the heat policy to c based on its current alive flag.
// Live cells heat up, dead cells cool by one.
func (c *Cell) UpdateHeat(cfg HeatConfig) {
	if c.Alive {
		if cfg.Soft {
			c.Heat = AddHeat(c.Heat, cfg.SoftAmount)
		} else {
			c.Heat = MaxHeat
		}
		return
	}
	c.Heat = SubHeat(c.Heat, 1)
}

// AddHeat is a saturating add.
func AddHeat(h, n uint8) uint8 {
	if h > MaxHeat-n {
		return MaxHeat
	}
	return h + n
}

// SubHeat is a saturating subtract.
func SubHeat(h, n uint8) uint8 {
	if h < n {
		return 0
	}
	return h - n
}
