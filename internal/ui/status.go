package ui

import (
	"fmt"

	"gol2/internal/core"
)

// Status is what the overlay reports about the running session.
type Status struct {
	Generation uint64
	Population int
	Paused     bool
	Tool       string
	Params     core.ParameterSnapshot
}

// StatusLines formats s for the text overlay.
func StatusLines(s Status) []string {
	rule := "?"
	if p, ok := s.Params.Lookup("rule"); ok {
		rule = p.Value
	}
	state := "running"
	if s.Paused {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  gen %d  pop %d  %s", rule, s.Generation, s.Population, state),
	}
	if s.Tool != "" {
		lines = append(lines, "tool: "+s.Tool)
	}
	for _, g := range s.Params.Groups {
		line := g.Name + ":"
		n := 0
		for _, p := range g.Params {
			if p.Key == "rule" {
				continue
			}
			line += fmt.Sprintf(" %s=%s", p.Key, p.Value)
			n++
		}
		if n > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}
