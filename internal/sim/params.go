package sim

import (
	"strconv"

	"gol2/internal/core"
)

var (
	_ core.IntParameterSetter  = (*Session)(nil)
	_ core.BoolParameterSetter = (*Session)(nil)
)

// Parameters reports the tunables shown in the overlay.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Simulation",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: s.rule.Name},
				intParam("speed", "Speed", s.cfg.Simulation.Speed),
				intParam("w", "Width", s.board.Width()),
				intParam("h", "Height", s.board.Height()),
			},
		},
		{
			Name: "Heat",
			Params: []core.Parameter{
				boolParam("heat", "Heat", s.cfg.Heat.Enabled),
				boolParam("soft_heat", "Soft heat", s.cfg.Heat.Soft),
				intParam("soft_amount", "Soft amount", int(s.cfg.Heat.SoftAmount)),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush_radius", "Brush radius", s.cfg.Display.BrushRadius),
			},
		},
	}}
}

// SetIntParameter updates an integer tunable. Values out of range are
// rejected.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "speed":
		if value < 1 {
			return false
		}
		s.cfg.Simulation.Speed = value
	case "soft_amount":
		if value < 1 || value > 255 {
			return false
		}
		s.cfg.Heat.SoftAmount = uint8(value)
	case "brush_radius":
		if value < 1 {
			return false
		}
		s.cfg.Display.BrushRadius = value
	default:
		return false
	}
	return true
}

// SetBoolParameter toggles a heat flag.
func (s *Session) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "heat":
		s.cfg.Heat.Enabled = value
	case "soft_heat":
		s.cfg.Heat.Soft = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
