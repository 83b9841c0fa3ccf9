package rules

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRule is returned when a rule name is not in the catalogue.
var ErrUnknownRule = errors.New("rules: unknown rule")

// Named pairs a display name with a rule.
type Named struct {
	Name string
	Rule Rule
}

var (
	Conway       = MustParse("23/3")
	HighLife     = MustParse("23/36")
	DayAndNight  = MustParse("34678/3678")
	Seeds        = MustParse("/2")
	Maze         = MustParse("12345/3")
	MazeWithMice = MustParse("12345/37")
)

// Catalog lists every selectable rule in menu order: the neighbour-count
// tables first, then the custom rules.
var Catalog = buildCatalog()

func buildCatalog() []Named {
	named := []Named{
		{Name: "Conway", Rule: Conway},
		{Name: "HighLife", Rule: HighLife},
		{Name: "Day & Night", Rule: DayAndNight},
		{Name: "Seeds", Rule: Seeds},
		{Name: "Maze", Rule: Maze},
		{Name: "Maze with mice", Rule: MazeWithMice},
	}
	for i, c := range CustomRules {
		named = append(named, Named{Name: c.Name, Rule: Custom{index: i}})
	}
	return named
}

// Lookup finds a catalogue entry by case-insensitive name. A string in
// rule notation ("23/36", "B36/S23") that is not a catalogue name resolves to
// an unnamed Rulestring.
func Lookup(name string) (Named, error) {
	if i := IndexOf(name); i >= 0 {
		return Catalog[i], nil
	}
	if r, err := Parse(name); err == nil {
		return Named{Name: r.String(), Rule: r}, nil
	}
	return Named{}, fmt.Errorf("%w: %q", ErrUnknownRule, name)
}

// IndexOf returns the catalogue position of name, or -1.
func IndexOf(name string) int {
	for i, n := range Catalog {
		if strings.EqualFold(n.Name, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

// Cycle returns the catalogue entry delta steps away from name, wrapping at
// both ends. Names outside the catalogue start from the first entry.
func Cycle(name string, delta int) Named {
	i := IndexOf(name)
	if i < 0 {
		i = 0
	}
	n := len(Catalog)
	return Catalog[((i+delta)%n+n)%n]
}

// Names returns the catalogue names in order.
func Names() []string {
	out := make([]string, len(Catalog))
	for i, n := range Catalog {
		out[i] = n.Name
	}
	return out
}

// Describe returns the rule notation for tables and "custom" for custom rules.
func Describe(r Rule) string {
	switch r := r.(type) {
	case Rulestring:
		return r.String()
	case Custom:
		return "custom"
	}
	return "unknown"
}
