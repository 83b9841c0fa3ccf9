// Package rules turns one board generation into the next, either through a
// survive/spawn neighbour table or through one of the custom rules.
package rules

import (
	"fmt"
	"strings"
)

// Rule is either a Rulestring or a Custom catalogue entry.
type Rule interface {
	isRule()
}

// Rulestring is a neighbour-count table indexed by the number of live Moore
// neighbours (0-8).
type Rulestring struct {
	Survive [9]bool
	Spawn   [9]bool
}

func (Rulestring) isRule() {}

// Next returns the next alive flag for a cell with n live neighbours.
func (r Rulestring) Next(alive bool, n int) bool {
	if alive {
		return r.Survive[n]
	}
	return r.Spawn[n]
}

// String renders the table in "<survive>/<spawn>" notation, e.g. "23/3".
func (r Rulestring) String() string {
	var sb strings.Builder
	for i, ok := range r.Survive {
		if ok {
			sb.WriteByte(byte('0' + i))
		}
	}
	sb.WriteByte('/')
	for i, ok := range r.Spawn {
		if ok {
			sb.WriteByte(byte('0' + i))
		}
	}
	return sb.String()
}

// Custom refers to one entry of CustomRules. Values can only be obtained
// from the catalogue, so the index is always valid.
type Custom struct {
	index int
}

func (Custom) isRule() {}

// Index returns the position of the rule in CustomRules.
func (c Custom) Index() int { return c.index }

// String returns the custom rule's name.
func (c Custom) String() string { return CustomRules[c.index].Name }

// ParseError reports malformed rule notation.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("rules: parse %q: %s", e.Input, e.Reason)
}

// Parse reads "<survive digits>/<spawn digits>", e.g. "23/3" or "12345/3".
// The Golly-style "B3/S23" form is accepted too.
func Parse(s string) (Rulestring, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if strings.HasPrefix(upper, "B") {
		return parseBS(s, upper)
	}

	var r Rulestring
	survive, spawn, ok := strings.Cut(upper, "/")
	if !ok {
		return r, &ParseError{Input: s, Reason: "missing '/'"}
	}
	if err := fillDigits(&r.Survive, survive); err != nil {
		return r, &ParseError{Input: s, Reason: err.Error()}
	}
	if err := fillDigits(&r.Spawn, spawn); err != nil {
		return r, &ParseError{Input: s, Reason: err.Error()}
	}
	return r, nil
}

func parseBS(input, upper string) (Rulestring, error) {
	var r Rulestring
	born, survive, ok := strings.Cut(upper, "/")
	if !ok || !strings.HasPrefix(survive, "S") {
		return r, &ParseError{Input: input, Reason: "expected B<digits>/S<digits>"}
	}
	if err := fillDigits(&r.Spawn, born[1:]); err != nil {
		return r, &ParseError{Input: input, Reason: err.Error()}
	}
	if err := fillDigits(&r.Survive, survive[1:]); err != nil {
		return r, &ParseError{Input: input, Reason: err.Error()}
	}
	return r, nil
}

func fillDigits(dst *[9]bool, digits string) error {
	for _, c := range digits {
		if c < '0' || c > '8' {
			return fmt.Errorf("invalid neighbour count %q", c)
		}
		dst[c-'0'] = true
	}
	return nil
}

// MustParse is Parse for package-level rule constants.
func MustParse(s string) Rulestring {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return r
}
