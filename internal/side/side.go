// Package side identifies the logical content channels a display or a piece
// of content belongs to.
package side

import (
	"fmt"
	"strings"
)

// Set is an immutable set over the logical sides.
type Set uint8

const (
	Home Set = 1 << iota
	Away
	Error

	None Set = 0
	Both     = Home | Away
	all      = Home | Away | Error
)

var names = []struct {
	s    Set
	name string
}{
	{Home, "home"},
	{Away, "away"},
	{Error, "error"},
}

// Has reports whether every side in o is also in s.
func (s Set) Has(o Set) bool {
	return o != None && s&o == o
}

// Overlaps reports whether s and filter share at least one side.
// Filtered mutations apply only where this holds.
func (s Set) Overlaps(filter Set) bool {
	return s&filter != 0
}

// Count returns the number of sides in s.
func (s Set) Count() int {
	n := 0
	for _, e := range names {
		if s&e.s != 0 {
			n++
		}
	}
	return n
}

// Singles splits s into one-side sets in Home, Away, Error order.
func (s Set) Singles() []Set {
	var out []Set
	for _, e := range names {
		if s&e.s != 0 {
			out = append(out, e.s)
		}
	}
	return out
}

// Union returns s with o added.
func (s Set) Union(o Set) Set {
	return s | o
}

func (s Set) String() string {
	if s == None {
		return "none"
	}
	var parts []string
	for _, e := range names {
		if s&e.s != 0 {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, "+")
}

// Parse reads a set written as side names joined by "+" or ",", e.g. "home+away".
func Parse(v string) (Set, error) {
	v = strings.TrimSpace(strings.ToLower(v))
	if v == "" || v == "none" {
		return None, nil
	}
	if v == "both" {
		return Both, nil
	}
	var out Set
	for _, part := range strings.FieldsFunc(v, func(r rune) bool { return r == '+' || r == ',' }) {
		found := false
		for _, e := range names {
			if strings.TrimSpace(part) == e.name {
				out |= e.s
				found = true
			}
		}
		if !found {
			return None, fmt.Errorf("unknown side %q", part)
		}
	}
	return out & all, nil
}
