package animate

import "errors"

var ErrStatNotFound = errors.New("stat not found")

// Stat is one counter of the home page stats strip.
type Stat struct {
	Label  string      `json:"label"`
	Number string      `json:"number"`
	Parts  NumberParts `json:"parts"`
}

// HomeStats returns the home page counters with their parsed parts.
func HomeStats() []Stat {
	raw := []struct{ number, label string }{
		{"1458", "Startups Accelerated"},
		{"$50000", "Minimum Capital"},
		{"$500000", "Maximum Capital"},
		{"89", "Countries Reached"},
	}
	out := make([]Stat, len(raw))
	for i, r := range raw {
		out[i] = Stat{Label: r.label, Number: r.number, Parts: ParseNumberParts(r.number)}
	}
	return out
}
