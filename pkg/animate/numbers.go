package animate

import (
	"regexp"
	"strconv"
	"strings"
)

var numberParts = regexp.MustCompile(`^([^0-9]*)([0-9]+(?:\.[0-9]+)?)(.*)$`)

// NumberParts splits a display string such as "$500000" or "89+" around its first number.
type NumberParts struct {
	Prefix string  `json:"prefix"`
	End    float64 `json:"end"`
	Suffix string  `json:"suffix"`
}

// ParseNumberParts never fails: input without digits yields the zero value.
func ParseNumberParts(s string) NumberParts {
	m := numberParts.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return NumberParts{}
	}
	end, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return NumberParts{}
	}
	return NumberParts{Prefix: m[1], End: end, Suffix: m[3]}
}

// Format renders v between the prefix and suffix.
func (p NumberParts) Format(v float64) string {
	return p.Prefix + strconv.FormatFloat(v, 'f', -1, 64) + p.Suffix
}
