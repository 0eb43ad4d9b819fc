// Package filter is the predicate engine shared by the jobs, portfolio and
// events listings. Every constructor returns nil when its dimension is inactive,
// and Apply skips nil predicates, so an empty criteria set returns the store as is.
package filter

import (
	"strings"
	"time"
)

// Option is one entry of a filter dimension's option list.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// Predicate reports whether a record passes one filter dimension.
type Predicate[T any] func(T) bool

// Apply returns the records passing every predicate, in store order.
// The result never aliases records.
func Apply[T any](records []T, preds ...Predicate[T]) []T {
	active := make([]Predicate[T], 0, len(preds))
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}

	out := make([]T, 0, len(records))
next:
	for _, r := range records {
		for _, p := range active {
			if !p(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}

// Text matches a case-insensitive substring against any of the fields.
func Text[T any](term string, fields func(T) []string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return nil
	}
	return func(r T) bool {
		for _, f := range fields(r) {
			if f != "" && strings.Contains(strings.ToLower(f), needle) {
				return true
			}
		}
		return false
	}
}

// OneOf passes records whose value is a member of selected.
func OneOf[T any](selected []string, value func(T) string) Predicate[T] {
	if len(selected) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(selected))
	for _, s := range selected {
		set[s] = struct{}{}
	}
	return func(r T) bool {
		v := value(r)
		if v == "" {
			return false
		}
		_, ok := set[v]
		return ok
	}
}

// Any passes records for which match holds for at least one selected value.
// It is the general form of OneOf for dimensions with derived values.
func Any[T any](selected []string, match func(T, string) bool) Predicate[T] {
	if len(selected) == 0 {
		return nil
	}
	return func(r T) bool {
		for _, s := range selected {
			if match(r, s) {
				return true
			}
		}
		return false
	}
}

// Flag passes records with the flag set, when on.
func Flag[T any](on bool, flag func(T) bool) Predicate[T] {
	if !on {
		return nil
	}
	return flag
}

// SameDay passes records whose date falls on the same calendar day as day.
// Time of day is ignored; records without a parseable date never match.
func SameDay[T any](day *time.Time, date func(T) (time.Time, bool)) Predicate[T] {
	if day == nil || day.IsZero() {
		return nil
	}
	y, m, d := day.Date()
	return func(r T) bool {
		t, ok := date(r)
		if !ok {
			return false
		}
		ry, rm, rd := t.Date()
		return ry == y && rm == m && rd == d
	}
}

// Options extracts the distinct non-empty values of one dimension, in order of
// first appearance, with the number of records holding each.
func Options[T any](records []T, value func(T) string) []Option {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, r := range records {
		v := value(r)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}

	out := make([]Option, 0, len(order))
	for _, v := range order {
		out = append(out, Option{Value: v, Label: v, Count: counts[v]})
	}
	return out
}

// Count fills the counts of a fixed option catalog using match.
func Count[T any](catalog []Option, records []T, match func(T, string) bool) []Option {
	out := make([]Option, len(catalog))
	for i, opt := range catalog {
		opt.Count = 0
		for _, r := range records {
			if match(r, opt.Value) {
				opt.Count++
			}
		}
		out[i] = opt
	}
	return out
}

// Labels builds an option catalog whose labels equal their values.
func Labels(values ...string) []Option {
	out := make([]Option, len(values))
	for i, v := range values {
		out[i] = Option{Value: v, Label: v}
	}
	return out
}

// Normalize flattens repeated and comma-separated query values, trimming
// blanks and dropping duplicates while keeping first-seen order.
func Normalize(values []string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0, len(values))
	for _, raw := range values {
		for _, part := range strings.Split(raw, ",") {
			v := strings.TrimSpace(part)
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
