package events

import (
	"time"

	"incubator/pkg/filter"
)

// Filter returns the events matching every active criterion, in store order.
func Filter(all []Event, c Criteria) []Event {
	return filter.Apply(all,
		filter.Text(c.Search, func(e Event) []string { return []string{e.Title, e.Description, e.Type} }),
		filter.SameDay(c.Date, func(e Event) (time.Time, bool) { return e.Day() }),
		filter.Flag(c.DemoDaysOnly, func(e Event) bool { return e.IsDemoDay }),
		filter.OneOf(c.Types, func(e Event) string { return e.Type }),
	)
}

func computeStats(all []Event) Stats {
	s := Stats{Total: len(all)}
	for _, e := range all {
		if e.IsDemoDay {
			s.DemoDays++
		}
		if e.Featured {
			s.Featured++
		}
	}
	return s
}

func buildOptions(all []Event) EventOptions {
	seen := make(map[string]struct{})
	dates := make([]string, 0, len(all))
	for _, e := range all {
		d, ok := e.Day()
		if !ok {
			continue
		}
		key := d.Format(DateLayout)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		dates = append(dates, key)
	}

	return EventOptions{
		Types: filter.Options(all, func(e Event) string { return e.Type }),
		Dates: dates,
	}
}
