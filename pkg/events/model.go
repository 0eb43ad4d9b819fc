package events

import (
	"strings"
	"time"

	"incubator/pkg/filter"
)

// DateLayout is the calendar day format used by the date query parameter
// and the event dates list.
const DateLayout = "2006-01-02"

type Event struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
	Time        string   `json:"time"`
	Location    string   `json:"location"`
	Type        string   `json:"type"`
	IsDemoDay   bool     `json:"is_demo_day"`
	Featured    bool     `json:"featured"`
	Capacity    int      `json:"capacity"`
	Registered  int      `json:"registered"`
	Speakers    []string `json:"speakers"`
	Agenda      []string `json:"agenda"`
}

var dayLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", DateLayout}

// Day parses the event date. Records with a missing or malformed date report false.
func (e Event) Day() (time.Time, bool) {
	raw := strings.TrimSpace(e.Date)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range dayLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Full reports whether no seats remain.
func (e Event) Full() bool {
	return e.Registered >= e.Capacity
}

// Criteria is the event calendar filter state.
type Criteria struct {
	Search       string     `json:"search,omitempty"`
	Types        []string   `json:"types,omitempty"`
	Date         *time.Time `json:"date,omitempty"`
	DemoDaysOnly bool       `json:"demo_days_only,omitempty"`
}

type Stats struct {
	Total    int `json:"total"`
	DemoDays int `json:"demo_days"`
	Featured int `json:"featured"`
}

type EventList struct {
	Items []Event `json:"items"`
	Count int     `json:"count"`
	Total int     `json:"total"`
	Stats Stats   `json:"stats"`
}

type EventOptions struct {
	Types []filter.Option `json:"types"`
	// Dates holds every distinct event day, for calendar highlighting.
	Dates []string `json:"dates"`
}
