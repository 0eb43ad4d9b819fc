package analytics

import (
	"strings"
	"time"
)

// dayLayout renders dates like "Mon Jan 02 2006".
const dayLayout = "Mon Jan 02 2006"

// BuildReport aggregates events already restricted to the reporting window.
func BuildReport(events []Event, days int, loc *time.Location) Report {
	if loc == nil {
		loc = time.UTC
	}
	r := Report{
		Days:           days,
		TotalEvents:    len(events),
		CTAPerformance: map[string]int{},
		DailyBreakdown: map[string]int{},
	}

	for _, e := range events {
		switch e.Action {
		case ActionCTAClick:
			r.CTAClicks++
		case ActionHeroCTAClick:
			r.HeroCTAClicks++
			r.CTAPerformance[e.Variant]++
		case ActionPageView:
			r.PageViews++
		case ActionSearch:
			r.Searches++
		}
		if strings.Contains(e.Action, "form_submit") {
			r.FormSubmissions++
		}
		r.DailyBreakdown[e.Time().In(loc).Format(dayLayout)]++
	}
	return r
}
