package startups

import "incubator/pkg/filter"

// AllOption is the single-select value that disables a dimension.
const AllOption = "All"

// Metric is one display pair on a portfolio card, e.g. users: 50K+.
type Metric struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Startup struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Sector      string   `json:"sector"`
	Stage       string   `json:"stage"`
	Funding     string   `json:"funding"`
	Description string   `json:"description"`
	Logo        string   `json:"logo"`
	Metrics     []Metric `json:"metrics"`
}

// Criteria is the portfolio filter state. Sector and Stage are single-select;
// empty or AllOption means no filter.
type Criteria struct {
	Search string `json:"search,omitempty"`
	Sector string `json:"sector,omitempty"`
	Stage  string `json:"stage,omitempty"`
}

type StartupList struct {
	Items []Startup `json:"items"`
	Count int       `json:"count"`
	Total int       `json:"total"`
}

type StartupOptions struct {
	Sectors []filter.Option `json:"sectors"`
	Stages  []filter.Option `json:"stages"`
}
