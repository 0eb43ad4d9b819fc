package jobs

import "incubator/pkg/filter"

const (
	TypeFullTime   = "Full-Time"
	TypePartTime   = "Part-Time"
	TypeContract   = "Contract"
	TypeInternship = "Internship"

	// Location pseudo-values derived from the remote flag.
	LocationRemote = "Remote"
	LocationOnSite = "On-site"
)

type Job struct {
	ID          string `json:"id"`
	Startup     string `json:"startup"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Remote      bool   `json:"remote"`
	Type        string `json:"type"`
	Sector      string `json:"sector"`
	Description string `json:"description"`
	ApplyLink   string `json:"apply_link"`
	Salary      string `json:"salary"`
	Equity      string `json:"equity"`
	Experience  string `json:"experience"`
	Featured    bool   `json:"featured"`
}

// Criteria is the jobs page filter state. Empty slices mean "no filter".
type Criteria struct {
	Search    string   `json:"search,omitempty"`
	Types     []string `json:"types,omitempty"`
	Locations []string `json:"locations,omitempty"`
	Sectors   []string `json:"sectors,omitempty"`
}

func (c Criteria) Active() bool {
	return c.Search != "" || len(c.Types) > 0 || len(c.Locations) > 0 || len(c.Sectors) > 0
}

type Stats struct {
	Total     int `json:"total"`
	Companies int `json:"companies"`
	Remote    int `json:"remote"`
	Featured  int `json:"featured"`
}

type JobList struct {
	Items []Job `json:"items"`
	Count int   `json:"count"`
	Total int   `json:"total"`
	Stats Stats `json:"stats"`
}

type JobOptions struct {
	Types     []filter.Option `json:"types"`
	Locations []filter.Option `json:"locations"`
	Sectors   []filter.Option `json:"sectors"`
}
