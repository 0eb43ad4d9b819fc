package jobs

import (
	"strings"

	"incubator/pkg/filter"
)

var (
	typeCatalog = filter.Labels(TypeFullTime, TypePartTime, TypeContract, TypeInternship)

	locationCatalog = filter.Labels(
		LocationRemote, LocationOnSite,
		"San Francisco", "New York", "Austin", "Boston", "Los Angeles", "Chicago", "Miami",
	)

	sectorCatalog = filter.Labels(
		"FinTech", "HealthTech", "CleanTech", "SaaS", "FoodTech",
		"CyberSecurity", "EdTech", "BioTech", "PropTech",
	)
)

// Filter returns the jobs matching every active criterion, in store order.
func Filter(jobs []Job, c Criteria) []Job {
	return filter.Apply(jobs,
		filter.Text(c.Search, searchFields),
		filter.OneOf(c.Types, func(j Job) string { return j.Type }),
		filter.Any(c.Locations, MatchesLocation),
		filter.OneOf(c.Sectors, func(j Job) string { return j.Sector }),
	)
}

func searchFields(j Job) []string {
	return []string{j.Title, j.Startup, j.Description}
}

// MatchesLocation resolves the Remote/On-site pseudo-values against the remote
// flag first; any value (pseudo-values included) then falls back to a substring
// match on the location string.
func MatchesLocation(j Job, loc string) bool {
	if loc == LocationRemote && j.Remote {
		return true
	}
	if loc == LocationOnSite && !j.Remote {
		return true
	}
	return loc != "" && strings.Contains(j.Location, loc)
}

func computeStats(jobs []Job) Stats {
	companies := make(map[string]struct{})
	s := Stats{Total: len(jobs)}
	for _, j := range jobs {
		companies[j.Startup] = struct{}{}
		if j.Remote {
			s.Remote++
		}
		if j.Featured {
			s.Featured++
		}
	}
	s.Companies = len(companies)
	return s
}

func buildOptions(jobs []Job) JobOptions {
	return JobOptions{
		Types:     filter.Count(typeCatalog, jobs, func(j Job, v string) bool { return j.Type == v }),
		Locations: filter.Count(locationCatalog, jobs, MatchesLocation),
		Sectors:   filter.Count(sectorCatalog, jobs, func(j Job, v string) bool { return j.Sector == v }),
	}
}
