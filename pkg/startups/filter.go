package startups

import "incubator/pkg/filter"

var (
	sectorCatalog = filter.Labels(AllOption, "CleanTech", "HealthTech", "FinTech", "EdTech", "AgriTech", "Mobility")
	stageCatalog  = filter.Labels(AllOption, "MVP", "Seed", "Revenue", "Series A", "Scaling")
)

// Filter returns the startups matching every active criterion, in store order.
func Filter(all []Startup, c Criteria) []Startup {
	return filter.Apply(all,
		filter.Text(c.Search, func(s Startup) []string { return []string{s.Name, s.Description} }),
		filter.OneOf(single(c.Sector), func(s Startup) string { return s.Sector }),
		filter.OneOf(single(c.Stage), func(s Startup) string { return s.Stage }),
	)
}

// single turns a single-select value into a selection set.
func single(v string) []string {
	if v == "" || v == AllOption {
		return nil
	}
	return []string{v}
}

func matchSector(s Startup, v string) bool { return v == AllOption || s.Sector == v }
func matchStage(s Startup, v string) bool  { return v == AllOption || s.Stage == v }

func buildOptions(all []Startup) StartupOptions {
	return StartupOptions{
		Sectors: filter.Count(sectorCatalog, all, matchSector),
		Stages:  filter.Count(stageCatalog, all, matchStage),
	}
}
