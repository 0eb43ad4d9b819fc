package startups

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func portfolio() []Startup {
	return []Startup{
		{ID: 1, Name: "EcoTech Solutions", Sector: "CleanTech", Stage: "Series A", Description: "Renewable energy grids"},
		{ID: 2, Name: "HealthAI", Sector: "HealthTech", Stage: "Seed", Description: "AI diagnostics"},
		{ID: 3, Name: "FinFlow", Sector: "FinTech", Stage: "MVP", Description: "Cash flow for small business"},
		{ID: 4, Name: "EduVerse", Sector: "EdTech", Stage: "Revenue", Description: "VR classrooms"},
		{ID: 5, Name: "FoodChain", Sector: "AgriTech", Stage: "Scaling", Description: "Supply chain for farms"},
		{ID: 6, Name: "UrbanMobility", Sector: "Mobility", Stage: "Seed", Description: "Smart transit"},
	}
}

func ids(all []Startup) []int64 {
	out := make([]int64, len(all))
	for i, s := range all {
		out[i] = s.ID
	}
	return out
}

func TestFilter_AllMeansNoFilter(t *testing.T) {
	store := portfolio()
	require.Equal(t, store, Filter(store, Criteria{Sector: AllOption, Stage: AllOption}))
	require.Equal(t, store, Filter(store, Criteria{}))
}

func TestFilter_StageSingleSelect(t *testing.T) {
	got := Filter(portfolio(), Criteria{Stage: "Seed"})
	require.Equal(t, []int64{2, 6}, ids(got))
}

func TestFilter_SectorAndSearch(t *testing.T) {
	got := Filter(portfolio(), Criteria{Search: "CHAIN", Sector: "AgriTech"})
	require.Equal(t, []int64{5}, ids(got))

	got = Filter(portfolio(), Criteria{Search: "chain", Sector: "FinTech"})
	require.Empty(t, got)
}

func TestFilter_SearchIgnoresSector(t *testing.T) {
	got := Filter(portfolio(), Criteria{Search: "fintech"})
	require.Empty(t, got)
}

func TestBuildOptions_AllCountsStore(t *testing.T) {
	opts := buildOptions(portfolio())

	require.Equal(t, AllOption, opts.Sectors[0].Value)
	require.Equal(t, 6, opts.Sectors[0].Count)
	require.Equal(t, AllOption, opts.Stages[0].Value)

	for _, o := range opts.Stages {
		if o.Value == "Seed" {
			require.Equal(t, 2, o.Count)
		}
	}
}
