package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"incubator/pkg/testhelpers"
)

func TestPostgresLoader_SeedThenLoad(t *testing.T) {
	pool := testhelpers.SetupTestPool(t)
	testhelpers.TruncateCatalog(t, pool)
	ctx := context.Background()

	want, err := EmbeddedLoader().Load(ctx)
	require.NoError(t, err)
	require.NoError(t, Seed(ctx, pool, want))

	got, err := NewPostgresLoader(pool).Load(ctx)
	require.NoError(t, err)

	require.Len(t, got.Jobs, len(want.Jobs))
	require.Equal(t, want.Jobs[0].ID, got.Jobs[0].ID)
	require.Equal(t, want.Startups[0].Metrics, got.Startups[0].Metrics)
	require.Equal(t, want.Events[1].Speakers, got.Events[1].Speakers)
	require.Equal(t, want.Programs[2].Benefits, got.Programs[2].Benefits)
}
