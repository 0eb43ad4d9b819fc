package testhelpers

import (
	"context"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"incubator/pkg/db"
)

// SetupTestPool connects to DATABASE_URL_FOR_TEST and applies the schema.
// Tests are skipped when the variable is unset.
func SetupTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("DATABASE_URL_FOR_TEST")
	if dsn == "" {
		t.Skip("DATABASE_URL_FOR_TEST not set; skipping repository tests")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, db.PoolOptions{URL: dsn, MaxConns: 4})
	require.NoError(t, err)
	require.NoError(t, db.ApplySchema(ctx, pool, ""))

	t.Cleanup(pool.Close)
	return pool
}

// DeleteRSVPs removes every RSVP for eventID.
func DeleteRSVPs(t *testing.T, pool *pgxpool.Pool, eventID string) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "DELETE FROM rsvps WHERE event_id = $1", eventID)
	require.NoError(t, err)
}

// TruncateCatalog empties the catalog tables.
func TruncateCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(), "TRUNCATE TABLE jobs, startups, events, team_members, faqs, programs")
	require.NoError(t, err)
}
