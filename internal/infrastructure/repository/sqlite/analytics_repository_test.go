package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/analytics"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_RunsCatalogTemplates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	now := time.Date(2025, time.October, 25, 4, 0, 0, 0, time.UTC)
	require.NoError(t, NewLiveMatchRepository(db).UpsertMany(ctx, []livematch.Match{
		sampleMatch("1", "India won by 5 wickets", 1761366600000, now),
		sampleMatch("2", "India won by 20 runs", 1761366500000, now),
	}))

	repo := NewAnalyticsRepository(db)

	wins, _ := analytics.Lookup("wins-per-team")
	table, err := repo.Query(ctx, wins.SQL)
	require.NoError(t, err)
	assert.Equal(t, []string{"team", "wins"}, table.Columns)
	require.Len(t, table.Rows, 1)
	assert.Equal(t, "India", table.Rows[0][0])
	assert.EqualValues(t, 2, table.Rows[0][1])

	latest, _ := analytics.Lookup("latest-rows")
	_, args, err := latest.Bind(nil)
	require.NoError(t, err)
	table, err = repo.Query(ctx, latest.SQL, args...)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "2025-10-25 04:30:00", table.Rows[0][8])
}

func TestAnalyticsRepository_EveryTemplateCompiles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewAnalyticsRepository(newTestDB(t))

	for _, tmpl := range analytics.Catalog() {
		_, args, err := tmpl.Bind(nil)
		require.NoError(t, err, tmpl.ID)

		table, err := repo.Query(ctx, tmpl.SQL, args...)
		require.NoError(t, err, tmpl.ID)
		assert.NotEmpty(t, table.Columns, tmpl.ID)
		assert.Empty(t, table.Rows, tmpl.ID)
	}
}
