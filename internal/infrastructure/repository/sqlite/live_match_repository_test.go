package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleMatch(id, status string, startTS int64, updatedAt time.Time) livematch.Match {
	match := livematch.Match{
		ID:           id,
		SeriesName:   "Asia Cup 2025",
		Team1:        "India",
		Team2:        "Pakistan",
		Status:       status,
		Description:  "Final",
		Format:       "T20",
		StartTS:      &startTS,
		VenueName:    "Dubai International Cricket Stadium",
		VenueCity:    "Dubai",
		VenueCountry: "United Arab Emirates",
		UpdatedAt:    updatedAt,
	}
	match.Rederive()
	return match
}

func TestLiveMatchRepository_UpsertManyIsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLiveMatchRepository(newTestDB(t))
	now := time.Date(2025, time.October, 25, 4, 30, 0, 0, time.UTC)

	batch := []livematch.Match{
		sampleMatch("101", "India won by 5 wickets", 1761366600000, now),
		sampleMatch("102", "Stumps - Day 1", 1761366500, now),
	}
	require.NoError(t, repo.UpsertMany(ctx, batch))
	require.NoError(t, repo.UpsertMany(ctx, batch))

	summary, err := repo.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.MatchesStored)
	require.NotNil(t, summary.LastUpdatedAt)
	assert.True(t, summary.LastUpdatedAt.Equal(now))

	got, exists, err := repo.GetByID(ctx, "101")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Equal(t, "India", got.Outcome.Winner)
	assert.Equal(t, livematch.VictoryByWickets, got.Outcome.VictoryType)
	require.NotNil(t, got.Outcome.VictoryMargin)
	assert.Equal(t, 5, *got.Outcome.VictoryMargin)
	assert.True(t, got.Outcome.IsComplete)
	require.NotNil(t, got.StartTS)
	assert.Equal(t, int64(1761366600000), *got.StartTS)
}

func TestLiveMatchRepository_UpsertOverwritesEveryColumn(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLiveMatchRepository(newTestDB(t))
	first := time.Date(2025, time.October, 25, 4, 0, 0, 0, time.UTC)
	second := first.Add(10 * time.Minute)

	require.NoError(t, repo.UpsertMany(ctx, []livematch.Match{sampleMatch("7", "Australia won by 34 runs", 1761366600, first)}))

	replacement := livematch.Match{ID: "7", Status: "Match abandoned", UpdatedAt: second}
	replacement.Rederive()
	require.NoError(t, repo.UpsertMany(ctx, []livematch.Match{replacement}))

	got, exists, err := repo.GetByID(ctx, "7")
	require.NoError(t, err)
	require.True(t, exists)
	assert.Empty(t, got.SeriesName)
	assert.Empty(t, got.Outcome.Winner)
	assert.Nil(t, got.Outcome.VictoryMargin)
	assert.Nil(t, got.StartTS)
	assert.True(t, got.Outcome.IsComplete)
	assert.True(t, got.UpdatedAt.Equal(second))
}

func TestLiveMatchRepository_ListOrders(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLiveMatchRepository(newTestDB(t))
	now := time.Date(2025, time.October, 25, 4, 0, 0, 0, time.UTC)

	early := sampleMatch("a", "", 1000, now)
	early.SeriesName = "Zimbabwe tour"
	late := sampleMatch("b", "", 2000, now)
	late.SeriesName = "Ashes"
	unknown := livematch.Match{ID: "c", SeriesName: "Big Bash", UpdatedAt: now}
	require.NoError(t, repo.UpsertMany(ctx, []livematch.Match{early, late, unknown}))

	recent, err := repo.List(ctx, livematch.ListQuery{Order: livematch.ListOrderRecent})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "c"}, matchIDs(recent))

	bySeries, err := repo.List(ctx, livematch.ListQuery{Order: livematch.ListOrderSeries, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, matchIDs(bySeries))
}

func TestLiveMatchRepository_ReplaceUpdateDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := NewLiveMatchRepository(newTestDB(t))
	now := time.Date(2025, time.October, 25, 4, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Replace(ctx, sampleMatch("m1", "Live", 1761366600, now)))

	edit := livematch.Match{ID: "m1", SeriesName: "Renamed", Team1: "NZ", Team2: "SA", Status: "SA won by 3 runs", UpdatedAt: now.Add(time.Minute)}
	edit.Rederive()
	updated, err := repo.UpdateDetails(ctx, edit)
	require.NoError(t, err)
	require.True(t, updated)

	got, _, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.SeriesName)
	assert.Equal(t, "SA", got.Outcome.Winner)
	assert.Equal(t, "Dubai", got.VenueCity, "venue is not an editable column")

	missing, err := repo.UpdateDetails(ctx, livematch.Match{ID: "nope", UpdatedAt: now})
	require.NoError(t, err)
	assert.False(t, missing)

	deleted, err := repo.Delete(ctx, "m1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, exists, err := repo.GetByID(ctx, "m1")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLiveMatchRepository_SummaryEmpty(t *testing.T) {
	t.Parallel()

	summary, err := NewLiveMatchRepository(newTestDB(t)).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.MatchesStored)
	assert.Nil(t, summary.LastUpdatedAt)
}

func TestLiveMatchRepository_UpsertManyRollsBackWholeBatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	_, err := db.ExecContext(ctx, `CREATE TRIGGER reject_bad_match BEFORE INSERT ON live_matches
WHEN NEW.match_id = 'bad'
BEGIN
	SELECT RAISE(ABORT, 'rejected');
END`)
	require.NoError(t, err)

	repo := NewLiveMatchRepository(db)
	now := time.Date(2025, time.October, 25, 4, 30, 0, 0, time.UTC)
	err = repo.UpsertMany(ctx, []livematch.Match{
		sampleMatch("a", "India won by 5 wickets", 1761366600, now),
		sampleMatch("bad", "Stumps - Day 1", 1761366600, now),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id=bad")

	var rows int
	require.NoError(t, db.GetContext(ctx, &rows, "SELECT COUNT(*) FROM live_matches"))
	assert.Zero(t, rows, "earlier rows of a failed batch must not be committed")
}

func matchIDs(matches []livematch.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.ID)
	}
	return out
}
