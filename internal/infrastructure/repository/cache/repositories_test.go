package cache

import (
	"context"
	"testing"
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/analytics"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/scorecard"
	analyticsmock "github.com/debashish967/cricbuzz-dashboard/internal/mocks/domain/analytics"
	scorecardmock "github.com/debashish967/cricbuzz-dashboard/internal/mocks/domain/scorecard"
	basecache "github.com/debashish967/cricbuzz-dashboard/internal/platform/cache"
	"github.com/stretchr/testify/require"
)

func TestAnalyticsRepository_CachesByQueryAndArgs(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := analyticsmock.NewRepository(t)
	query := "SELECT full_name FROM players WHERE country = ?"

	next.On("Query", ctx, query, "India").
		Return(analytics.Table{Columns: []string{"full_name"}, Rows: [][]any{{"Virat Kohli"}}}, nil).
		Once()
	next.On("Query", ctx, query, "Nepal").
		Return(analytics.Table{Columns: []string{"full_name"}}, nil).
		Once()

	repo := NewAnalyticsRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.Query(ctx, query, "India")
	require.NoError(t, err)
	first.Rows[0][0] = "mutated"

	second, err := repo.Query(ctx, query, "India")
	require.NoError(t, err)
	require.Equal(t, "Virat Kohli", second.Rows[0][0])

	other, err := repo.Query(ctx, query, "Nepal")
	require.NoError(t, err)
	require.Empty(t, other.Rows)
}

func TestAnalyticsKey_DistinguishesArgTypes(t *testing.T) {
	t.Parallel()

	if analyticsKey("SELECT ?", []any{int64(1)}) == analyticsKey("SELECT ?", []any{"1"}) {
		t.Fatalf("expected different keys for int and string args")
	}
	if analyticsKey("SELECT  1\nFROM t", nil) != analyticsKey("SELECT 1 FROM t", nil) {
		t.Fatalf("expected whitespace-insensitive keys")
	}
}

func TestScorecardRepository_WriteInvalidatesMatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	next := scorecardmock.NewRepository(t)
	runs := 200

	next.On("ListTeamScores", ctx, "m1").Return([]scorecard.TeamScore{}, nil).Once()
	next.On("UpsertTeamScore", ctx, scorecard.TeamScore{MatchID: "m1", TeamName: "India", Runs: &runs}).Return(nil).Once()
	next.On("ListTeamScores", ctx, "m1").Return([]scorecard.TeamScore{{MatchID: "m1", TeamName: "India", Runs: &runs}}, nil).Once()

	repo := NewScorecardRepository(next, basecache.NewStore(time.Minute))

	scores, err := repo.ListTeamScores(ctx, "m1")
	require.NoError(t, err)
	require.Empty(t, scores)

	scores, err = repo.ListTeamScores(ctx, "m1")
	require.NoError(t, err)
	require.Empty(t, scores)

	require.NoError(t, repo.UpsertTeamScore(ctx, scorecard.TeamScore{MatchID: "m1", TeamName: "India", Runs: &runs}))

	scores, err = repo.ListTeamScores(ctx, "m1")
	require.NoError(t, err)
	require.Len(t, scores, 1)
}
