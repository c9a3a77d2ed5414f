package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/analytics"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/scorecard"
	basecache "github.com/debashish967/cricbuzz-dashboard/internal/platform/cache"
)

// AnalyticsRepository caches result tables by query text and arguments.
// Only wrap repositories whose tables ingestion never writes.
type AnalyticsRepository struct {
	next  analytics.Repository
	cache *basecache.Store
}

func NewAnalyticsRepository(next analytics.Repository, cache *basecache.Store) *AnalyticsRepository {
	return &AnalyticsRepository{next: next, cache: cache}
}

func (r *AnalyticsRepository) Query(ctx context.Context, query string, args ...any) (analytics.Table, error) {
	v, err := r.cache.GetOrLoad(ctx, analyticsKey(query, args), func(ctx context.Context) (any, error) {
		table, err := r.next.Query(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		return cloneTable(table), nil
	})
	if err != nil {
		return analytics.Table{}, err
	}

	table, _ := v.(analytics.Table)
	return cloneTable(table), nil
}

func analyticsKey(query string, args []any) string {
	var b strings.Builder
	b.WriteString("analytics:")
	b.WriteString(strings.Join(strings.Fields(query), " "))
	for _, arg := range args {
		fmt.Fprintf(&b, "|%T:%v", arg, arg)
	}
	return b.String()
}

func cloneTable(table analytics.Table) analytics.Table {
	out := analytics.Table{
		Columns: append([]string(nil), table.Columns...),
		Rows:    make([][]any, 0, len(table.Rows)),
	}
	for _, row := range table.Rows {
		out.Rows = append(out.Rows, append([]any(nil), row...))
	}
	return out
}

// ScorecardRepository caches per-match reads and drops them on writes.
type ScorecardRepository struct {
	next  scorecard.Repository
	cache *basecache.Store
}

func NewScorecardRepository(next scorecard.Repository, cache *basecache.Store) *ScorecardRepository {
	return &ScorecardRepository{next: next, cache: cache}
}

func (r *ScorecardRepository) ListTeamScores(ctx context.Context, matchID string) ([]scorecard.TeamScore, error) {
	v, err := r.cache.GetOrLoad(ctx, scorecardKey(matchID)+":scores", func(ctx context.Context) (any, error) {
		items, err := r.next.ListTeamScores(ctx, matchID)
		if err != nil {
			return nil, err
		}
		return append([]scorecard.TeamScore(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]scorecard.TeamScore)
	return append([]scorecard.TeamScore(nil), items...), nil
}

func (r *ScorecardRepository) ListBattingLines(ctx context.Context, matchID string, limit int) ([]scorecard.BattingLine, error) {
	key := fmt.Sprintf("%s:batting:%d", scorecardKey(matchID), limit)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.ListBattingLines(ctx, matchID, limit)
		if err != nil {
			return nil, err
		}
		return append([]scorecard.BattingLine(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]scorecard.BattingLine)
	return append([]scorecard.BattingLine(nil), items...), nil
}

func (r *ScorecardRepository) UpsertTeamScore(ctx context.Context, score scorecard.TeamScore) error {
	if err := r.next.UpsertTeamScore(ctx, score); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, scorecardKey(score.MatchID)+":")
	return nil
}

func (r *ScorecardRepository) InsertBattingLine(ctx context.Context, line scorecard.BattingLine) error {
	if err := r.next.InsertBattingLine(ctx, line); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, scorecardKey(line.MatchID)+":")
	return nil
}

func scorecardKey(matchID string) string {
	return "scorecard:match:" + matchID
}
