package sqlite

import (
	"context"
	"fmt"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
	qb "github.com/debashish967/cricbuzz-dashboard/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

type LiveMatchRepository struct {
	db *sqlx.DB
}

func NewLiveMatchRepository(db *sqlx.DB) *LiveMatchRepository {
	return &LiveMatchRepository{db: db}
}

// UpsertMany writes the batch in a single transaction keyed by match_id.
// Later entries for the same id overwrite earlier ones.
func (r *LiveMatchRepository) UpsertMany(ctx context.Context, matches []livematch.Match) error {
	if len(matches) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert live matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, match := range matches {
		query, args, err := qb.UpsertModel(liveMatchesTable, liveMatchModelFromDomain(match), "match_id")
		if err != nil {
			return fmt.Errorf("build upsert live match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert live match id=%s: %w", match.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert live matches tx: %w", err)
	}
	return nil
}

func (r *LiveMatchRepository) List(ctx context.Context, q livematch.ListQuery) ([]livematch.Match, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = livematch.DefaultListLimit
	}

	orderBy := []string{"COALESCE(start_ts, 0) DESC", "series_name", "match_id"}
	if q.Order == livematch.ListOrderSeries {
		orderBy = []string{"series_name", "team1", "match_id"}
	}

	query, args, err := qb.Select("*").From(liveMatchesTable).
		OrderBy(orderBy...).
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list live matches query: %w", err)
	}

	var rows []liveMatchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list live matches: %w", err)
	}

	out := make([]livematch.Match, 0, len(rows))
	for _, row := range rows {
		item, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *LiveMatchRepository) GetByID(ctx context.Context, matchID string) (livematch.Match, bool, error) {
	query, args, err := qb.Select("*").From(liveMatchesTable).
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return livematch.Match{}, false, fmt.Errorf("build get live match query: %w", err)
	}

	var row liveMatchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return livematch.Match{}, false, nil
		}
		return livematch.Match{}, false, fmt.Errorf("get live match id=%s: %w", matchID, err)
	}

	item, err := row.toDomain()
	if err != nil {
		return livematch.Match{}, false, err
	}
	return item, true, nil
}

func (r *LiveMatchRepository) Replace(ctx context.Context, match livematch.Match) error {
	query, args, err := qb.ReplaceModel(liveMatchesTable, liveMatchModelFromDomain(match))
	if err != nil {
		return fmt.Errorf("build replace live match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("replace live match id=%s: %w", match.ID, err)
	}
	return nil
}

func (r *LiveMatchRepository) UpdateDetails(ctx context.Context, match livematch.Match) (bool, error) {
	model := liveMatchModelFromDomain(match)
	query, args, err := qb.Update(liveMatchesTable).
		Set("series_name", model.SeriesName).
		Set("team1", model.Team1).
		Set("team2", model.Team2).
		Set("status", model.Status).
		Set("winner", model.Winner).
		Set("victory_type", model.VictoryType).
		Set("victory_margin", model.VictoryMargin).
		Set("is_complete", model.IsComplete).
		Set("updated_at", model.UpdatedAt).
		Where(qb.Eq("match_id", model.MatchID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update live match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update live match id=%s: %w", match.ID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected update live match id=%s: %w", match.ID, err)
	}
	return affected > 0, nil
}

func (r *LiveMatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	query, args, err := qb.DeleteFrom(liveMatchesTable).
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete live match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete live match id=%s: %w", matchID, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete live match id=%s: %w", matchID, err)
	}
	return affected > 0, nil
}

func (r *LiveMatchRepository) Summary(ctx context.Context) (livematch.Summary, error) {
	query, args, err := qb.Select(
		"COUNT(*) AS matches_stored",
		"MAX(updated_at) AS last_updated_at",
	).From(liveMatchesTable).ToSQL()
	if err != nil {
		return livematch.Summary{}, fmt.Errorf("build live match summary query: %w", err)
	}

	var row liveMatchSummaryRow
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		return livematch.Summary{}, fmt.Errorf("live match summary: %w", err)
	}

	summary := livematch.Summary{MatchesStored: row.MatchesStored}
	if row.LastUpdatedAt.Valid && row.LastUpdatedAt.String != "" {
		lastUpdated, err := livematch.ParseTimestamp(row.LastUpdatedAt.String)
		if err != nil {
			return livematch.Summary{}, fmt.Errorf("parse last updated_at: %w", err)
		}
		summary.LastUpdatedAt = &lastUpdated
	}
	return summary, nil
}
