package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/scorecard"
	qb "github.com/debashish967/cricbuzz-dashboard/internal/platform/querybuilder"
	"github.com/jmoiron/sqlx"
)

const (
	matchScoreTable  = "match_score"
	playerStatsTable = "player_stats"
)

type teamScoreTableModel struct {
	MatchID  string          `db:"match_id"`
	TeamName string          `db:"team_name"`
	Runs     sql.NullInt64   `db:"runs"`
	Wickets  sql.NullInt64   `db:"wickets"`
	Overs    sql.NullFloat64 `db:"overs"`
}

type battingLineInsertModel struct {
	MatchID    string        `db:"match_id"`
	PlayerName string        `db:"player_name"`
	Role       string        `db:"role"`
	Runs       sql.NullInt64 `db:"runs"`
	Balls      sql.NullInt64 `db:"balls"`
}

type battingLineRow struct {
	ID         int64         `db:"id"`
	MatchID    string        `db:"match_id"`
	PlayerName string        `db:"player_name"`
	Role       string        `db:"role"`
	Runs       sql.NullInt64 `db:"runs"`
	Balls      sql.NullInt64 `db:"balls"`
}

type ScorecardRepository struct {
	db *sqlx.DB
}

func NewScorecardRepository(db *sqlx.DB) *ScorecardRepository {
	return &ScorecardRepository{db: db}
}

func (r *ScorecardRepository) ListTeamScores(ctx context.Context, matchID string) ([]scorecard.TeamScore, error) {
	query, args, err := qb.Select("match_id", "team_name", "runs", "wickets", "overs").
		From(matchScoreTable).
		Where(qb.Eq("match_id", matchID)).
		OrderBy("team_name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list team scores query: %w", err)
	}

	var rows []teamScoreTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list team scores match=%s: %w", matchID, err)
	}

	out := make([]scorecard.TeamScore, 0, len(rows))
	for _, row := range rows {
		out = append(out, scorecard.TeamScore{
			MatchID:  row.MatchID,
			TeamName: row.TeamName,
			Runs:     nullInt64ToIntPtr(row.Runs),
			Wickets:  nullInt64ToIntPtr(row.Wickets),
			Overs:    nullFloat64ToPtr(row.Overs),
		})
	}
	return out, nil
}

// ListBattingLines returns batting rows in insertion order.
func (r *ScorecardRepository) ListBattingLines(ctx context.Context, matchID string, limit int) ([]scorecard.BattingLine, error) {
	if limit <= 0 {
		limit = scorecard.MaxBattingLines
	}

	query, args, err := qb.Select("id", "match_id", "player_name", "role", "runs", "balls").
		From(playerStatsTable).
		Where(
			qb.Eq("match_id", matchID),
			qb.Eq("role", scorecard.RoleBatsman),
		).
		OrderBy("id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list batting lines query: %w", err)
	}

	var rows []battingLineRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list batting lines match=%s: %w", matchID, err)
	}

	out := make([]scorecard.BattingLine, 0, len(rows))
	for _, row := range rows {
		out = append(out, scorecard.BattingLine{
			MatchID:    row.MatchID,
			PlayerName: row.PlayerName,
			Role:       row.Role,
			Runs:       nullInt64ToIntPtr(row.Runs),
			Balls:      nullInt64ToIntPtr(row.Balls),
		})
	}
	return out, nil
}

func (r *ScorecardRepository) UpsertTeamScore(ctx context.Context, score scorecard.TeamScore) error {
	model := teamScoreTableModel{
		MatchID:  score.MatchID,
		TeamName: score.TeamName,
		Runs:     nullableIntPtr(score.Runs),
		Wickets:  nullableIntPtr(score.Wickets),
		Overs:    nullableFloat64Ptr(score.Overs),
	}
	query, args, err := qb.UpsertModel(matchScoreTable, model, "match_id", "team_name")
	if err != nil {
		return fmt.Errorf("build upsert team score query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert team score match=%s team=%s: %w", score.MatchID, score.TeamName, err)
	}
	return nil
}

func (r *ScorecardRepository) InsertBattingLine(ctx context.Context, line scorecard.BattingLine) error {
	model := battingLineInsertModel{
		MatchID:    line.MatchID,
		PlayerName: line.PlayerName,
		Role:       line.Role,
		Runs:       nullableIntPtr(line.Runs),
		Balls:      nullableIntPtr(line.Balls),
	}
	query, args, err := qb.InsertModel(playerStatsTable, model, "")
	if err != nil {
		return fmt.Errorf("build insert batting line query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert batting line match=%s player=%s: %w", line.MatchID, line.PlayerName, err)
	}
	return nil
}
