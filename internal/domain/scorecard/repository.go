package scorecard

import "context"

// Repository reads the auxiliary scorecard tables.
type Repository interface {
	ListTeamScores(ctx context.Context, matchID string) ([]TeamScore, error)
	ListBattingLines(ctx context.Context, matchID string, limit int) ([]BattingLine, error)
	UpsertTeamScore(ctx context.Context, score TeamScore) error
	InsertBattingLine(ctx context.Context, line BattingLine) error
}
