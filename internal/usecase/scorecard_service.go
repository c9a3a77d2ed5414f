package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/scorecard"
)

type ScorecardService struct {
	matchRepo livematch.Repository
	scoreRepo scorecard.Repository
}

func NewScorecardService(matchRepo livematch.Repository, scoreRepo scorecard.Repository) *ScorecardService {
	return &ScorecardService{
		matchRepo: matchRepo,
		scoreRepo: scoreRepo,
	}
}

type RecordTeamScoreInput struct {
	MatchID  string
	TeamName string
	Runs     *int
	Wickets  *int
	Overs    *float64
}

type RecordBattingLineInput struct {
	MatchID    string
	PlayerName string
	Role       string
	Runs       *int
	Balls      *int
}

// Get joins the stored match with its optional team totals and batting lines.
func (s *ScorecardService) Get(ctx context.Context, matchID string) (scorecard.Scorecard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.Get")
	defer span.End()

	match, err := s.loadMatch(ctx, matchID)
	if err != nil {
		return scorecard.Scorecard{}, err
	}

	scores, err := s.scoreRepo.ListTeamScores(ctx, match.ID)
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("%w: list team scores: %w", ErrStorage, err)
	}
	batting, err := s.scoreRepo.ListBattingLines(ctx, match.ID, scorecard.MaxBattingLines)
	if err != nil {
		return scorecard.Scorecard{}, fmt.Errorf("%w: list batting lines: %w", ErrStorage, err)
	}

	return scorecard.Assemble(match, scores, batting), nil
}

func (s *ScorecardService) RecordTeamScore(ctx context.Context, input RecordTeamScoreInput) (scorecard.TeamScore, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.RecordTeamScore")
	defer span.End()

	match, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return scorecard.TeamScore{}, err
	}

	score := scorecard.TeamScore{
		MatchID:  match.ID,
		TeamName: strings.TrimSpace(input.TeamName),
		Runs:     input.Runs,
		Wickets:  input.Wickets,
		Overs:    input.Overs,
	}
	if score.TeamName == "" {
		return scorecard.TeamScore{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}
	if err := s.scoreRepo.UpsertTeamScore(ctx, score); err != nil {
		return scorecard.TeamScore{}, fmt.Errorf("%w: upsert team score: %w", ErrStorage, err)
	}
	return score, nil
}

func (s *ScorecardService) RecordBattingLine(ctx context.Context, input RecordBattingLineInput) (scorecard.BattingLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScorecardService.RecordBattingLine")
	defer span.End()

	match, err := s.loadMatch(ctx, input.MatchID)
	if err != nil {
		return scorecard.BattingLine{}, err
	}

	line := scorecard.BattingLine{
		MatchID:    match.ID,
		PlayerName: strings.TrimSpace(input.PlayerName),
		Role:       strings.TrimSpace(input.Role),
		Runs:       input.Runs,
		Balls:      input.Balls,
	}
	if line.PlayerName == "" {
		return scorecard.BattingLine{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if line.Role == "" {
		line.Role = scorecard.RoleBatsman
	}
	if err := s.scoreRepo.InsertBattingLine(ctx, line); err != nil {
		return scorecard.BattingLine{}, fmt.Errorf("%w: insert batting line: %w", ErrStorage, err)
	}
	return line, nil
}

func (s *ScorecardService) loadMatch(ctx context.Context, matchID string) (livematch.Match, error) {
	matchID = livematch.NormalizeID(matchID)
	if matchID == "" {
		return livematch.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	match, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return livematch.Match{}, fmt.Errorf("%w: get live match: %w", ErrStorage, err)
	}
	if !exists {
		return livematch.Match{}, fmt.Errorf("%w: live match id=%s", ErrNotFound, matchID)
	}
	return match, nil
}
