package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
)

type LiveMatchService struct {
	repo livematch.Repository
	now  func() time.Time
}

func NewLiveMatchService(repo livematch.Repository) *LiveMatchService {
	return &LiveMatchService{repo: repo, now: time.Now}
}

type ListLiveMatchesInput struct {
	Limit int
	Order string
}

// SaveLiveMatchInput carries a manually entered match. Outcome fields are
// always derived from Status.
type SaveLiveMatchInput struct {
	MatchID      string
	SeriesName   string
	Team1        string
	Team2        string
	Status       string
	Description  string
	Format       string
	StartTS      *int64
	VenueName    string
	VenueCity    string
	VenueCountry string
}

type UpdateLiveMatchInput struct {
	MatchID    string
	SeriesName string
	Team1      string
	Team2      string
	Status     string
}

func (s *LiveMatchService) List(ctx context.Context, input ListLiveMatchesInput) ([]livematch.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.List")
	defer span.End()

	query, err := normalizeListQuery(input)
	if err != nil {
		return nil, err
	}

	matches, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list live matches: %w", ErrStorage, err)
	}
	return matches, nil
}

func normalizeListQuery(input ListLiveMatchesInput) (livematch.ListQuery, error) {
	query := livematch.ListQuery{Limit: input.Limit, Order: livematch.ListOrderRecent}
	switch {
	case query.Limit == 0:
		query.Limit = livematch.DefaultListLimit
	case query.Limit < 0 || query.Limit > livematch.MaxListLimit:
		return livematch.ListQuery{}, fmt.Errorf("%w: limit must be between 1 and %d", ErrInvalidInput, livematch.MaxListLimit)
	}

	switch order := livematch.ListOrder(strings.ToLower(strings.TrimSpace(input.Order))); order {
	case "", livematch.ListOrderRecent:
	case livematch.ListOrderSeries:
		query.Order = order
	default:
		return livematch.ListQuery{}, fmt.Errorf("%w: unsupported order %q", ErrInvalidInput, input.Order)
	}
	return query, nil
}

func (s *LiveMatchService) Get(ctx context.Context, matchID string) (livematch.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Get")
	defer span.End()

	matchID = livematch.NormalizeID(matchID)
	if matchID == "" {
		return livematch.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	match, exists, err := s.repo.GetByID(ctx, matchID)
	if err != nil {
		return livematch.Match{}, fmt.Errorf("%w: get live match: %w", ErrStorage, err)
	}
	if !exists {
		return livematch.Match{}, fmt.Errorf("%w: live match id=%s", ErrNotFound, matchID)
	}
	return match, nil
}

// Save inserts a match or replaces the whole stored row.
func (s *LiveMatchService) Save(ctx context.Context, input SaveLiveMatchInput) (livematch.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Save")
	defer span.End()

	match := livematch.Match{
		ID:           livematch.NormalizeID(input.MatchID),
		SeriesName:   strings.TrimSpace(input.SeriesName),
		Team1:        strings.TrimSpace(input.Team1),
		Team2:        strings.TrimSpace(input.Team2),
		Status:       strings.TrimSpace(input.Status),
		Description:  strings.TrimSpace(input.Description),
		Format:       strings.TrimSpace(input.Format),
		StartTS:      input.StartTS,
		VenueName:    strings.TrimSpace(input.VenueName),
		VenueCity:    strings.TrimSpace(input.VenueCity),
		VenueCountry: strings.TrimSpace(input.VenueCountry),
		UpdatedAt:    s.now().UTC().Truncate(time.Second),
	}
	if match.ID == "" {
		return livematch.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	match.Rederive()

	if err := s.repo.Replace(ctx, match); err != nil {
		return livematch.Match{}, fmt.Errorf("%w: save live match: %w", ErrStorage, err)
	}
	return match, nil
}

func (s *LiveMatchService) Update(ctx context.Context, input UpdateLiveMatchInput) (livematch.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Update")
	defer span.End()

	match := livematch.Match{
		ID:         livematch.NormalizeID(input.MatchID),
		SeriesName: strings.TrimSpace(input.SeriesName),
		Team1:      strings.TrimSpace(input.Team1),
		Team2:      strings.TrimSpace(input.Team2),
		Status:     strings.TrimSpace(input.Status),
		UpdatedAt:  s.now().UTC().Truncate(time.Second),
	}
	if match.ID == "" {
		return livematch.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	match.Rederive()

	updated, err := s.repo.UpdateDetails(ctx, match)
	if err != nil {
		return livematch.Match{}, fmt.Errorf("%w: update live match: %w", ErrStorage, err)
	}
	if !updated {
		return livematch.Match{}, fmt.Errorf("%w: live match id=%s", ErrNotFound, match.ID)
	}

	return s.Get(ctx, match.ID)
}

// Delete removes one stored match. An empty id addresses the row that
// ingestion keeps for feed entries without a match id.
func (s *LiveMatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchService.Delete")
	defer span.End()

	matchID = livematch.NormalizeID(matchID)
	deleted, err := s.repo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("%w: delete live match: %w", ErrStorage, err)
	}
	if !deleted {
		return fmt.Errorf("%w: live match id=%s", ErrNotFound, matchID)
	}
	return nil
}
