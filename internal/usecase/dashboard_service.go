package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
)

type Dashboard struct {
	MatchesStored int
	LastUpdatedAt *time.Time
}

type dashboardSummaryReader interface {
	Summary(ctx context.Context) (livematch.Summary, error)
}

type DashboardService struct {
	summaries dashboardSummaryReader
}

func NewDashboardService(summaries dashboardSummaryReader) *DashboardService {
	return &DashboardService{summaries: summaries}
}

func (s *DashboardService) Get(ctx context.Context) (Dashboard, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DashboardService.Get")
	defer span.End()

	summary, err := s.summaries.Summary(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("%w: summarize live matches: %w", ErrStorage, err)
	}

	return Dashboard{
		MatchesStored: summary.MatchesStored,
		LastUpdatedAt: summary.LastUpdatedAt,
	}, nil
}
