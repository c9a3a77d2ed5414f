package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/analytics"
)

// AnalyticsService runs catalog templates only. Live-table templates always
// hit the store; analytical templates go through staticRepo, which may cache.
type AnalyticsService struct {
	liveRepo   analytics.Repository
	staticRepo analytics.Repository
}

func NewAnalyticsService(liveRepo, staticRepo analytics.Repository) *AnalyticsService {
	if staticRepo == nil {
		staticRepo = liveRepo
	}
	return &AnalyticsService{
		liveRepo:   liveRepo,
		staticRepo: staticRepo,
	}
}

func (s *AnalyticsService) ListTemplates(ctx context.Context) []analytics.Template {
	_, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.ListTemplates")
	defer span.End()

	return analytics.Catalog()
}

func (s *AnalyticsService) Run(ctx context.Context, templateID string, params map[string]any) (analytics.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AnalyticsService.Run")
	defer span.End()

	templateID = strings.TrimSpace(templateID)
	tmpl, ok := analytics.Lookup(templateID)
	if !ok {
		return analytics.Result{}, fmt.Errorf("%w: %w %q", ErrNotFound, analytics.ErrUnknownTemplate, templateID)
	}

	resolved, args, err := tmpl.Bind(params)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidParam) {
			return analytics.Result{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		return analytics.Result{}, err
	}

	repo := s.liveRepo
	if tmpl.Cacheable() {
		repo = s.staticRepo
	}

	table, err := repo.Query(ctx, tmpl.SQL, args...)
	if err != nil {
		err = fmt.Errorf("%w: run template %s: %w", ErrStorage, tmpl.ID, err)
		recordSpanFailure(span, err)
		return analytics.Result{}, err
	}

	return analytics.Result{
		TemplateID: tmpl.ID,
		Params:     resolved,
		Table:      table,
	}, nil
}
