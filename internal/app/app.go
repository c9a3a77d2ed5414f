package app

import (
	"fmt"
	"net/http"

	"github.com/debashish967/cricbuzz-dashboard/external/cricbuzz"
	"github.com/debashish967/cricbuzz-dashboard/internal/config"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/analytics"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/scorecard"
	repocache "github.com/debashish967/cricbuzz-dashboard/internal/infrastructure/repository/cache"
	"github.com/debashish967/cricbuzz-dashboard/internal/infrastructure/repository/sqlite"
	"github.com/debashish967/cricbuzz-dashboard/internal/interfaces/httpapi"
	basecache "github.com/debashish967/cricbuzz-dashboard/internal/platform/cache"
	"github.com/debashish967/cricbuzz-dashboard/internal/platform/logging"
	"github.com/debashish967/cricbuzz-dashboard/internal/usecase"
	"github.com/jmoiron/sqlx"
)

type Services struct {
	LiveMatches *usecase.LiveMatchService
	Ingestion   *usecase.LiveMatchIngestionService
	Dashboard   *usecase.DashboardService
	Scorecards  *usecase.ScorecardService
	Analytics   *usecase.AnalyticsService
}

func NewFeedClient(cfg config.Config, logger *logging.Logger) *cricbuzz.Client {
	return cricbuzz.NewClient(cricbuzz.ClientConfig{
		BaseURL: cfg.CricbuzzBaseURL,
		Host:    cfg.CricbuzzHost,
		APIKey:  cfg.RapidAPIKey,
		Timeout: cfg.CricbuzzTimeout,
		Logger:  logger,
	})
}

func NewServices(cfg config.Config, db *sqlx.DB, logger *logging.Logger) *Services {
	if logger == nil {
		logger = logging.Default()
	}

	liveMatchRepo := sqlite.NewLiveMatchRepository(db)
	analyticsRepo := sqlite.NewAnalyticsRepository(db)

	var scorecardRepo scorecard.Repository = sqlite.NewScorecardRepository(db)
	var staticAnalyticsRepo analytics.Repository = analyticsRepo
	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		scorecardRepo = repocache.NewScorecardRepository(scorecardRepo, store)
		staticAnalyticsRepo = repocache.NewAnalyticsRepository(analyticsRepo, store)
	}

	return &Services{
		LiveMatches: usecase.NewLiveMatchService(liveMatchRepo),
		Ingestion:   usecase.NewLiveMatchIngestionService(NewFeedClient(cfg, logger), liveMatchRepo, logger),
		Dashboard:   usecase.NewDashboardService(liveMatchRepo),
		Scorecards:  usecase.NewScorecardService(liveMatchRepo, scorecardRepo),
		Analytics:   usecase.NewAnalyticsService(analyticsRepo, staticAnalyticsRepo),
	}
}

func NewHTTPServer(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}
	if db == nil {
		return nil, fmt.Errorf("database cannot be nil")
	}

	services := NewServices(cfg, db, logger)
	handler := httpapi.NewHandler(
		services.LiveMatches,
		services.Ingestion,
		services.Dashboard,
		services.Scorecards,
		services.Analytics,
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
