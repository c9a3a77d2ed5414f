package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/debashish967/cricbuzz-dashboard/internal/app"
	"github.com/debashish967/cricbuzz-dashboard/internal/config"
	"github.com/debashish967/cricbuzz-dashboard/internal/platform/logging"
	"github.com/debashish967/cricbuzz-dashboard/internal/usecase"
)

// Exit codes by failure kind, so schedulers can tell a retryable run apart.
const (
	exitOK = iota
	exitInternal
	exitTransport
	exitConfig
	exitUpstream
	exitStorage
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		return exitConfig
	}

	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	})
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := app.OpenDatabase(ctx, cfg, logger)
	if err != nil {
		logger.ErrorContext(ctx, "open database", "error", err)
		return exitStorage
	}
	defer db.Close()

	services := app.NewServices(cfg, db, logger)
	result, err := services.Ingestion.Ingest(ctx)
	if err != nil {
		kind := usecase.ClassifyFailure(err)
		fmt.Fprintf(os.Stderr, "ingestion failed (%s, retryable=%t): %v\n", kind, kind.Retryable(), err)
		return exitCodeFor(kind)
	}

	fmt.Printf("rows_written=%d series=%d fetched_at=%s\n",
		result.RowsWritten,
		result.SeriesCount,
		result.FetchedAt.UTC().Format("2006-01-02T15:04:05Z"),
	)
	return exitOK
}

func exitCodeFor(kind usecase.FailureKind) int {
	switch kind {
	case usecase.FailureNone:
		return exitOK
	case usecase.FailureTransport:
		return exitTransport
	case usecase.FailureConfig:
		return exitConfig
	case usecase.FailureProtocol, usecase.FailureMalformed:
		return exitUpstream
	case usecase.FailureStorage:
		return exitStorage
	default:
		return exitInternal
	}
}
