package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livefeed"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
	"github.com/debashish967/cricbuzz-dashboard/internal/platform/logging"
)

// LiveFeedProvider fetches the external live-matches document.
type LiveFeedProvider interface {
	FetchLiveMatches(ctx context.Context) (livefeed.Document, error)
}

type liveMatchBatchWriter interface {
	UpsertMany(ctx context.Context, matches []livematch.Match) error
}

type IngestResult struct {
	RowsWritten int
	SeriesCount int
	FetchedAt   time.Time
}

// LiveMatchIngestionService runs one fetch, flatten and upsert pass per call.
// Runs are not serialized against each other; the last batch to commit wins.
type LiveMatchIngestionService struct {
	feed   LiveFeedProvider
	writer liveMatchBatchWriter
	logger *logging.Logger
	now    func() time.Time
}

func NewLiveMatchIngestionService(feed LiveFeedProvider, writer liveMatchBatchWriter, logger *logging.Logger) *LiveMatchIngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &LiveMatchIngestionService{
		feed:   feed,
		writer: writer,
		logger: logger,
		now:    time.Now,
	}
}

func (s *LiveMatchIngestionService) Ingest(ctx context.Context) (IngestResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LiveMatchIngestionService.Ingest")
	defer span.End()

	started := s.now()
	doc, err := s.feed.FetchLiveMatches(ctx)
	if err != nil {
		err = fmt.Errorf("fetch live matches: %w", err)
		recordSpanFailure(span, err)
		s.logger.WarnContext(ctx, "live match ingestion aborted before write",
			"failure_kind", string(ClassifyFailure(err)),
			"error", err,
		)
		return IngestResult{}, err
	}

	fetchedAt := s.now().UTC()
	matches := livefeed.FlattenDocument(doc, fetchedAt)
	result := IngestResult{
		RowsWritten: len(matches),
		SeriesCount: countSeries(doc),
		FetchedAt:   fetchedAt.Truncate(time.Second),
	}
	if len(matches) == 0 {
		s.logger.InfoContext(ctx, "live match feed returned no matches")
		return result, nil
	}

	if err := s.writer.UpsertMany(ctx, matches); err != nil {
		err = fmt.Errorf("%w: upsert live matches: %w", ErrStorage, err)
		recordSpanFailure(span, err)
		s.logger.ErrorContext(ctx, "live match ingestion write failed",
			"rows", len(matches),
			"error", err,
		)
		return IngestResult{}, err
	}

	s.logger.InfoContext(ctx, "live match ingestion finished",
		"rows_written", result.RowsWritten,
		"series", result.SeriesCount,
		"duration_ms", s.now().Sub(started).Milliseconds(),
	)
	return result, nil
}

func countSeries(doc livefeed.Document) int {
	total := 0
	for _, typeMatch := range doc.TypeMatches {
		total += len(typeMatch.Series)
	}
	return total
}
