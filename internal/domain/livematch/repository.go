package livematch

import (
	"context"
	"time"
)

type ListOrder string

const (
	// ListOrderRecent sorts by start time descending, unknown start times last.
	ListOrderRecent ListOrder = "recent"
	// ListOrderSeries sorts by series name then first team.
	ListOrderSeries ListOrder = "series"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type ListQuery struct {
	Limit int
	Order ListOrder
}

type Summary struct {
	MatchesStored int
	LastUpdatedAt *time.Time
}

// Repository persists live matches keyed by match id.
type Repository interface {
	// UpsertMany writes every match in one transaction. A failure leaves the
	// store unchanged.
	UpsertMany(ctx context.Context, matches []Match) error
	List(ctx context.Context, query ListQuery) ([]Match, error)
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// Replace inserts the match or overwrites the whole row.
	Replace(ctx context.Context, match Match) error
	// UpdateDetails rewrites the editable columns of an existing row.
	UpdateDetails(ctx context.Context, match Match) (bool, error)
	Delete(ctx context.Context, matchID string) (bool, error)
	Summary(ctx context.Context) (Summary, error)
}
