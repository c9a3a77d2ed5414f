package sqlite

import (
	"context"
	"fmt"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/analytics"
	"github.com/jmoiron/sqlx"
)

// AnalyticsRepository runs read-only catalog queries and returns rows as
// generic cells.
type AnalyticsRepository struct {
	db *sqlx.DB
}

func NewAnalyticsRepository(db *sqlx.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func (r *AnalyticsRepository) Query(ctx context.Context, query string, args ...any) (analytics.Table, error) {
	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return analytics.Table{}, fmt.Errorf("run analytics query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return analytics.Table{}, fmt.Errorf("read analytics columns: %w", err)
	}

	table := analytics.Table{Columns: columns, Rows: make([][]any, 0)}
	for rows.Next() {
		cells, err := rows.SliceScan()
		if err != nil {
			return analytics.Table{}, fmt.Errorf("scan analytics row: %w", err)
		}
		for i, cell := range cells {
			if raw, ok := cell.([]byte); ok {
				cells[i] = string(raw)
			}
		}
		table.Rows = append(table.Rows, cells)
	}
	if err := rows.Err(); err != nil {
		return analytics.Table{}, fmt.Errorf("iterate analytics rows: %w", err)
	}

	return table, nil
}
