package analytics

import (
	"context"
	"errors"
)

var (
	ErrUnknownTemplate = errors.New("unknown query template")
	ErrInvalidParam    = errors.New("invalid query parameter")
)

type ParamType string

const (
	ParamInt    ParamType = "int"
	ParamString ParamType = "string"
)

type Source string

const (
	// SourceLiveMatches templates read the ingested live_matches table.
	SourceLiveMatches Source = "live_matches"
	// SourceAnalytical templates read the static analytical schema.
	SourceAnalytical Source = "analytical"
)

type Param struct {
	Name        string
	Description string
	Type        ParamType
	Default     any
	Min         *int64
	Max         *int64
	MaxLength   int
}

// Template is one enumerated, parameterized query. Placeholders in SQL are
// bound in the order of Params.
type Template struct {
	ID          string
	Title       string
	Description string
	Source      Source
	Params      []Param
	SQL         string
}

// Cacheable reports whether results only depend on tables ingestion never writes.
func (t Template) Cacheable() bool {
	return t.Source == SourceAnalytical
}

type Table struct {
	Columns []string
	Rows    [][]any
}

type Result struct {
	TemplateID string
	Params     map[string]any
	Table
}

func (r Result) RowCount() int {
	return len(r.Rows)
}

// Repository executes catalog SQL with bound arguments.
type Repository interface {
	Query(ctx context.Context, query string, args ...any) (Table, error)
}
