package livematch

import (
	"strings"
	"time"
)

type VictoryType string

const (
	VictoryByWickets VictoryType = "wickets"
	VictoryByRuns    VictoryType = "runs"
)

// Outcome is the result information derived from a status line.
type Outcome struct {
	Winner        string
	VictoryType   VictoryType
	VictoryMargin *int
	IsComplete    bool
}

// Match is one row of the live match store, keyed by ID.
type Match struct {
	ID           string
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
	Outcome      Outcome
	UpdatedAt    time.Time
}

// Rederive recomputes the outcome fields from the current status.
func (m *Match) Rederive() {
	m.Outcome = ParseStatus(m.Status)
}

func NormalizeID(value string) string {
	return strings.TrimSpace(value)
}
