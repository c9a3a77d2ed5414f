package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
)

const liveMatchesTable = "live_matches"

type liveMatchTableModel struct {
	MatchID       string        `db:"match_id"`
	SeriesName    string        `db:"series_name"`
	Team1         string        `db:"team1"`
	Team2         string        `db:"team2"`
	Status        string        `db:"status"`
	Description   string        `db:"match_desc"`
	Format        string        `db:"match_format"`
	StartTS       sql.NullInt64 `db:"start_ts"`
	VenueName     string        `db:"venue_name"`
	VenueCity     string        `db:"venue_city"`
	VenueCountry  string        `db:"venue_country"`
	Winner        string        `db:"winner"`
	VictoryType   string        `db:"victory_type"`
	VictoryMargin sql.NullInt64 `db:"victory_margin"`
	IsComplete    int64         `db:"is_complete"`
	UpdatedAt     string        `db:"updated_at"`
}

type liveMatchSummaryRow struct {
	MatchesStored int            `db:"matches_stored"`
	LastUpdatedAt sql.NullString `db:"last_updated_at"`
}

func liveMatchModelFromDomain(m livematch.Match) liveMatchTableModel {
	return liveMatchTableModel{
		MatchID:       m.ID,
		SeriesName:    m.SeriesName,
		Team1:         m.Team1,
		Team2:         m.Team2,
		Status:        m.Status,
		Description:   m.Description,
		Format:        m.Format,
		StartTS:       nullableInt64Ptr(m.StartTS),
		VenueName:     m.VenueName,
		VenueCity:     m.VenueCity,
		VenueCountry:  m.VenueCountry,
		Winner:        m.Outcome.Winner,
		VictoryType:   string(m.Outcome.VictoryType),
		VictoryMargin: nullableIntPtr(m.Outcome.VictoryMargin),
		IsComplete:    boolToInt(m.Outcome.IsComplete),
		UpdatedAt:     livematch.FormatTimestamp(m.UpdatedAt),
	}
}

func (row liveMatchTableModel) toDomain() (livematch.Match, error) {
	updatedAt, err := livematch.ParseTimestamp(row.UpdatedAt)
	if err != nil {
		return livematch.Match{}, fmt.Errorf("parse updated_at for match %s: %w", row.MatchID, err)
	}

	return livematch.Match{
		ID:           row.MatchID,
		SeriesName:   row.SeriesName,
		Team1:        row.Team1,
		Team2:        row.Team2,
		Status:       row.Status,
		Description:  row.Description,
		Format:       row.Format,
		StartTS:      nullInt64ToPtr(row.StartTS),
		VenueName:    row.VenueName,
		VenueCity:    row.VenueCity,
		VenueCountry: row.VenueCountry,
		Outcome: livematch.Outcome{
			Winner:        row.Winner,
			VictoryType:   livematch.VictoryType(row.VictoryType),
			VictoryMargin: nullInt64ToIntPtr(row.VictoryMargin),
			IsComplete:    row.IsComplete != 0,
		},
		UpdatedAt: updatedAt,
	}, nil
}
