package httpapi

import (
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/analytics"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
	"github.com/debashish967/cricbuzz-dashboard/internal/domain/scorecard"
	"github.com/debashish967/cricbuzz-dashboard/internal/usecase"
)

type saveLiveMatchRequest struct {
	MatchID      string `json:"match_id" validate:"required,max=64"`
	SeriesName   string `json:"series_name" validate:"max=256"`
	Team1        string `json:"team1" validate:"max=128"`
	Team2        string `json:"team2" validate:"max=128"`
	Status       string `json:"status" validate:"max=512"`
	Description  string `json:"description" validate:"max=256"`
	Format       string `json:"format" validate:"max=32"`
	StartTS      *int64 `json:"start_ts" validate:"omitempty,gte=0"`
	VenueName    string `json:"venue_name" validate:"max=256"`
	VenueCity    string `json:"venue_city" validate:"max=128"`
	VenueCountry string `json:"venue_country" validate:"max=128"`
}

type updateLiveMatchRequest struct {
	SeriesName string `json:"series_name" validate:"max=256"`
	Team1      string `json:"team1" validate:"max=128"`
	Team2      string `json:"team2" validate:"max=128"`
	Status     string `json:"status" validate:"max=512"`
}

type teamScoreRequest struct {
	TeamName string   `json:"team_name" validate:"required,max=128"`
	Runs     *int     `json:"runs" validate:"omitempty,gte=0"`
	Wickets  *int     `json:"wickets" validate:"omitempty,gte=0,lte=10"`
	Overs    *float64 `json:"overs" validate:"omitempty,gte=0"`
}

type battingLineRequest struct {
	PlayerName string `json:"player_name" validate:"required,max=128"`
	Role       string `json:"role" validate:"max=32"`
	Runs       *int   `json:"runs" validate:"omitempty,gte=0"`
	Balls      *int   `json:"balls" validate:"omitempty,gte=0"`
}

type runQueryRequest struct {
	Params map[string]any `json:"params"`
}

type dashboardDTO struct {
	MatchesStored int        `json:"matches_stored"`
	LastUpdatedAt *time.Time `json:"last_updated_at"`
}

type ingestResultDTO struct {
	RowsWritten int       `json:"rows_written"`
	SeriesCount int       `json:"series_count"`
	FetchedAt   time.Time `json:"fetched_at"`
}

type liveMatchDTO struct {
	MatchID       string    `json:"match_id"`
	SeriesName    string    `json:"series_name"`
	Team1         string    `json:"team1"`
	Team2         string    `json:"team2"`
	Status        string    `json:"status"`
	Description   string    `json:"description"`
	Format        string    `json:"format"`
	StartTS       *int64    `json:"start_ts"`
	StartTime     string    `json:"start_time,omitempty"`
	VenueName     string    `json:"venue_name"`
	VenueCity     string    `json:"venue_city"`
	VenueCountry  string    `json:"venue_country"`
	Winner        string    `json:"winner,omitempty"`
	VictoryType   string    `json:"victory_type,omitempty"`
	VictoryMargin *int      `json:"victory_margin"`
	IsComplete    bool      `json:"is_complete"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type deleteResultDTO struct {
	MatchID string `json:"match_id"`
	Deleted bool   `json:"deleted"`
}

type teamScoreDTO struct {
	TeamName string   `json:"team_name"`
	Runs     *int     `json:"runs"`
	Wickets  *int     `json:"wickets"`
	Overs    *float64 `json:"overs"`
	Text     string   `json:"text"`
}

type battingLineDTO struct {
	PlayerName string `json:"player_name"`
	Role       string `json:"role"`
	Runs       *int   `json:"runs"`
	Balls      *int   `json:"balls"`
}

type scorecardDTO struct {
	Match      liveMatchDTO     `json:"match"`
	Team1Score *teamScoreDTO    `json:"team1_score"`
	Team2Score *teamScoreDTO    `json:"team2_score"`
	Batting    []battingLineDTO `json:"batting"`
}

type queryParamDTO struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Default     any    `json:"default,omitempty"`
	Min         *int64 `json:"min,omitempty"`
	Max         *int64 `json:"max,omitempty"`
	MaxLength   int    `json:"max_length,omitempty"`
}

type queryTemplateDTO struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Cacheable   bool            `json:"cacheable"`
	Params      []queryParamDTO `json:"params"`
}

type queryResultDTO struct {
	TemplateID string         `json:"template_id"`
	Params     map[string]any `json:"params"`
	Columns    []string       `json:"columns"`
	Rows       [][]any        `json:"rows"`
	RowCount   int            `json:"row_count"`
}

func dashboardToDTO(d usecase.Dashboard) dashboardDTO {
	return dashboardDTO{MatchesStored: d.MatchesStored, LastUpdatedAt: d.LastUpdatedAt}
}

func ingestResultToDTO(r usecase.IngestResult) ingestResultDTO {
	return ingestResultDTO{
		RowsWritten: r.RowsWritten,
		SeriesCount: r.SeriesCount,
		FetchedAt:   r.FetchedAt.UTC(),
	}
}

func liveMatchToDTO(m livematch.Match) liveMatchDTO {
	return liveMatchDTO{
		MatchID:       m.ID,
		SeriesName:    m.SeriesName,
		Team1:         m.Team1,
		Team2:         m.Team2,
		Status:        m.Status,
		Description:   m.Description,
		Format:        m.Format,
		StartTS:       m.StartTS,
		StartTime:     livematch.DisplayStartTime(m.StartTS),
		VenueName:     m.VenueName,
		VenueCity:     m.VenueCity,
		VenueCountry:  m.VenueCountry,
		Winner:        m.Outcome.Winner,
		VictoryType:   string(m.Outcome.VictoryType),
		VictoryMargin: m.Outcome.VictoryMargin,
		IsComplete:    m.Outcome.IsComplete,
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func teamScoreToDTO(s scorecard.TeamScore) teamScoreDTO {
	return teamScoreDTO{
		TeamName: s.TeamName,
		Runs:     s.Runs,
		Wickets:  s.Wickets,
		Overs:    s.Overs,
		Text:     s.Text(),
	}
}

func battingLineToDTO(l scorecard.BattingLine) battingLineDTO {
	return battingLineDTO{
		PlayerName: l.PlayerName,
		Role:       l.Role,
		Runs:       l.Runs,
		Balls:      l.Balls,
	}
}

func scorecardToDTO(card scorecard.Scorecard) scorecardDTO {
	out := scorecardDTO{
		Match:   liveMatchToDTO(card.Match),
		Batting: make([]battingLineDTO, 0, len(card.Batting)),
	}
	if card.Team1Score != nil {
		score := teamScoreToDTO(*card.Team1Score)
		out.Team1Score = &score
	}
	if card.Team2Score != nil {
		score := teamScoreToDTO(*card.Team2Score)
		out.Team2Score = &score
	}
	for _, line := range card.Batting {
		out.Batting = append(out.Batting, battingLineToDTO(line))
	}
	return out
}

func queryTemplateToDTO(t analytics.Template) queryTemplateDTO {
	params := make([]queryParamDTO, 0, len(t.Params))
	for _, p := range t.Params {
		params = append(params, queryParamDTO{
			Name:        p.Name,
			Description: p.Description,
			Type:        string(p.Type),
			Default:     p.Default,
			Min:         p.Min,
			Max:         p.Max,
			MaxLength:   p.MaxLength,
		})
	}
	return queryTemplateDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Source:      string(t.Source),
		Cacheable:   t.Cacheable(),
		Params:      params,
	}
}

func queryResultToDTO(r analytics.Result) queryResultDTO {
	rows := r.Rows
	if rows == nil {
		rows = [][]any{}
	}
	columns := r.Columns
	if columns == nil {
		columns = []string{}
	}
	return queryResultDTO{
		TemplateID: r.TemplateID,
		Params:     r.Params,
		Columns:    columns,
		Rows:       rows,
		RowCount:   r.RowCount(),
	}
}
