package analytics

import "sort"

func bound(v int64) *int64 {
	return &v
}

var catalog = []Template{
	{
		ID:          "recent-decided",
		Title:       "Decided or underway live matches",
		Description: "Live matches whose status mentions a result or a toss decision.",
		Source:      SourceLiveMatches,
		SQL: `SELECT match_id, series_name, team1, team2, status
FROM live_matches
WHERE status LIKE '%won%' OR status LIKE '%opt%'
ORDER BY match_id DESC`,
	},
	{
		ID:          "wins-per-team",
		Title:       "Wins per team",
		Description: "Winners parsed from live match status lines.",
		Source:      SourceLiveMatches,
		SQL: `SELECT winner AS team, COUNT(*) AS wins
FROM live_matches
WHERE winner <> ''
GROUP BY winner
ORDER BY wins DESC, team`,
	},
	{
		ID:          "last-completed",
		Title:       "Last completed live matches",
		Description: "Completed matches, most recent start first.",
		Source:      SourceLiveMatches,
		Params: []Param{
			{Name: "limit", Description: "rows to return", Type: ParamInt, Default: int64(20), Min: bound(1), Max: bound(200)},
		},
		SQL: `SELECT match_id, series_name, team1, team2, status, winner, victory_type, victory_margin
FROM live_matches
WHERE is_complete = 1
ORDER BY COALESCE(start_ts, 0) DESC, match_id DESC
LIMIT ?`,
	},
	{
		ID:          "head-to-head",
		Title:       "Head-to-head",
		Description: "Matches played and wins for every pair of teams in the live table.",
		Source:      SourceLiveMatches,
		SQL: `SELECT
  team_a || ' vs ' || team_b AS pair,
  COUNT(*) AS matches_played,
  SUM(CASE WHEN winner = team_a THEN 1 ELSE 0 END) AS wins_team_a,
  SUM(CASE WHEN winner = team_b THEN 1 ELSE 0 END) AS wins_team_b
FROM (
  SELECT
    CASE WHEN team1 < team2 THEN team1 ELSE team2 END AS team_a,
    CASE WHEN team1 < team2 THEN team2 ELSE team1 END AS team_b,
    winner
  FROM live_matches
  WHERE team1 <> '' AND team2 <> ''
)
GROUP BY team_a, team_b
ORDER BY matches_played DESC, pair`,
	},
	{
		ID:          "latest-rows",
		Title:       "Latest rows",
		Description: "Most recent live matches with the start time rendered in UTC.",
		Source:      SourceLiveMatches,
		Params: []Param{
			{Name: "limit", Description: "rows to return", Type: ParamInt, Default: int64(200), Min: bound(1), Max: bound(500)},
		},
		SQL: `SELECT match_id, series_name, team1, team2, status, winner, victory_type, victory_margin,
  CASE
    WHEN start_ts > 1000000000000 THEN datetime(start_ts / 1000, 'unixepoch')
    WHEN start_ts > 0 THEN datetime(start_ts, 'unixepoch')
  END AS start_utc,
  venue_city
FROM live_matches
ORDER BY COALESCE(start_ts, 0) DESC
LIMIT ?`,
	},
	{
		ID:          "players-by-country",
		Title:       "Players who represent a country",
		Source:      SourceAnalytical,
		Description: "Roster details for one country.",
		Params: []Param{
			{Name: "country", Description: "country name", Type: ParamString, Default: "India", MaxLength: 64},
		},
		SQL: `SELECT full_name, playing_role, batting_style, bowling_style
FROM players
WHERE country = ?
ORDER BY full_name`,
	},
	{
		ID:          "top-run-scorers",
		Title:       "Top run scorers by format",
		Source:      SourceAnalytical,
		Description: "Career run leaders for one format.",
		Params: []Param{
			{Name: "format", Description: "TEST, ODI or T20", Type: ParamString, Default: "ODI", MaxLength: 16},
			{Name: "limit", Description: "rows to return", Type: ParamInt, Default: int64(10), Min: bound(1), Max: bound(100)},
		},
		SQL: `SELECT p.full_name, pcs.total_runs, pcs.batting_average, pcs.centuries
FROM player_career_stats pcs
JOIN players p ON pcs.player_id = p.player_id
WHERE pcs.format = ?
ORDER BY pcs.total_runs DESC
LIMIT ?`,
	},
	{
		ID:          "venues-by-capacity",
		Title:       "Large venues",
		Source:      SourceAnalytical,
		Description: "Venues above a seating capacity.",
		Params: []Param{
			{Name: "min_capacity", Description: "exclusive lower bound", Type: ParamInt, Default: int64(50000), Min: bound(0)},
		},
		SQL: `SELECT name, city, country, capacity
FROM venues
WHERE capacity > ?
ORDER BY capacity DESC`,
	},
	{
		ID:          "team-wins",
		Title:       "Matches won per team",
		Source:      SourceAnalytical,
		Description: "Win counts from the matches table.",
		SQL: `SELECT t.team_name, COUNT(*) AS wins
FROM matches m
JOIN teams t ON m.winner_team_id = t.team_id
GROUP BY t.team_name
ORDER BY wins DESC, t.team_name`,
	},
	{
		ID:          "players-by-role",
		Title:       "Players by role",
		Source:      SourceAnalytical,
		Description: "Player counts per playing role.",
		SQL: `SELECT playing_role, COUNT(*) AS player_count
FROM players
GROUP BY playing_role
ORDER BY player_count DESC, playing_role`,
	},
	{
		ID:          "series-by-year",
		Title:       "Series started in a year",
		Source:      SourceAnalytical,
		Description: "Series whose start date falls in the given year.",
		Params: []Param{
			{Name: "year", Description: "calendar year", Type: ParamInt, Default: int64(2024), Min: bound(1877), Max: bound(2100)},
		},
		SQL: `SELECT series_name, host_country, match_type, start_date, planned_matches
FROM series
WHERE CAST(strftime('%Y', start_date) AS INTEGER) = ?
ORDER BY start_date`,
	},
	{
		ID:          "all-rounders",
		Title:       "All-rounders",
		Source:      SourceAnalytical,
		Description: "Players above both a run and a wicket threshold.",
		Params: []Param{
			{Name: "min_runs", Description: "exclusive run threshold", Type: ParamInt, Default: int64(1000), Min: bound(0)},
			{Name: "min_wickets", Description: "exclusive wicket threshold", Type: ParamInt, Default: int64(50), Min: bound(0)},
		},
		SQL: `SELECT p.full_name, pcs.total_runs, pcs.total_wickets, pcs.format
FROM player_career_stats pcs
JOIN players p ON p.player_id = pcs.player_id
WHERE pcs.total_runs > ? AND pcs.total_wickets > ?
ORDER BY pcs.total_runs DESC`,
	},
	{
		ID:          "recent-completed-matches",
		Title:       "Last completed matches",
		Source:      SourceAnalytical,
		Description: "Completed matches with teams, winner and venue.",
		Params: []Param{
			{Name: "limit", Description: "rows to return", Type: ParamInt, Default: int64(20), Min: bound(1), Max: bound(200)},
		},
		SQL: `SELECT m.match_id, s.series_name, t1.team_name AS team1, t2.team_name AS team2,
  tw.team_name AS winner, m.result_margin, m.result_type, v.name AS venue, m.match_date
FROM matches m
LEFT JOIN teams t1 ON m.team1_id = t1.team_id
LEFT JOIN teams t2 ON m.team2_id = t2.team_id
LEFT JOIN teams tw ON m.winner_team_id = tw.team_id
LEFT JOIN venues v ON m.venue_id = v.venue_id
LEFT JOIN series s ON m.series_id = s.series_id
WHERE m.match_status = 'Complete'
ORDER BY m.match_date DESC
LIMIT ?`,
	},
}

var catalogByID = func() map[string]Template {
	out := make(map[string]Template, len(catalog))
	for _, tmpl := range catalog {
		out[tmpl.ID] = tmpl
	}
	return out
}()

// Catalog lists every template, live-table templates first.
func Catalog() []Template {
	out := append([]Template(nil), catalog...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Source == SourceLiveMatches && out[j].Source != SourceLiveMatches
	})
	return out
}

func Lookup(id string) (Template, bool) {
	tmpl, ok := catalogByID[id]
	return tmpl, ok
}
