package livefeed

import (
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
)

// Flatten turns one raw feed match into a store row. Missing nesting and
// unexpected value types degrade to empty fields; it never fails.
func Flatten(seriesName string, raw RawMatch, now time.Time) livematch.Match {
	info := getMap(raw, "matchInfo")
	team1 := getMap(info, "team1")
	team2 := getMap(info, "team2")
	venue := getMap(info, "venueInfo")

	match := livematch.Match{
		ID:           getString(info, "matchId"),
		SeriesName:   seriesName,
		Team1:        firstString(team1, "teamName", "teamSName"),
		Team2:        firstString(team2, "teamName", "teamSName"),
		Status:       firstRawString(info, "status", "stateTitle", "statusText"),
		Description:  getString(info, "matchDesc"),
		Format:       firstString(info, "matchFormat", "matchType"),
		StartTS:      toInt64(firstValue(info, "startDate", "startTime", "matchStartTimestamp")),
		VenueName:    firstString(venue, "ground", "name"),
		VenueCity:    getString(venue, "city"),
		VenueCountry: getString(venue, "country"),
		UpdatedAt:    now.UTC().Truncate(time.Second),
	}
	match.Rederive()

	return match
}

// FlattenDocument flattens every match of the document in feed order.
func FlattenDocument(doc Document, now time.Time) []livematch.Match {
	out := make([]livematch.Match, 0, doc.MatchCount())
	doc.Walk(func(seriesName string, raw RawMatch) {
		out = append(out, Flatten(seriesName, raw, now))
	})
	return out
}
