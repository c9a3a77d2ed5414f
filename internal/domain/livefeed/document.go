package livefeed

// Document is the live-matches feed reduced to what ingestion walks:
// match-type groups, their series, and the raw match objects of each series.
type Document struct {
	TypeMatches []TypeMatch
}

type TypeMatch struct {
	MatchType string
	Series    []SeriesGroup
}

// SeriesGroup carries the enclosing series name for its matches.
type SeriesGroup struct {
	SeriesName string
	Matches    []RawMatch
}

// RawMatch is one undecoded match object as sent by the feed.
type RawMatch map[string]any

// NewDocument walks a decoded payload of the shape
// {typeMatches:[{matchType, seriesMatches:[{seriesAdWrapper:{seriesName, matches:[...]}}]}]}.
// Entries that do not have that shape are skipped; series wrappers are absent
// on advertisement slots.
func NewDocument(root map[string]any) Document {
	var doc Document
	for _, rawType := range getSlice(root, "typeMatches") {
		typeObj, ok := rawType.(map[string]any)
		if !ok {
			continue
		}

		typeMatch := TypeMatch{MatchType: getString(typeObj, "matchType")}
		for _, rawSeries := range getSlice(typeObj, "seriesMatches") {
			wrapper := getMap(asMap(rawSeries), "seriesAdWrapper")
			if wrapper == nil {
				continue
			}

			group := SeriesGroup{SeriesName: getString(wrapper, "seriesName")}
			for _, rawMatch := range getSlice(wrapper, "matches") {
				// non-object entries still count as (empty) records
				obj, _ := rawMatch.(map[string]any)
				group.Matches = append(group.Matches, RawMatch(obj))
			}
			typeMatch.Series = append(typeMatch.Series, group)
		}
		doc.TypeMatches = append(doc.TypeMatches, typeMatch)
	}
	return doc
}

// Walk calls fn for every match in feed order.
func (d Document) Walk(fn func(seriesName string, raw RawMatch)) {
	for _, typeMatch := range d.TypeMatches {
		for _, series := range typeMatch.Series {
			for _, raw := range series.Matches {
				fn(series.SeriesName, raw)
			}
		}
	}
}

func (d Document) MatchCount() int {
	total := 0
	d.Walk(func(string, RawMatch) { total++ })
	return total
}
