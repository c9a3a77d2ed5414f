package livematch

import (
	"regexp"
	"strconv"
	"strings"
)

var wonByPattern = regexp.MustCompile(`(?i)^(.*?)\s+won\s+by\s+(\d+)\s+(wickets?|runs?)`)

// completionKeywords mark a finished or paused match without a decided margin.
var completionKeywords = []string{
	"tied",
	"tie",
	"draw",
	"drawn",
	"no result",
	"abandoned",
	"match over",
	"stumps",
}

// ParseStatus classifies a free-text status line. It never fails: text that
// matches nothing yields an incomplete outcome with no result fields.
func ParseStatus(status string) Outcome {
	text := strings.TrimSpace(status)
	if text == "" {
		return Outcome{}
	}

	if outcome, ok := parseWonBy(text); ok {
		return outcome
	}

	lower := strings.ToLower(text)
	for _, keyword := range completionKeywords {
		if strings.Contains(lower, keyword) {
			return Outcome{IsComplete: true}
		}
	}

	return Outcome{}
}

func parseWonBy(text string) (Outcome, bool) {
	groups := wonByPattern.FindStringSubmatch(text)
	if len(groups) != 4 {
		return Outcome{}, false
	}

	margin, err := strconv.Atoi(groups[2])
	if err != nil {
		// digits too large for int; treat the line as unrecognised
		return Outcome{}, false
	}

	victoryType := VictoryByRuns
	if strings.Contains(strings.ToLower(groups[3]), "wicket") {
		victoryType = VictoryByWickets
	}

	return Outcome{
		Winner:        strings.TrimSpace(groups[1]),
		VictoryType:   victoryType,
		VictoryMargin: &margin,
		IsComplete:    true,
	}, true
}
