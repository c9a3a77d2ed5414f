package scorecard

import (
	"fmt"
	"strconv"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
)

const (
	RoleBatsman      = "Batsman"
	MaxBattingLines  = 10
	scoreMissingPart = "0"
)

// TeamScore is one innings total row from match_score.
type TeamScore struct {
	MatchID  string
	TeamName string
	Runs     *int
	Wickets  *int
	Overs    *float64
}

// Text renders the total as "runs/wickets in overs".
func (s TeamScore) Text() string {
	return fmt.Sprintf("%s/%s in %s", intPart(s.Runs), intPart(s.Wickets), oversPart(s.Overs))
}

// BattingLine is one batting row from player_stats.
type BattingLine struct {
	MatchID    string
	PlayerName string
	Role       string
	Runs       *int
	Balls      *int
}

type Scorecard struct {
	Match      livematch.Match
	Team1Score *TeamScore
	Team2Score *TeamScore
	Batting    []BattingLine
}

// Assemble picks the totals of the two listed teams by team name.
func Assemble(match livematch.Match, scores []TeamScore, batting []BattingLine) Scorecard {
	card := Scorecard{Match: match, Batting: batting}
	for i := range scores {
		score := scores[i]
		switch score.TeamName {
		case match.Team1:
			if card.Team1Score == nil {
				card.Team1Score = &score
			}
		case match.Team2:
			if card.Team2Score == nil {
				card.Team2Score = &score
			}
		}
	}
	return card
}

func intPart(v *int) string {
	if v == nil {
		return scoreMissingPart
	}
	return strconv.Itoa(*v)
}

func oversPart(v *float64) string {
	if v == nil {
		return scoreMissingPart
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
