package scorecard

import (
	"testing"

	"github.com/debashish967/cricbuzz-dashboard/internal/domain/livematch"
)

func TestTeamScoreText(t *testing.T) {
	t.Parallel()

	runs, wickets, overs := 250, 8, 50.0
	full := TeamScore{Runs: &runs, Wickets: &wickets, Overs: &overs}
	if got := full.Text(); got != "250/8 in 50" {
		t.Fatalf("unexpected score text: %q", got)
	}

	partialOvers := 23.1
	partial := TeamScore{Runs: &runs, Overs: &partialOvers}
	if got := partial.Text(); got != "250/0 in 23.1" {
		t.Fatalf("unexpected partial score text: %q", got)
	}
}

func TestAssemble(t *testing.T) {
	t.Parallel()

	match := livematch.Match{ID: "m1", Team1: "India", Team2: "Australia"}
	runs := 180
	scores := []TeamScore{
		{MatchID: "m1", TeamName: "Australia", Runs: &runs},
		{MatchID: "m1", TeamName: "Nepal"},
	}

	card := Assemble(match, scores, nil)
	if card.Team1Score != nil {
		t.Fatalf("expected no team1 total, got=%+v", card.Team1Score)
	}
	if card.Team2Score == nil || card.Team2Score.TeamName != "Australia" {
		t.Fatalf("expected team2 total for Australia, got=%+v", card.Team2Score)
	}
}
