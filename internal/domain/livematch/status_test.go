package livematch

import "testing"

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      string
		winner      string
		victoryType VictoryType
		margin      int
		complete    bool
	}{
		{name: "won by wickets", status: "India won by 6 wickets", winner: "India", victoryType: VictoryByWickets, margin: 6, complete: true},
		{name: "won by single wicket", status: "New Zealand won by 1 wicket", winner: "New Zealand", victoryType: VictoryByWickets, margin: 1, complete: true},
		{name: "won by runs mixed case and padding", status: "  Australia  WON BY 34 Runs (DLS method) ", winner: "Australia", victoryType: VictoryByRuns, margin: 34, complete: true},
		{name: "won by single run", status: "Pakistan won by 1 run", winner: "Pakistan", victoryType: VictoryByRuns, margin: 1, complete: true},
		{name: "pattern wins over keyword", status: "Sri Lanka won by 2 runs after a tied first innings", winner: "Sri Lanka", victoryType: VictoryByRuns, margin: 2, complete: true},
		{name: "tied", status: "Match tied (India won the Super Over)", complete: true},
		{name: "drawn", status: "Match drawn", complete: true},
		{name: "no result", status: "No Result - due to rain", complete: true},
		{name: "abandoned", status: "Match abandoned without a ball bowled", complete: true},
		{name: "stumps", status: "Stumps - Day 2: England lead by 120 runs", complete: true},
		{name: "in progress", status: "England opt to bowl"},
		{name: "margin in unknown unit", status: "India won by 6 wickets"},
		{name: "margin overflow", status: "India won by 99999999999999999999999 runs"},
		{name: "empty", status: ""},
		{name: "whitespace only", status: "   \t "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := ParseStatus(tc.status)
			if got.IsComplete != tc.complete {
				t.Fatalf("expected complete=%v, got=%v", tc.complete, got.IsComplete)
			}
			if got.Winner != tc.winner {
				t.Fatalf("expected winner=%q, got=%q", tc.winner, got.Winner)
			}
			if got.VictoryType != tc.victoryType {
				t.Fatalf("expected victory_type=%q, got=%q", tc.victoryType, got.VictoryType)
			}
			if tc.victoryType == "" {
				if got.VictoryMargin != nil {
					t.Fatalf("expected no margin, got=%d", *got.VictoryMargin)
				}
				return
			}
			if got.VictoryMargin == nil || *got.VictoryMargin != tc.margin {
				t.Fatalf("expected margin=%d, got=%v", tc.margin, got.VictoryMargin)
			}
		})
	}
}

func TestMatchRederive(t *testing.T) {
	t.Parallel()

	m := Match{ID: "1", Status: "India won by 6 wickets"}
	m.Rederive()
	if m.Outcome.VictoryMargin == nil || m.Outcome.Winner != "India" {
		t.Fatalf("expected derived result for India, got=%+v", m.Outcome)
	}

	m.Status = "Innings break"
	m.Rederive()
	if m.Outcome.VictoryType != "" || m.Outcome.VictoryMargin != nil || m.Outcome.IsComplete {
		t.Fatalf("expected outcome cleared, got=%+v", m.Outcome)
	}
}
