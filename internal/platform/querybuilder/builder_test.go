package querybuilder

import "testing"

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("match_id", "series_name").
		From("live_matches").
		Where(Eq("match_id", "m1"), Eq("is_complete", true)).
		OrderBy("COALESCE(start_ts, 0) DESC", "series_name").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	wantQuery := "SELECT match_id, series_name FROM live_matches WHERE match_id = ? AND is_complete = ? ORDER BY COALESCE(start_ts, 0) DESC, series_name LIMIT 50"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 2 || args[0] != "m1" || args[1] != true {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestInsertBuilder(t *testing.T) {
	query, args, err := InsertInto("match_score").
		Columns("match_id", "team_name").
		Values("m1", "India").
		Values("m1", "Australia").
		Suffix("ON CONFLICT (match_id, team_name) DO NOTHING").
		ToSQL()
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}

	wantQuery := "INSERT INTO match_score (match_id, team_name) VALUES (?, ?), (?, ?) ON CONFLICT (match_id, team_name) DO NOTHING"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 4 || args[0] != "m1" || args[3] != "Australia" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("live_matches").
		Set("status", "India won by 6 wickets").
		Set("updated_at", "2025-10-25T04:30:00Z").
		Where(Eq("match_id", "m1")).
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	wantQuery := "UPDATE live_matches SET status = ?, updated_at = ? WHERE match_id = ?"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[0] != "India won by 6 wickets" || args[2] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestDeleteBuilder(t *testing.T) {
	query, args, err := DeleteFrom("live_matches").Where(Eq("match_id", "m1")).ToSQL()
	if err != nil {
		t.Fatalf("build delete query: %v", err)
	}
	if query != "DELETE FROM live_matches WHERE match_id = ?" {
		t.Fatalf("unexpected query: %s", query)
	}
	if len(args) != 1 || args[0] != "m1" {
		t.Fatalf("unexpected args: %+v", args)
	}

	if _, _, err := DeleteFrom("live_matches").ToSQL(); err == nil {
		t.Fatalf("expected delete without where to be rejected")
	}
}

type scoreRow struct {
	MatchID  string `db:"match_id"`
	TeamName string `db:"team_name"`
	Runs     int    `db:"runs"`
	ignored  string
	Note     string `db:"-"`
}

func TestUpsertModel(t *testing.T) {
	query, args, err := UpsertModel("match_score", scoreRow{MatchID: "m1", TeamName: "India", Runs: 250}, "match_id", "team_name")
	if err != nil {
		t.Fatalf("build upsert query: %v", err)
	}

	wantQuery := "INSERT INTO match_score (match_id, team_name, runs) VALUES (?, ?, ?) ON CONFLICT (match_id, team_name) DO UPDATE SET runs = excluded.runs"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
	if len(args) != 3 || args[2] != 250 {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestReplaceModel(t *testing.T) {
	query, _, err := ReplaceModel("match_score", &scoreRow{MatchID: "m1"})
	if err != nil {
		t.Fatalf("build replace query: %v", err)
	}

	wantQuery := "INSERT OR REPLACE INTO match_score (match_id, team_name, runs) VALUES (?, ?, ?)"
	if query != wantQuery {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", wantQuery, query)
	}
}

func TestOnConflictUpdateAll_RequiresTarget(t *testing.T) {
	if _, err := OnConflictUpdateAll([]string{"a"}); err == nil {
		t.Fatalf("expected error without conflict columns")
	}

	got, err := OnConflictUpdateAll([]string{"match_id"}, "match_id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ON CONFLICT (match_id) DO NOTHING" {
		t.Fatalf("unexpected clause: %s", got)
	}
}
