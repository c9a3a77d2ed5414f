package main

import (
	"strings"
	"testing"
)

func TestParseSteps(t *testing.T) {
	if steps, err := parseSteps(nil); err != nil || steps != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", steps, err)
	}
	if steps, err := parseSteps([]string{" 3 "}); err != nil || steps != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", steps, err)
	}
	for _, raw := range []string{"0", "-2", "x"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1771800200"); err != nil || v != 1771800200 {
		t.Fatalf("unexpected version: %d err=%v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if _, err := parseTarget("abc"); err == nil {
		t.Fatalf("expected error for non-numeric target")
	}
}

func TestSQLiteURL(t *testing.T) {
	got := sqliteURL("data/cricbuzz.db")
	if !strings.HasPrefix(got, "sqlite://data/cricbuzz.db?") {
		t.Fatalf("unexpected url: %q", got)
	}
	if !strings.Contains(got, "x-migrations-table=schema_migrations") {
		t.Fatalf("expected migrations table param, got %q", got)
	}
}
