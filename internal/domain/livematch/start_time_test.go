package livematch

import (
	"testing"
	"time"
)

func TestStartTime(t *testing.T) {
	t.Parallel()

	want := time.Date(2023, time.November, 14, 22, 13, 20, 0, time.UTC)

	seconds := int64(1_700_000_000)
	got, ok := StartTime(&seconds)
	if !ok || !got.Equal(want) {
		t.Fatalf("expected seconds value to render %s, got=%s ok=%v", want, got, ok)
	}

	millis := int64(1_700_000_000_000)
	got, ok = StartTime(&millis)
	if !ok || !got.Equal(want) {
		t.Fatalf("expected milliseconds value to render %s, got=%s ok=%v", want, got, ok)
	}

	if _, ok := StartTime(nil); ok {
		t.Fatalf("expected missing start time to be absent")
	}
	zero := int64(0)
	if _, ok := StartTime(&zero); ok {
		t.Fatalf("expected zero start time to be absent")
	}
}

func TestDisplayStartTime(t *testing.T) {
	t.Parallel()

	millis := int64(1_761_366_600_000)
	if got := DisplayStartTime(&millis); got != "25 Oct 2025, 04:30 UTC" {
		t.Fatalf("unexpected display value: %q", got)
	}
	if got := DisplayStartTime(nil); got != "" {
		t.Fatalf("expected empty display value, got=%q", got)
	}
}

func TestFormatAndParseTimestamp(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, time.March, 2, 9, 30, 15, 987654321, time.FixedZone("IST", 5*3600+1800))
	formatted := FormatTimestamp(ts)
	if formatted != "2025-03-02T04:00:15Z" {
		t.Fatalf("unexpected formatted timestamp: %s", formatted)
	}

	parsed, err := ParseTimestamp(formatted)
	if err != nil {
		t.Fatalf("parse timestamp: %v", err)
	}
	if !parsed.Equal(ts.Truncate(time.Second)) {
		t.Fatalf("expected %s, got=%s", ts.Truncate(time.Second).UTC(), parsed)
	}

	if _, err := ParseTimestamp("2025-03-02T04:00:15.123+05:30"); err != nil {
		t.Fatalf("expected RFC3339 fallback to parse, got=%v", err)
	}
}
