package livematch

import (
	"strings"
	"time"
)

// millisecondThreshold separates epoch milliseconds from epoch seconds.
// Any second-based value above it lies tens of thousands of years ahead.
const millisecondThreshold int64 = 1_000_000_000_000

const (
	TimestampLayout = "2006-01-02T15:04:05Z"
	DisplayLayout   = "02 Jan 2006, 15:04 UTC"
)

// StartTime interprets a stored start_ts for display. The stored value keeps
// whatever unit the feed sent; values above the threshold are read as
// milliseconds, everything else as seconds. Zero reads as unknown.
func StartTime(raw *int64) (time.Time, bool) {
	if raw == nil || *raw == 0 {
		return time.Time{}, false
	}
	value := *raw
	if value > millisecondThreshold {
		return time.UnixMilli(value).UTC(), true
	}
	return time.Unix(value, 0).UTC(), true
}

// DisplayStartTime renders the start time for people, or "" when unknown.
func DisplayStartTime(raw *int64) string {
	t, ok := StartTime(raw)
	if !ok {
		return ""
	}
	return t.Format(DisplayLayout)
}

// FormatTimestamp renders t in UTC with second precision and a Z suffix.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(TimestampLayout)
}

func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(TimestampLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
