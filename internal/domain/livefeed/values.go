package livefeed

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

func asMap(raw any) map[string]any {
	obj, _ := raw.(map[string]any)
	return obj
}

func getMap(src map[string]any, key string) map[string]any {
	if src == nil {
		return nil
	}
	return asMap(src[key])
}

func getSlice(src map[string]any, key string) []any {
	if src == nil {
		return nil
	}
	items, _ := src[key].([]any)
	return items
}

// getString renders scalar values as text; objects and arrays read as empty.
func getString(src map[string]any, key string) string {
	if src == nil {
		return ""
	}
	switch typed := src[key].(type) {
	case string:
		return strings.TrimSpace(typed)
	case json.Number:
		return typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case int:
		return strconv.Itoa(typed)
	case int64:
		return strconv.FormatInt(typed, 10)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}

func firstString(src map[string]any, keys ...string) string {
	for _, key := range keys {
		if value := getString(src, key); value != "" {
			return value
		}
	}
	return ""
}

// firstRawString is firstString without trimming. A whitespace-only string
// still counts as present.
func firstRawString(src map[string]any, keys ...string) string {
	for _, key := range keys {
		if text, ok := src[key].(string); ok {
			if text != "" {
				return text
			}
			continue
		}
		if value := getString(src, key); value != "" {
			return value
		}
	}
	return ""
}

// firstValue returns the first candidate that is neither missing, null nor blank text.
func firstValue(src map[string]any, keys ...string) any {
	if src == nil {
		return nil
	}
	for _, key := range keys {
		switch typed := src[key].(type) {
		case nil:
			continue
		case string:
			if strings.TrimSpace(typed) == "" {
				continue
			}
			return typed
		default:
			return typed
		}
	}
	return nil
}

// toInt64 coerces integer text and JSON numbers. Anything else is absent.
func toInt64(raw any) *int64 {
	switch typed := raw.(type) {
	case json.Number:
		if v, err := typed.Int64(); err == nil {
			return &v
		}
		f, err := typed.Float64()
		if err != nil {
			return nil
		}
		return floatToInt64(f)
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return nil
		}
		return &v
	case float64:
		return floatToInt64(typed)
	case int:
		v := int64(typed)
		return &v
	case int64:
		return &typed
	default:
		return nil
	}
}

func floatToInt64(f float64) *int64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f <= math.MinInt64 {
		return nil
	}
	v := int64(f)
	return &v
}
