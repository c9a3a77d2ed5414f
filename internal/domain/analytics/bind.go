package analytics

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Bind validates input against the template parameters, fills defaults and
// returns the resolved values plus the positional arguments.
func (t Template) Bind(input map[string]any) (map[string]any, []any, error) {
	for name := range input {
		if !t.hasParam(name) {
			return nil, nil, fmt.Errorf("%w: %s does not accept %q", ErrInvalidParam, t.ID, name)
		}
	}

	resolved := make(map[string]any, len(t.Params))
	args := make([]any, 0, len(t.Params))
	for _, param := range t.Params {
		raw, ok := input[param.Name]
		if !ok || raw == nil {
			raw = param.Default
		}

		value, err := param.coerce(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrInvalidParam, param.Name, err)
		}
		resolved[param.Name] = value
		args = append(args, value)
	}

	return resolved, args, nil
}

func (t Template) hasParam(name string) bool {
	for _, param := range t.Params {
		if param.Name == name {
			return true
		}
	}
	return false
}

func (p Param) coerce(raw any) (any, error) {
	switch p.Type {
	case ParamInt:
		value, err := toInt64(raw)
		if err != nil {
			return nil, err
		}
		if p.Min != nil && value < *p.Min {
			return nil, fmt.Errorf("must be >= %d", *p.Min)
		}
		if p.Max != nil && value > *p.Max {
			return nil, fmt.Errorf("must be <= %d", *p.Max)
		}
		return value, nil
	case ParamString:
		value, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("must be a string")
		}
		value = strings.TrimSpace(value)
		if value == "" {
			return nil, fmt.Errorf("must not be empty")
		}
		if p.MaxLength > 0 && len(value) > p.MaxLength {
			return nil, fmt.Errorf("must be at most %d characters", p.MaxLength)
		}
		return value, nil
	default:
		return nil, fmt.Errorf("unsupported parameter type %q", p.Type)
	}
}

func toInt64(raw any) (int64, error) {
	switch typed := raw.(type) {
	case int:
		return int64(typed), nil
	case int64:
		return typed, nil
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) || typed != math.Trunc(typed) ||
			typed >= math.MaxInt64 || typed <= math.MinInt64 {
			return 0, fmt.Errorf("must be an integer")
		}
		return int64(typed), nil
	case json.Number:
		v, err := typed.Int64()
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return v, nil
	case string:
		v, err := strconv.ParseInt(strings.TrimSpace(typed), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return v, nil
	default:
		return 0, fmt.Errorf("must be an integer")
	}
}
