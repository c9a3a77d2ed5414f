package analytics

import (
	"errors"
	"strings"
	"testing"
)

func TestCatalog_PlaceholdersMatchParams(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for _, tmpl := range Catalog() {
		if _, dup := seen[tmpl.ID]; dup {
			t.Fatalf("duplicate template id %s", tmpl.ID)
		}
		seen[tmpl.ID] = struct{}{}

		if got := strings.Count(tmpl.SQL, "?"); got != len(tmpl.Params) {
			t.Fatalf("%s: expected %d placeholders, got=%d", tmpl.ID, len(tmpl.Params), got)
		}
		if _, _, err := tmpl.Bind(nil); err != nil {
			t.Fatalf("%s: defaults must bind, got=%v", tmpl.ID, err)
		}
	}
}

func TestTemplateBind(t *testing.T) {
	t.Parallel()

	tmpl, ok := Lookup("top-run-scorers")
	if !ok {
		t.Fatalf("expected top-run-scorers template")
	}

	resolved, args, err := tmpl.Bind(map[string]any{"format": " TEST ", "limit": float64(5)})
	if err != nil {
		t.Fatalf("bind: %v", err)
	}
	if len(args) != 2 || args[0] != "TEST" || args[1] != int64(5) {
		t.Fatalf("unexpected args: %+v", args)
	}
	if resolved["limit"] != int64(5) {
		t.Fatalf("unexpected resolved params: %+v", resolved)
	}

	_, args, err = tmpl.Bind(map[string]any{"limit": "3"})
	if err != nil {
		t.Fatalf("bind with string integer: %v", err)
	}
	if args[0] != "ODI" || args[1] != int64(3) {
		t.Fatalf("expected default format and parsed limit, got=%+v", args)
	}

	cases := []map[string]any{
		{"limit": float64(0)},
		{"limit": float64(1.5)},
		{"limit": "ten"},
		{"format": 10},
		{"format": "  "},
		{"format": strings.Repeat("x", 17)},
		{"table": "players"},
	}
	for _, input := range cases {
		if _, _, err := tmpl.Bind(input); !errors.Is(err, ErrInvalidParam) {
			t.Fatalf("expected ErrInvalidParam for %+v, got=%v", input, err)
		}
	}
}

func TestTemplateCacheable(t *testing.T) {
	t.Parallel()

	live, _ := Lookup("wins-per-team")
	static, _ := Lookup("players-by-role")
	if live.Cacheable() {
		t.Fatalf("live table templates must not be cached")
	}
	if !static.Cacheable() {
		t.Fatalf("analytical templates should be cacheable")
	}
}
