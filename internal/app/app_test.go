package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/debashish967/cricbuzz-dashboard/internal/config"
	"github.com/debashish967/cricbuzz-dashboard/internal/platform/logging"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		HTTPAddr:           ":0",
		DBPath:             filepath.Join(t.TempDir(), "cricbuzz.db"),
		DBBusyTimeout:      time.Second,
		DBMigrateOnStart:   true,
		CricbuzzTimeout:    time.Second,
		CORSAllowedOrigins: []string{"*"},
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
	}
}

func TestOpenDatabase_MigratesSchema(t *testing.T) {
	cfg := testConfig(t)

	db, err := OpenDatabase(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	var count int
	if err := db.Get(&count, "SELECT COUNT(*) FROM live_matches"); err != nil {
		t.Fatalf("query live_matches: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty table, got %d rows", count)
	}
}

func TestNewHTTPServer_ServesDashboard(t *testing.T) {
	cfg := testConfig(t)

	db, err := OpenDatabase(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	srv, err := NewHTTPServer(cfg, db, logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/live-matches/refresh", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without RAPIDAPI_KEY, got %d body=%s", rec.Code, rec.Body.String())
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := testConfig(t)
	cfg.HTTPAddr = ""

	if _, err := NewHTTPServer(cfg, nil, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
