package app

import (
	"context"
	"fmt"

	"github.com/debashish967/cricbuzz-dashboard/internal/config"
	"github.com/debashish967/cricbuzz-dashboard/internal/infrastructure/repository/sqlite"
	"github.com/debashish967/cricbuzz-dashboard/internal/platform/logging"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

// OpenDatabase opens the traced SQLite pool and applies embedded migrations
// when DB_MIGRATE_ON_START is set.
func OpenDatabase(ctx context.Context, cfg config.Config, logger *logging.Logger) (*sqlx.DB, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := otelsqlx.Open(
		sqliteDriverName,
		sqliteDSN(cfg.DBPath, cfg.DBBusyTimeout),
		otelsql.WithDBSystem("sqlite"),
		otelsql.WithDBName(dbNameFromPath(cfg.DBPath)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if isMemoryDB(cfg.DBPath) {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if !cfg.DBMigrateOnStart {
		logger.InfoContext(ctx, "database opened", "path", cfg.DBPath, "migrated", false)
		return db, nil
	}

	version, err := sqlite.MigrateUp(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	logger.InfoContext(ctx, "database opened", "path", cfg.DBPath, "migrated", true, "schema_version", version)

	return db, nil
}
