package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "github.com/lib/pq"              // driver: postgres (lib/pq)
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverNone     Driver = "none"
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres" // pgx
	DriverPQ       Driver = "pq"
)

// Open opens a DB and ensures the journal schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:gradescale.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/gradescale?sslmode=disable"
		}
	case DriverPQ:
		drvName = "postgres" // lib/pq registers as "postgres"
		if dsn == "" {
			dsn = "host=localhost port=5432 dbname=gradescale sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	schema := schemaPostgres
	if driver == DriverSQLite {
		schema = schemaSQLite
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
CREATE TABLE IF NOT EXISTS event_log (
  seq INTEGER PRIMARY KEY AUTOINCREMENT,
  session_id TEXT NOT NULL,
  typ TEXT NOT NULL,                         -- intent name, e.g. IncrementThreshold
  key TEXT NOT NULL,                         -- uuid per applied intent
  data TEXT NOT NULL,                        -- JSON payload
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_event_log_session ON event_log(session_id);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS event_log (
  seq BIGSERIAL PRIMARY KEY,
  session_id TEXT NOT NULL,
  typ TEXT NOT NULL,
  key TEXT NOT NULL,
  data TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_event_log_session ON event_log(session_id);
`
