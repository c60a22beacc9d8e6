package database

import (
	"database/sql"
	"time"

	_ "github.com/lib/pq"
)

// PostgresDialect implements Dialect for PostgreSQL
type PostgresDialect struct{}

// NewPostgresDialect creates a new PostgreSQL dialect
func NewPostgresDialect() *PostgresDialect {
	return &PostgresDialect{}
}

func (d *PostgresDialect) DriverName() string {
	return "postgres"
}

func (d *PostgresDialect) DSN(config DialectConfig) string {
	return config.URL
}

func (d *PostgresDialect) RewriteQuery(query string) string {
	// PostgreSQL uses $1, $2, etc. instead of ?
	return rewritePlaceholdersToNumbered(query)
}

func (d *PostgresDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for PostgreSQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}

func (d *PostgresDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS save_slots (
			slot_key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS simulation_runs (
			id TEXT PRIMARY KEY,
			simulation_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			xp_awarded INTEGER NOT NULL,
			cashback_awarded INTEGER NOT NULL,
			badge_awarded TEXT NOT NULL DEFAULT '',
			completed_at TIMESTAMPTZ NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_simulation_runs_sim ON simulation_runs (simulation_id);`,
	}
}

func (d *PostgresDialect) UpsertSaveSlot() string {
	return `INSERT INTO save_slots (slot_key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (slot_key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
}
