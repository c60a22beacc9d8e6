package database

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteDialect implements Dialect for SQLite
type SQLiteDialect struct{}

// NewSQLiteDialect creates a new SQLite dialect
func NewSQLiteDialect() *SQLiteDialect {
	return &SQLiteDialect{}
}

func (d *SQLiteDialect) DriverName() string {
	return "sqlite3"
}

func (d *SQLiteDialect) DSN(config DialectConfig) string {
	return config.Path
}

func (d *SQLiteDialect) RewriteQuery(query string) string {
	// SQLite uses ? placeholders, no rewrite needed
	return query
}

func (d *SQLiteDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
		return err
	}

	// Enable foreign key constraints
	if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
		return err
	}

	return nil
}

func (d *SQLiteDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS save_slots (
			slot_key TEXT PRIMARY KEY,
			payload TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS simulation_runs (
			id TEXT PRIMARY KEY,
			simulation_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			xp_awarded INTEGER NOT NULL,
			cashback_awarded INTEGER NOT NULL,
			badge_awarded TEXT NOT NULL DEFAULT '',
			completed_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_simulation_runs_sim ON simulation_runs (simulation_id);`,
	}
}

func (d *SQLiteDialect) UpsertSaveSlot() string {
	return `INSERT INTO save_slots (slot_key, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
}
