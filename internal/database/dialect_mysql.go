package database

import (
	"database/sql"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLDialect implements Dialect for MySQL
type MySQLDialect struct{}

// NewMySQLDialect creates a new MySQL dialect
func NewMySQLDialect() *MySQLDialect {
	return &MySQLDialect{}
}

func (d *MySQLDialect) DriverName() string {
	return "mysql"
}

func (d *MySQLDialect) DSN(config DialectConfig) string {
	// parseTime is required so DATETIME columns scan into time.Time
	dsn := config.URL
	if dsn != "" && !strings.Contains(dsn, "parseTime") {
		if strings.Contains(dsn, "?") {
			dsn += "&parseTime=true"
		} else {
			dsn += "?parseTime=true"
		}
	}
	return dsn
}

func (d *MySQLDialect) RewriteQuery(query string) string {
	// MySQL uses ? placeholders, no rewrite needed
	return query
}

func (d *MySQLDialect) ConfigureConnection(db *sql.DB) error {
	// Configure connection pool for MySQL
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	return nil
}

func (d *MySQLDialect) SchemaStatements() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS save_slots (
			slot_key VARCHAR(64) PRIMARY KEY,
			payload MEDIUMTEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS simulation_runs (
			id VARCHAR(36) PRIMARY KEY,
			simulation_id VARCHAR(64) NOT NULL,
			score INT NOT NULL,
			xp_awarded INT NOT NULL,
			cashback_awarded INT NOT NULL,
			badge_awarded VARCHAR(64) NOT NULL DEFAULT '',
			completed_at DATETIME NOT NULL,
			INDEX idx_simulation_runs_sim (simulation_id)
		);`,
	}
}

func (d *MySQLDialect) UpsertSaveSlot() string {
	return `INSERT INTO save_slots (slot_key, payload, updated_at) VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE payload = VALUES(payload), updated_at = VALUES(updated_at)`
}
