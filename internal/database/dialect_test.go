package database

import (
	"strings"
	"testing"
)

func TestDialectSQLite(t *testing.T) {
	dialect := NewSQLiteDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "sqlite3"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("DSN", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{Path: "./finplay.db"})
		if result != "./finplay.db" {
			t.Errorf("DSN() = %v, want ./finplay.db", result)
		}
	})

	t.Run("UpsertSaveSlot", func(t *testing.T) {
		query := dialect.UpsertSaveSlot()
		if !strings.Contains(query, "ON CONFLICT(slot_key)") {
			t.Errorf("UpsertSaveSlot() should use ON CONFLICT, got %v", query)
		}
	})
}

func TestDialectPostgreSQL(t *testing.T) {
	dialect := NewPostgresDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "postgres"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("UpsertSaveSlot", func(t *testing.T) {
		query := dialect.UpsertSaveSlot()
		if !strings.Contains(query, "ON CONFLICT (slot_key)") {
			t.Errorf("UpsertSaveSlot() should use ON CONFLICT, got %v", query)
		}
	})
}

func TestDialectMySQL(t *testing.T) {
	dialect := NewMySQLDialect()

	t.Run("DriverName", func(t *testing.T) {
		result := dialect.DriverName()
		expected := "mysql"
		if result != expected {
			t.Errorf("DriverName() = %v, want %v", result, expected)
		}
	})

	t.Run("DSN adds parseTime", func(t *testing.T) {
		result := dialect.DSN(DialectConfig{URL: "user:pass@tcp(localhost:3306)/finplay"})
		if !strings.Contains(result, "parseTime=true") {
			t.Errorf("DSN() should append parseTime, got %v", result)
		}
	})

	t.Run("DSN keeps existing parseTime", func(t *testing.T) {
		url := "user:pass@tcp(localhost:3306)/finplay?parseTime=true"
		result := dialect.DSN(DialectConfig{URL: url})
		if result != url {
			t.Errorf("DSN() = %v, want %v", result, url)
		}
	})

	t.Run("UpsertSaveSlot", func(t *testing.T) {
		query := dialect.UpsertSaveSlot()
		if !strings.Contains(query, "ON DUPLICATE KEY UPDATE") {
			t.Errorf("UpsertSaveSlot() should use ON DUPLICATE KEY UPDATE, got %v", query)
		}
	})
}

func TestRewriteQuery(t *testing.T) {
	tests := []struct {
		name     string
		dialect  Dialect
		query    string
		expected string
	}{
		{
			name:     "SQLite no change",
			dialect:  NewSQLiteDialect(),
			query:    "SELECT payload FROM save_slots WHERE slot_key = ?",
			expected: "SELECT payload FROM save_slots WHERE slot_key = ?",
		},
		{
			name:     "PostgreSQL single placeholder",
			dialect:  NewPostgresDialect(),
			query:    "SELECT payload FROM save_slots WHERE slot_key = ?",
			expected: "SELECT payload FROM save_slots WHERE slot_key = $1",
		},
		{
			name:     "PostgreSQL multiple placeholders",
			dialect:  NewPostgresDialect(),
			query:    "INSERT INTO save_slots (slot_key, payload) VALUES (?, ?)",
			expected: "INSERT INTO save_slots (slot_key, payload) VALUES ($1, $2)",
		},
		{
			name:     "MySQL no change",
			dialect:  NewMySQLDialect(),
			query:    "UPDATE save_slots SET payload = ? WHERE slot_key = ?",
			expected: "UPDATE save_slots SET payload = ? WHERE slot_key = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.dialect.RewriteQuery(tt.query)
			if result != tt.expected {
				t.Errorf("RewriteQuery() = %v, want %v", result, tt.expected)
			}
		})
	}
}
