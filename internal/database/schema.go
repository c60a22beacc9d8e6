package database

import "fmt"

// ApplySchema creates the application tables if they do not exist. The DDL
// is embedded per dialect rather than shipped as migration files; the
// schema is small enough that additive CREATE IF NOT EXISTS statements
// cover every upgrade path so far.
func (db *DB) ApplySchema() error {
	for _, stmt := range db.Dialect.SchemaStatements() {
		if _, err := db.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}
	return nil
}
