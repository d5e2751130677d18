package db

import "database/sql"

// MigrateUp creates the state table if it does not exist.
// The schema is a flat key-value table: the persisted state is a handful of
// scalar values (credential, selection, last summary) with last-write-wins
// semantics, so no relational modeling is needed.
func MigrateUp(db *sql.DB) error {
	_, err := db.Exec(`
CREATE TABLE IF NOT EXISTS extension_state (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`)
	return err
}
