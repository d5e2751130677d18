// Package db opens and migrates the local SQLite database that backs the
// extension's persisted state.
package db

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

// Open creates a new database handle for the state file at path.
// The pool is capped at a single connection: SQLite allows one writer at a
// time and the daemon serves a single user.
func Open(path string) *sql.DB {
	if path == "" {
		log.Fatal("database path not set")
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		log.Fatal(err)
	}

	database.SetMaxOpenConns(1)
	database.SetMaxIdleConns(1)

	// Verify the file is readable and writable
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping database: %v", err)
	}

	slog.Info("state database opened", slog.String("path", path))
	return database
}
