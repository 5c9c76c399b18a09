// Package migrations embeds the goose SQL migrations of the server
// (PostgreSQL) and of the terminal client (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

const (
	postgresDir = "postgres"
	sqliteDir   = "sqlite"
)

var errNilDB = errors.New("db is nil")

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies the server migrations to a PostgreSQL database opened
// with the pgx driver.
func Migrate(db *sql.DB) error {
	return migrate(db, "pgx", postgresDir)
}

// MigrateClient applies the client migrations to the local SQLite database.
func MigrateClient(db *sql.DB) error {
	return migrate(db, "sqlite3", sqliteDir)
}

func migrate(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
