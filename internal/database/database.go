package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

type DB struct {
	*sql.DB
	driver string
}

// New opens a database with the given driver ("sqlite3" or "postgres").
func New(driver, databaseURL string) (*DB, error) {
	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close() // Ignore close error, we're already returning ping error
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

func (db *DB) dialect() (goose.Dialect, error) {
	switch db.driver {
	case "sqlite3":
		return goose.DialectSQLite3, nil
	case "postgres":
		return goose.DialectPostgres, nil
	}
	return "", fmt.Errorf("unsupported driver %q", db.driver)
}

// Migrate applies all pending migrations.
func (db *DB) Migrate(ctx context.Context) error {
	dialect, err := db.dialect()
	if err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
