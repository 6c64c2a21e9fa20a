// Package store persists slider state in a local sqlite database.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"runtime"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

// MigrationAction selects the direction Migrate moves the schema in.
type MigrationAction int

const (
	// MigrateUp applies every pending migration.
	MigrateUp MigrationAction = iota
	// MigrateDown reverts every migration, dropping all stored sliders and history.
	MigrateDown
)

const pingTimeout = 10 * time.Second

var (
	//go:embed migrations
	migrations embed.FS

	ErrDBConnect = errors.New("db connect error")
	ErrMigrate   = errors.New("failed to migrate db schema")

	pragmas = []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 10000",
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
	}
)

// Open connects to the database file at path. Every pooled connection to ":memory:" would get its
// own database, so callers wanting a throwaway store should pass a temp file instead.
func Open(ctx context.Context, path string, autoMigrate bool) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}

	conn, errOpen := sql.Open("sqlite", path+"?cache=private")
	if errOpen != nil {
		return nil, errors.Join(errOpen, ErrDBConnect)
	}

	if err := prepare(ctx, conn); err != nil {
		_ = conn.Close()

		return nil, errors.Join(err, ErrDBConnect)
	}

	if autoMigrate {
		if err := Migrate(conn, MigrateUp); err != nil {
			_ = conn.Close()

			return nil, errors.Join(err, ErrDBConnect)
		}
	}

	return conn, nil
}

// prepare sizes the pool, applies the connection pragmas and checks the file is usable.
func prepare(ctx context.Context, conn *sql.DB) error {
	pool := min(8, max(2, runtime.GOMAXPROCS(0)))
	conn.SetMaxOpenConns(pool)
	conn.SetMaxIdleConns(pool)
	conn.SetConnMaxLifetime(0)
	conn.SetConnMaxIdleTime(0)

	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			return err
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	return conn.PingContext(pingCtx)
}

// Migrate moves the schema of conn to the newest or the empty revision. Nothing to do is not an error.
func Migrate(conn *sql.DB, action MigrationAction) error {
	driver, errDriver := sqlite.WithInstance(conn, &sqlite.Config{})
	if errDriver != nil {
		return errors.Join(errDriver, ErrMigrate)
	}

	source, errSource := iofs.New(migrations, "migrations")
	if errSource != nil {
		return errors.Join(errSource, ErrMigrate)
	}

	migrator, errMigrator := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if errMigrator != nil {
		return errors.Join(errMigrator, ErrMigrate)
	}

	run := migrator.Up
	if action == MigrateDown {
		run = migrator.Down
	}

	if err := run(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Join(err, ErrMigrate)
	}

	return nil
}

// Reset empties the database by reverting and reapplying the schema.
func Reset(conn *sql.DB) error {
	if err := Migrate(conn, MigrateDown); err != nil {
		return err
	}

	return Migrate(conn, MigrateUp)
}
