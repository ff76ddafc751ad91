// Package migrations embeds the schema and applies it with golang-migrate.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/AnyaAven/jobly/internal/pkg/log"
)

//go:embed sql/*.sql
var files embed.FS

// Runner applies the embedded migrations to one database.
type Runner struct {
	m *migrate.Migrate
}

// New builds a runner on an open connection. Closing the runner closes db.
func New(db *sql.DB) (*Runner, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migration init failed: %w", err)
	}
	m.Log = migrateLogger{}

	return &Runner{m: m}, nil
}

// Up applies every pending migration. An up-to-date schema is not an error.
func (r *Runner) Up() error {
	if err := r.m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("up failed: %w", err)
	}
	return nil
}

// Down rolls back steps migrations.
func (r *Runner) Down(steps int) error {
	if steps < 1 {
		return fmt.Errorf("down: steps must be at least 1, got %d", steps)
	}
	if err := r.m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("down failed: %w", err)
	}
	return nil
}

// Version reports the applied version. A fresh database reports 0.
func (r *Runner) Version() (uint, bool, error) {
	v, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("version failed: %w", err)
	}
	return v, dirty, nil
}

// Force sets the version without running migrations, clearing a dirty flag.
func (r *Runner) Force(version int) error {
	if err := r.m.Force(version); err != nil {
		return fmt.Errorf("force failed: %w", err)
	}
	return nil
}

// Close releases the source and the database handle.
func (r *Runner) Close() error {
	srcErr, dbErr := r.m.Close()
	return errors.Join(srcErr, dbErr)
}

type migrateLogger struct{}

func (migrateLogger) Printf(format string, v ...interface{}) {
	log.Info("migrate: "+format, v...)
}

func (migrateLogger) Verbose() bool { return false }
