package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const (
	migrationsPath        = "db/migrations"
	seedsPath             = "db/seeds"
	schemaMigrationsTable = "rewards_schema_migrations"
)

var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies the versioned SQL schema for cards and transactions
// and optionally loads the demo seed files.
type MigrationRunner struct {
	db             *sql.DB
	logger         *slog.Logger
	migrationsPath string
	seedsPath      string
	seed           bool
	attempts       int
	interval       time.Duration
}

type RunnerOption func(*MigrationRunner)

// WithPaths reads migrations and seeds from the given directories
func WithPaths(migrationsDir, seedsDir string) RunnerOption {
	return func(mr *MigrationRunner) {
		mr.migrationsPath = migrationsDir
		mr.seedsPath = seedsDir
	}
}

// WithSeeds enables loading db/seeds after migrating
func WithSeeds(enabled bool) RunnerOption {
	return func(mr *MigrationRunner) { mr.seed = enabled }
}

// WithRetry sets how often the database is pinged before giving up
func WithRetry(attempts int, interval time.Duration) RunnerOption {
	return func(mr *MigrationRunner) {
		if attempts > 0 {
			mr.attempts = attempts
		}
		mr.interval = interval
	}
}

func NewMigrationRunner(db *sql.DB, logger *slog.Logger, opts ...RunnerOption) *MigrationRunner {
	if logger == nil {
		logger = slog.Default()
	}
	mr := &MigrationRunner{
		db:             db,
		logger:         logger.With("component", "migrator"),
		migrationsPath: migrationsPath,
		seedsPath:      seedsPath,
		attempts:       30,
		interval:       2 * time.Second,
	}
	for _, opt := range opts {
		opt(mr)
	}
	return mr
}

// WaitForDatabase pings until the database answers, the attempts run out or ctx ends
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	var lastErr error
	for attempt := 1; attempt <= mr.attempts; attempt++ {
		if lastErr = mr.db.PingContext(ctx); lastErr == nil {
			return nil
		}
		mr.logger.Info("database not ready", "attempt", attempt, "of", mr.attempts, "error", lastErr)

		if attempt == mr.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(mr.interval):
		}
	}
	return fmt.Errorf("database not ready after %d attempts: %w", mr.attempts, lastErr)
}

// RunMigrations applies pending up migrations. A missing directory is not an error.
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.open()
	if errors.Is(err, ErrMigrationsNotFound) {
		mr.logger.Warn("no migrations directory, skipping", "path", mr.migrationsPath)
		return nil
	}
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if dirty {
		// a failed run left the version marked dirty; retry it from the top
		mr.logger.Warn("schema version is dirty, forcing", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version %d: %w", version, err)
		}
	}

	switch err := m.Up(); {
	case errors.Is(err, migrate.ErrNoChange):
		mr.logger.Info("schema up to date", "version", version)
		return nil
	case err != nil:
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	mr.logger.Info("migrations applied", "from", version, "to", newVersion)
	return nil
}

// LoadSeeds executes every *.sql file under the seeds directory in name order.
// A file that fails to execute is logged and skipped; one that cannot be read aborts.
func (mr *MigrationRunner) LoadSeeds() (int, error) {
	if !mr.seed {
		return 0, nil
	}

	files, err := filepath.Glob(filepath.Join(mr.seedsPath, "*.sql"))
	if err != nil {
		return 0, fmt.Errorf("failed to list seed files: %w", err)
	}
	sort.Strings(files)

	applied := 0
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return applied, fmt.Errorf("failed to read seed file %s: %w", filepath.Base(file), err)
		}
		if _, err := mr.db.Exec(string(content)); err != nil {
			mr.logger.Warn("seed file failed", "file", filepath.Base(file), "error", err)
			continue
		}
		applied++
	}

	if applied > 0 {
		mr.logger.Info("seed data loaded", "files", applied)
	}
	return applied, nil
}

// Status reports the applied schema version
func (mr *MigrationRunner) Status() (version uint, dirty bool, err error) {
	m, err := mr.open()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// Apply waits for the database, migrates it and loads seeds when enabled.
// Seed failures are logged and never fail the startup.
func (mr *MigrationRunner) Apply(ctx context.Context) error {
	if err := mr.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := mr.RunMigrations(); err != nil {
		return err
	}
	if _, err := mr.LoadSeeds(); err != nil {
		mr.logger.Warn("seed loading stopped", "error", err)
	}
	return nil
}

func (mr *MigrationRunner) open() (*migrate.Migrate, error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath)
	}

	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{
		MigrationsTable: schemaMigrationsTable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}
