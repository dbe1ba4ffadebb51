package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
)

var (
	// ErrInvalidConnectionString wraps pgxpool.ParseConfig failures.
	ErrInvalidConnectionString = errors.New("invalid postgres connection string")

	// ErrNotReady is returned when the pool cannot be established within
	// the configured retry budget.
	ErrNotReady = errors.New("postgres not ready after connect retries")

	// ErrHealthcheckFailed wraps ping failures from the Healthcheck probe.
	ErrHealthcheckFailed = errors.New("postgres healthcheck failed")

	// ErrMigrationFailed wraps any goose failure during Migrate.
	ErrMigrationFailed = errors.New("failed to apply migrations")

	// ErrNoMigrationsDir is returned when the config names no directory
	// inside the migrations filesystem.
	ErrNoMigrationsDir = errors.New("migrations directory not provided")
)

// IsNotFoundError detects pgx.ErrNoRows so repositories can map empty query
// results to their own not-found sentinels.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows)
}
