package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	"github.com/rs/zerolog/log"
	"github.com/sethvargo/go-retry"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Supported database/sql driver names.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// DB is a connection pool that knows which SQL dialect it speaks.
type DB struct {
	*sql.DB
	Driver string
}

// Rebind rewrites the ? placeholders of query into the driver's native form.
func (db *DB) Rebind(query string) string {
	if db.Driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RetryConfig bounds the startup connection loop.
type RetryConfig struct {
	Base    time.Duration // first delay
	Max     time.Duration // cap on a single delay
	Timeout time.Duration // give up after this long; zero retries until ctx is done
}

// ValidDriver reports whether driver is supported.
func ValidDriver(driver string) bool {
	return driver == DriverSQLite || driver == DriverPostgres
}

// Open creates a connection pool without contacting the database.
func Open(driver, dsn string) (*DB, error) {
	if !ValidDriver(driver) {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// A single writer avoids SQLITE_BUSY between pooled connections.
		db.SetMaxOpenConns(1)
	}
	return &DB{DB: db, Driver: driver}, nil
}

// Connect opens a pool and blocks until the database answers a ping, backing
// off exponentially between attempts. health, when non-nil, tracks progress.
func Connect(ctx context.Context, driver, dsn string, rc RetryConfig, health *Health) (*DB, error) {
	db, err := Open(driver, dsn)
	if err != nil {
		return nil, err
	}

	b := retry.NewExponential(rc.Base)
	if rc.Max > 0 {
		b = retry.WithCappedDuration(rc.Max, b)
	}
	if rc.Timeout > 0 {
		b = retry.WithMaxDuration(rc.Timeout, b)
	}

	attempt := 0
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			log.Warn().Err(err).Int("attempt", attempt).Str("driver", driver).Msg("Database not reachable, retrying")
			health.set(StateDown)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
	}

	health.attach(db.DB)
	log.Info().Int("attempt", attempt).Str("driver", driver).Msg("Connected to database")
	return db, nil
}

// IsUniqueViolation reports whether err is a unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			liteErr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

// IsConstraintViolation reports whether err is any integrity constraint
// failure (not null, unique, check, foreign key).
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
	}
	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
