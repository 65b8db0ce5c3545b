// Package postgres contains PostgreSQL implementations of the repository
// ports. Every operation is a single-row read or write; no multi-row
// transactions are needed.
package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domerrors "github.com/ufernand853/seguros-main-sub000/internal/domain/errors"
)

// PgxPool is the minimal pool surface repositories use. It is satisfied
// by *pgxpool.Pool and by pgxmock.PgxPoolIface in tests.
type PgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// DB wraps the pool so repositories share one handle with an explicit
// lifecycle instead of a package-level singleton.
type DB struct{ Pool PgxPool }

// New opens a connection pool for the given DSN and verifies it with a ping.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return &DB{Pool: pool}, nil
}

// Close releases the underlying pool.
func (db *DB) Close() { db.Pool.Close() }

// Ping checks connectivity; the health endpoint uses it.
func (db *DB) Ping(ctx context.Context) error { return db.Pool.Ping(ctx) }

func isUniqueViolation(err error) bool {
	var pg *pgconn.PgError
	return errors.As(err, &pg) && pg.Code == "23505"
}

// classify maps low-level store failures to ErrUnavailable so the HTTP
// layer can tell "store unreachable" apart from "bad credentials".
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domerrors.ErrUnavailable
	}
	var pg *pgconn.PgError
	if errors.As(err, &pg) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return err
	}
	// Connection-level failures (dial errors, closed pool) have no pg code.
	return domerrors.ErrUnavailable
}
