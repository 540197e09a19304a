package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for the shared connection pool.
type Config struct {
	DSN              string
	MaxConns         int
	IdleTimeout      time.Duration
	StatementTimeout time.Duration
	Timeout          time.Duration
}

// Connect opens a database/sql pool on the pgx driver and verifies it with a
// ping. The statement timeout is applied as a session parameter on every
// pooled connection.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	connCfg, err := pgx.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres config: %w", err)
	}
	if cfg.StatementTimeout > 0 {
		connCfg.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.StatementTimeout.Milliseconds(), 10)
	}

	db := stdlib.OpenDB(*connCfg)
	if cfg.MaxConns > 0 {
		db.SetMaxOpenConns(cfg.MaxConns)
		db.SetMaxIdleConns(cfg.MaxConns)
	}
	if cfg.IdleTimeout > 0 {
		db.SetConnMaxIdleTime(cfg.IdleTimeout)
	}
	db.SetConnMaxLifetime(15 * time.Minute)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}
	return db, nil
}

// withTx runs fn inside a transaction. The transaction is rolled back on every
// path that does not reach Commit.
func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return translate(err, "begin tx")
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return translate(err, "commit tx")
	}
	return nil
}
