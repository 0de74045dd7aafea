package pg

import (
	"context"
	"fmt"
	"time"

	infraconfig "quotes-service/internal/infrastructure/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Options struct {
	MaxConns       int
	IdleTimeout    time.Duration
	AcquireTimeout time.Duration
}

// DB owns the process-wide pool. It is built once at startup and closed on shutdown.
type DB struct {
	Pool           *pgxpool.Pool
	AcquireTimeout time.Duration
}

func Connect(ctx context.Context, url string, opts Options) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if opts.MaxConns <= 0 {
		opts.MaxConns = infraconfig.DefaultPGMaxConns
	}
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = infraconfig.DefaultPGIdleTimeout
	}
	if opts.AcquireTimeout <= 0 {
		opts.AcquireTimeout = infraconfig.DefaultPGAcquireTimeout
	}
	cfg.MaxConns, cfg.MinConns = int32(opts.MaxConns), infraconfig.DefaultPGMinConns
	cfg.MaxConnIdleTime = opts.IdleTimeout
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	return &DB{Pool: pool, AcquireTimeout: opts.AcquireTimeout}, nil
}

func (d *DB) Close() { d.Pool.Close() }

// Acquire takes a connection from the pool, waiting at most AcquireTimeout.
// The caller must Release it.
func (d *DB) Acquire(ctx context.Context) (*pgxpool.Conn, error) {
	actx, cancel := context.WithTimeout(ctx, d.AcquireTimeout)
	defer cancel()
	conn, err := d.Pool.Acquire(actx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	return conn, nil
}

func (d *DB) Ping(ctx context.Context) error {
	conn, err := d.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()
	var one int
	return conn.QueryRow(ctx, "SELECT 1").Scan(&one)
}
