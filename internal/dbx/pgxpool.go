package dbx

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/roomstats/internal/common"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

// PgxPool is the production Pool backed by pgxpool.
type PgxPool struct {
	pool *pgxpool.Pool
}

// NewPgxPool parses dsn, caps the pool at maxConns and creates the pool.
// Connections are established lazily, so an unreachable database does not
// fail here; it surfaces on the first Acquire instead.
func NewPgxPool(ctx context.Context, dsn string, maxConns int32) (*PgxPool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = maxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	return &PgxPool{pool: pool}, nil
}

func (p *PgxPool) Acquire(ctx context.Context) (Conn, error) {
	if p == nil || p.pool == nil {
		return nil, common.ErrPoolClosed
	}
	c, err := p.pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Ping checks that a connection can be established.
func (p *PgxPool) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// MaxConns reports the configured pool bound.
func (p *PgxPool) MaxConns() int32 {
	return p.pool.Config().MaxConns
}

// DB exposes the pool through database/sql for tools that need *sql.DB,
// such as goose. Closing the returned DB does not close the pool.
func (p *PgxPool) DB() *sql.DB {
	return stdlib.OpenDBFromPool(p.pool)
}

func (p *PgxPool) Close() {
	p.pool.Close()
}
