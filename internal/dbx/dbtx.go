// Package dbx provides the small database abstractions shared by the server:
// the Querier interface used by repositories, a connection Pool, and the
// per-request Lease that guarantees a pooled connection is returned exactly
// once.
package dbx

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of a pgx connection used by our repos.
// *pgxpool.Conn, *pgxpool.Pool, pgx.Tx and *Lease all satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Conn is a connection checked out of a Pool. Release hands it back.
type Conn interface {
	Querier
	Release()
}

// Pool hands out connections. Implementations must be safe for concurrent use.
type Pool interface {
	Acquire(ctx context.Context) (Conn, error)
}
