package dbx

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Lease is a connection owned by a single request. Release may be called any
// number of times; the connection goes back to the pool on the first call only.
//
// Typical use:
//
//	lease, err := dbx.Acquire(ctx, pool)
//	if err != nil {
//	    return err
//	}
//	defer lease.Release()
type Lease struct {
	conn Conn
	once sync.Once
}

// Acquire checks a connection out of p. On error no lease is returned and
// nothing needs releasing.
func Acquire(ctx context.Context, p Pool) (*Lease, error) {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	if conn == nil {
		return nil, fmt.Errorf("acquire connection: pool returned no connection")
	}
	return &Lease{conn: conn}, nil
}

func (l *Lease) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return l.conn.Exec(ctx, sql, args...)
}

func (l *Lease) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return l.conn.QueryRow(ctx, sql, args...)
}

// Release returns the connection to its pool.
func (l *Lease) Release() {
	l.once.Do(l.conn.Release)
}
