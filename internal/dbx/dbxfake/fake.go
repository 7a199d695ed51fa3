// Package dbxfake provides in-memory dbx.Pool and dbx.Conn implementations
// that record every statement, for use in tests.
package dbxfake

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Call is one recorded statement.
type Call struct {
	SQL  string
	Args []any
}

// Row is a canned pgx.Row.
type Row struct {
	Values []any
	Err    error
}

func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	if len(dest) != len(r.Values) {
		return fmt.Errorf("dbxfake: scan %d values into %d targets", len(r.Values), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("dbxfake: target %d is not a pointer", i)
		}
		v := reflect.ValueOf(r.Values[i])
		if !v.Type().AssignableTo(dv.Elem().Type()) {
			return fmt.Errorf("dbxfake: cannot assign %s to %s", v.Type(), dv.Elem().Type())
		}
		dv.Elem().Set(v)
	}
	return nil
}

// Pool is a fake dbx.Pool. Configure the exported fields before use; the
// recorded state is read through the accessor methods.
type Pool struct {
	// AcquireErr makes every Acquire fail.
	AcquireErr error
	// Row answers every QueryRow.
	Row Row
	// ExecErr makes every Exec fail.
	ExecErr error
	// BeforeQuery and BeforeExec, when set, run after the call is recorded
	// and before the context is checked. Tests use them to cancel a request
	// while it holds a connection.
	BeforeQuery func()
	BeforeExec  func()

	mu       sync.Mutex
	acquired int
	released int
	double   int
	execs    []Call
	queries  []Call
}

var _ dbx.Pool = (*Pool)(nil)

func (p *Pool) Acquire(ctx context.Context) (dbx.Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.AcquireErr != nil {
		return nil, p.AcquireErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.acquired++
	return &Conn{pool: p}, nil
}

// Acquired is the number of successful acquisitions.
func (p *Pool) Acquired() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.acquired
}

// Released is the number of connections handed back.
func (p *Pool) Released() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.released
}

// DoubleReleases counts Release calls on an already released connection.
func (p *Pool) DoubleReleases() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.double
}

// Execs returns the recorded Exec calls.
func (p *Pool) Execs() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.execs...)
}

// Queries returns the recorded QueryRow calls.
func (p *Pool) Queries() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.queries...)
}

// Conn is a fake dbx.Conn bound to its Pool.
type Conn struct {
	pool     *Pool
	released bool
}

var _ dbx.Conn = (*Conn)(nil)

func (c *Conn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	p := c.pool
	p.mu.Lock()
	p.execs = append(p.execs, Call{SQL: sql, Args: args})
	p.mu.Unlock()

	if p.BeforeExec != nil {
		p.BeforeExec()
	}

	if err := ctx.Err(); err != nil {
		return pgconn.CommandTag{}, err
	}
	if p.ExecErr != nil {
		return pgconn.CommandTag{}, p.ExecErr
	}
	return pgconn.NewCommandTag("CALL"), nil
}

func (c *Conn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	p := c.pool
	p.mu.Lock()
	p.queries = append(p.queries, Call{SQL: sql, Args: args})
	p.mu.Unlock()

	if p.BeforeQuery != nil {
		p.BeforeQuery()
	}

	if err := ctx.Err(); err != nil {
		return Row{Err: err}
	}
	return p.Row
}

func (c *Conn) Release() {
	p := c.pool
	p.mu.Lock()
	defer p.mu.Unlock()
	if c.released {
		p.double++
		return
	}
	c.released = true
	p.released++
}

// Querier returns a connection that is not tracked as acquired, for testing
// repositories directly.
func (p *Pool) Querier() dbx.Querier {
	return &Conn{pool: p}
}
