package dbx

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingConn struct {
	released *atomic.Int32
	execs    int
}

func (c *countingConn) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.execs++
	return pgconn.NewCommandTag("CALL"), nil
}

func (c *countingConn) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (c *countingConn) Release() { c.released.Add(1) }

type countingPool struct {
	acquired atomic.Int32
	released atomic.Int32
	err      error
}

func (p *countingPool) Acquire(ctx context.Context) (Conn, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}
	p.acquired.Add(1)
	return &countingConn{released: &p.released}, nil
}

type nilPool struct{}

func (nilPool) Acquire(ctx context.Context) (Conn, error) { return nil, nil }

func TestAcquire_ReleaseIsIdempotent(t *testing.T) {
	p := &countingPool{}

	lease, err := Acquire(context.Background(), p)
	require.NoError(t, err)
	require.NotNil(t, lease)

	lease.Release()
	lease.Release()

	assert.EqualValues(t, 1, p.acquired.Load())
	assert.EqualValues(t, 1, p.released.Load())
}

func TestAcquire_DelegatesQueries(t *testing.T) {
	p := &countingPool{}

	lease, err := Acquire(context.Background(), p)
	require.NoError(t, err)
	defer lease.Release()

	tag, err := lease.Exec(context.Background(), "call x()")
	require.NoError(t, err)
	assert.Equal(t, "CALL", tag.String())
	assert.Equal(t, 1, lease.conn.(*countingConn).execs)
}

func TestAcquire_PoolError(t *testing.T) {
	boom := errors.New("connection refused")
	p := &countingPool{err: boom}

	lease, err := Acquire(context.Background(), p)
	require.Error(t, err)
	assert.Nil(t, lease)
	assert.ErrorIs(t, err, boom)
	assert.EqualValues(t, 0, p.released.Load())
}

func TestAcquire_CancelledContext(t *testing.T) {
	p := &countingPool{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lease, err := Acquire(ctx, p)
	require.Error(t, err)
	assert.Nil(t, lease)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAcquire_NilConnection(t *testing.T) {
	lease, err := Acquire(context.Background(), nilPool{})
	require.Error(t, err)
	assert.Nil(t, lease)
}

func TestLease_ConcurrentRelease(t *testing.T) {
	p := &countingPool{}
	lease, err := Acquire(context.Background(), p)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lease.Release()
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, p.released.Load())
}

func TestPgxPool_NilIsClosed(t *testing.T) {
	var p *PgxPool
	_, err := p.Acquire(context.Background())
	require.Error(t, err)
}

func TestNewPgxPool_BadDSN(t *testing.T) {
	_, err := NewPgxPool(context.Background(), "postgres://%zz", 4)
	require.Error(t, err)
}
