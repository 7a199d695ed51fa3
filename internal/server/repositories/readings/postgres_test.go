package readings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/roomstats/internal/dbx/dbxfake"
	"github.com/dmitrijs2005/roomstats/internal/server/models"
	"github.com/dmitrijs2005/roomstats/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTime = time.Unix(1700000000, 0).UTC()

func TestInserts(t *testing.T) {
	ts := timex.Timestamp{Time: sampleTime}

	tests := []struct {
		name     string
		call     func(r *PostgresRepository) error
		wantSQL  string
		wantArgs []any
	}{
		{
			name: "stats",
			call: func(r *PostgresRepository) error {
				return r.InsertStats(context.Background(), models.Stats{Time: ts, Temperature: 21.5, Humidity: 40.2})
			},
			wantSQL:  insertStatsQuery,
			wantArgs: []any{sampleTime, float32(21.5), float32(40.2)},
		},
		{
			name: "stats2",
			call: func(r *PostgresRepository) error {
				return r.InsertStats2(context.Background(), models.Stats2{Time: ts, Temperature: 19, CO2: 65535})
			},
			wantSQL:  insertStats2Query,
			wantArgs: []any{sampleTime, float32(19), int32(65535)},
		},
		{
			name: "tabs",
			call: func(r *PostgresRepository) error {
				return r.InsertTabs(context.Background(), models.Tabs{Time: ts, Tabs: 42})
			},
			wantSQL:  insertTabsQuery,
			wantArgs: []any{sampleTime, int32(42)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &dbxfake.Pool{}
			repo := NewPostgresRepository(pool.Querier())

			require.NoError(t, tt.call(repo))

			execs := pool.Execs()
			require.Len(t, execs, 1)
			assert.Equal(t, tt.wantSQL, execs[0].SQL)
			assert.Equal(t, tt.wantArgs, execs[0].Args)
		})
	}
}

func TestInserts_DBError(t *testing.T) {
	pool := &dbxfake.Pool{ExecErr: errors.New("procedure insert_stats does not exist")}
	repo := NewPostgresRepository(pool.Querier())
	ts := timex.Timestamp{Time: sampleTime}

	errs := []error{
		repo.InsertStats(context.Background(), models.Stats{Time: ts}),
		repo.InsertStats2(context.Background(), models.Stats2{Time: ts}),
		repo.InsertTabs(context.Background(), models.Tabs{Time: ts}),
	}
	for _, err := range errs {
		require.Error(t, err)
		assert.ErrorIs(t, err, pool.ExecErr)
	}
	assert.Len(t, pool.Execs(), 3)
}
