package accesstokens

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/roomstats/internal/dbx/dbxfake"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenID = uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

func TestExists(t *testing.T) {
	tests := []struct {
		name string
		row  dbxfake.Row
		want bool
	}{
		{name: "present", row: dbxfake.Row{Values: []any{true}}, want: true},
		{name: "absent", row: dbxfake.Row{Values: []any{false}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := &dbxfake.Pool{Row: tt.row}
			repo := NewPostgresRepository(pool.Querier())

			got, err := repo.Exists(context.Background(), tokenID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			queries := pool.Queries()
			require.Len(t, queries, 1)
			assert.Equal(t, existsQuery, queries[0].SQL)
			assert.Equal(t, []any{tokenID}, queries[0].Args)
		})
	}
}

func TestExists_DBError(t *testing.T) {
	pool := &dbxfake.Pool{Row: dbxfake.Row{Err: errors.New("db down")}}
	repo := NewPostgresRepository(pool.Querier())

	got, err := repo.Exists(context.Background(), tokenID)
	require.Error(t, err)
	assert.False(t, got)
	assert.Contains(t, err.Error(), "db error: db down")
}
