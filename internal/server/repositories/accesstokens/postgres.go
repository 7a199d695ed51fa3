package accesstokens

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/google/uuid"
)

const existsQuery = `SELECT EXISTS (SELECT 1 FROM access_tokens WHERE id = $1)`

// PostgresRepository looks tokens up in the access_tokens table over a
// dbx.Querier (a leased connection in production).
type PostgresRepository struct {
	db dbx.Querier
}

// NewPostgresRepository constructs a repository bound to the given Querier.
func NewPostgresRepository(db dbx.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, existsQuery, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}
