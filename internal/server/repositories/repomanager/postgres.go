// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/dmitrijs2005/roomstats/internal/server/migrations"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/accesstokens"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/readings"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// AccessTokens returns an accesstokens.Repository bound to the provided Querier.
func (m *PostgresRepositoryManager) AccessTokens(db dbx.Querier) accesstokens.Repository {
	return accesstokens.NewPostgresRepository(db)
}

// Readings returns a readings.Repository bound to the provided Querier.
func (m *PostgresRepositoryManager) Readings(db dbx.Querier) readings.Repository {
	return readings.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations points goose at the embedded migrations and applies them.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, db, ".")
}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() RepositoryManager {
	return &PostgresRepositoryManager{}
}
