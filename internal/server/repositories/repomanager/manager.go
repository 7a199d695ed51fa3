package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/accesstokens"
	"github.com/dmitrijs2005/roomstats/internal/server/repositories/readings"
)

// RepositoryManager vends repositories bound to a Querier, typically the
// connection leased for the current request.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	AccessTokens(db dbx.Querier) accesstokens.Repository
	Readings(db dbx.Querier) readings.Repository
}
