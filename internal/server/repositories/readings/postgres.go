package readings

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/roomstats/internal/dbx"
	"github.com/dmitrijs2005/roomstats/internal/server/models"
)

// Statements are fixed; only parameters vary. insert_stats and insert_stats2
// are stored procedures, tabs goes straight into its table.
const (
	insertStatsQuery  = `CALL insert_stats($1, $2, $3)`
	insertStats2Query = `CALL insert_stats2($1, $2, $3)`
	insertTabsQuery   = `INSERT INTO tabs (time, tabs) VALUES ($1, $2)`
)

type PostgresRepository struct {
	db dbx.Querier
}

func NewPostgresRepository(db dbx.Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) InsertStats(ctx context.Context, s models.Stats) error {
	if _, err := r.db.Exec(ctx, insertStatsQuery, s.Time.Time, s.Temperature, s.Humidity); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// InsertStats2 widens co2 to int32; Postgres has no unsigned 16-bit type.
// insert_stats2 must take an integer co2 parameter, as the embedded migration
// declares it. A smallint signature fails for values above 32767.
func (r *PostgresRepository) InsertStats2(ctx context.Context, s models.Stats2) error {
	if _, err := r.db.Exec(ctx, insertStats2Query, s.Time.Time, s.Temperature, int32(s.CO2)); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}

// InsertTabs binds tabs as int32, so tabs.tabs must be an integer column.
func (r *PostgresRepository) InsertTabs(ctx context.Context, t models.Tabs) error {
	if _, err := r.db.Exec(ctx, insertTabsQuery, t.Time.Time, int32(t.Tabs)); err != nil {
		return fmt.Errorf("error performing sql request: %w", err)
	}
	return nil
}
