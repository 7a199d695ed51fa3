// Package readings writes sensor samples to the store.
package readings

import (
	"context"

	"github.com/dmitrijs2005/roomstats/internal/server/models"
)

// Repository runs one write statement per call.
type Repository interface {
	InsertStats(ctx context.Context, s models.Stats) error
	InsertStats2(ctx context.Context, s models.Stats2) error
	InsertTabs(ctx context.Context, t models.Tabs) error
}
