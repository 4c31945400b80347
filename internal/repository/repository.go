// FilePath: internal/repository/repository.go
package repository

import (
	"context"

	"github.com/uwnav/hub/internal/models"
)

// ListFilter carries the optional equality filter and result cap for the
// read-back queries. Limit must already be clamped by the caller.
type ListFilter struct {
	SensorID string
	DeviceID string
	Limit    int64
}

// ReadingRepository defines the storage operations for all record families.
// Every insert appends exactly one document to the family's collection and
// returns the store-assigned identifier; lists return documents ordered by
// timestamp descending.
type ReadingRepository interface {
	InsertDHT(ctx context.Context, reading *models.DHTReading) (string, error)
	InsertNavigation(ctx context.Context, reading *models.NavigationReading) (string, error)
	InsertMapping(ctx context.Context, reading *models.MappingReading) (string, error)
	InsertGeneral(ctx context.Context, reading *models.GeneralReading) (string, error)
	InsertBatchRecord(ctx context.Context, record *models.BatchRecord) (string, error)

	ListDHT(ctx context.Context, filter ListFilter) ([]models.DHTReading, error)
	ListNavigation(ctx context.Context, filter ListFilter) ([]models.NavigationReading, error)
	ListMapping(ctx context.Context, filter ListFilter) ([]models.MappingReading, error)

	CollectionCounts(ctx context.Context) (map[string]int64, error)
	Ping(ctx context.Context) error
}
