// FilePath: internal/hubservice/hubservice.query.go
package hubservice

import (
	"context"

	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/models"
	"github.com/uwnav/hub/internal/repository"
)

// Result-count bounds for the read-back queries. A missing or non-positive
// limit falls back to the default; anything above the cap is clamped to
// bound response size.
const (
	DefaultQueryLimit = 10
	MaxQueryLimit     = 1000
)

func clampLimit(limit int64) int64 {
	if limit <= 0 {
		return DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

// ListDHTReadings returns recent DHT samples, most recent first, optionally
// filtered by sensor id. No matches is an empty slice, not an error.
func (s *HubService) ListDHTReadings(ctx context.Context, q models.ListQuery) ([]models.DHTReading, error) {
	filter := repository.ListFilter{SensorID: q.SensorID, Limit: clampLimit(q.Limit)}
	readings, err := s.Readings.ListDHT(ctx, filter)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query DHT sensor data", err)
	}
	return readings, nil
}

// ListNavigationReadings returns recent pose snapshots, optionally filtered
// by device id.
func (s *HubService) ListNavigationReadings(ctx context.Context, q models.ListQuery) ([]models.NavigationReading, error) {
	filter := repository.ListFilter{DeviceID: q.DeviceID, Limit: clampLimit(q.Limit)}
	readings, err := s.Readings.ListNavigation(ctx, filter)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query navigation data", err)
	}
	return readings, nil
}

// ListMappingReadings returns recent scan sweeps, optionally filtered by
// sensor id.
func (s *HubService) ListMappingReadings(ctx context.Context, q models.ListQuery) ([]models.MappingReading, error) {
	filter := repository.ListFilter{SensorID: q.SensorID, Limit: clampLimit(q.Limit)}
	readings, err := s.Readings.ListMapping(ctx, filter)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to query mapping data", err)
	}
	return readings, nil
}

// CollectionStats reports the current document count per collection
func (s *HubService) CollectionStats(ctx context.Context) (map[string]int64, error) {
	counts, err := s.Readings.CollectionCounts(ctx)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to collect database statistics", err)
	}
	return counts, nil
}

// HealthCheck verifies the store connection
func (s *HubService) HealthCheck(ctx context.Context) error {
	if err := s.Readings.Ping(ctx); err != nil {
		return errors.NewUnavailableError("database not available", err)
	}
	return nil
}
