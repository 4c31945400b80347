// FilePath: internal/hubservice/hubservice.ingest.go
package hubservice

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/models"
	"github.com/uwnav/hub/internal/validation"
)

// IngestResult is the outcome of a successful single-record ingestion:
// the store-assigned identifier and the receipt timestamp actually persisted.
type IngestResult struct {
	ID        string
	Timestamp time.Time
}

// stamp fills in the receipt timestamp when the client omitted one. It runs
// after validation passes so validation latency is excluded from the
// recorded time. Client-supplied timestamps are used verbatim.
func stamp(ts models.Timestamp) models.Timestamp {
	if ts.IsZero() {
		return models.Timestamp{Time: time.Now().UTC()}
	}
	return ts
}

// validationError wraps a validation failure, attaching the offending field
// as structured detail when one is known.
func validationError(err error) *errors.APIError {
	apiErr := errors.NewValidationError(err.Error(), err)
	var fieldErr *validation.FieldError
	if stderrors.As(err, &fieldErr) {
		apiErr = apiErr.WithDetails(map[string]string{"field": fieldErr.Field})
	}
	return apiErr
}

// IngestDHT validates and persists one temperature/humidity sample.
// Nothing is written when validation fails.
func (s *HubService) IngestDHT(ctx context.Context, reading *models.DHTReading) (*IngestResult, error) {
	if err := validation.ValidateRecord(reading); err != nil {
		return nil, validationError(err)
	}
	reading.Timestamp = stamp(reading.Timestamp)

	id, err := s.Readings.InsertDHT(ctx, reading)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to store DHT sensor data", err)
	}

	s.recordEvent("ingest.dht", map[string]string{"sensor_id": reading.SensorID})
	return &IngestResult{ID: id, Timestamp: reading.Timestamp.Time}, nil
}

// IngestNavigation validates and persists one pose snapshot.
func (s *HubService) IngestNavigation(ctx context.Context, reading *models.NavigationReading) (*IngestResult, error) {
	if err := validation.ValidateRecord(reading); err != nil {
		return nil, validationError(err)
	}
	reading.Timestamp = stamp(reading.Timestamp)

	id, err := s.Readings.InsertNavigation(ctx, reading)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to store navigation data", err)
	}

	s.recordEvent("ingest.navigation", map[string]string{"device_id": reading.DeviceID})
	return &IngestResult{ID: id, Timestamp: reading.Timestamp.Time}, nil
}

// IngestMapping validates and persists one scan sweep.
func (s *HubService) IngestMapping(ctx context.Context, reading *models.MappingReading) (*IngestResult, error) {
	if err := validation.ValidateRecord(reading); err != nil {
		return nil, validationError(err)
	}
	reading.Timestamp = stamp(reading.Timestamp)

	id, err := s.Readings.InsertMapping(ctx, reading)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to store mapping data", err)
	}

	s.recordEvent("ingest.mapping", map[string]string{"sensor_id": reading.SensorID})
	return &IngestResult{ID: id, Timestamp: reading.Timestamp.Time}, nil
}

// IngestGeneral validates and persists one schema-flexible reading.
func (s *HubService) IngestGeneral(ctx context.Context, reading *models.GeneralReading) (*IngestResult, error) {
	if err := validation.ValidateRecord(reading); err != nil {
		return nil, validationError(err)
	}
	reading.Timestamp = stamp(reading.Timestamp)

	id, err := s.Readings.InsertGeneral(ctx, reading)
	if err != nil {
		return nil, errors.NewDatabaseError("failed to store general sensor data", err)
	}

	s.recordEvent("ingest.general", map[string]string{
		"sensor_id":   reading.SensorID,
		"sensor_type": reading.SensorType,
	})
	return &IngestResult{ID: id, Timestamp: reading.Timestamp.Time}, nil
}
