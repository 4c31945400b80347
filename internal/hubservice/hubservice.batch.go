// FilePath: internal/hubservice/hubservice.batch.go
package hubservice

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/models"
	"github.com/uwnav/hub/internal/repository/mongodb"
	nuts "github.com/vaudience/go-nuts"
)

// IngestBatch processes an ordered sequence of heterogeneous records. Each
// item is dispatched by its sensor_type discriminator to the matching
// single-record ingestion; a failure on one item never aborts the rest, and
// the result list keeps the input's length and order. A batch envelope is
// written to the batch collection as an audit record.
func (s *HubService) IngestBatch(ctx context.Context, items []json.RawMessage) []models.BatchItemResult {
	results := make([]models.BatchItemResult, 0, len(items))
	for i, raw := range items {
		results = append(results, s.ingestBatchItem(ctx, i, raw))
	}

	record := &models.BatchRecord{
		BatchTimestamp: time.Now().UTC(),
		BatchSize:      len(items),
		Results:        results,
	}
	// The envelope is an audit trail; its failure must not fail a batch
	// whose items already landed.
	if _, err := s.Readings.InsertBatchRecord(ctx, record); err != nil {
		nuts.L.Warnf("[HubService] Failed to store batch envelope: %v", err)
	}

	s.recordEvent("ingest.batch", map[string]string{
		"size": fmt.Sprintf("%d", len(items)),
	})
	return results
}

// ingestBatchItem dispatches one batch item to its record family. The
// discriminator set is closed; anything outside it is a per-item failure.
func (s *HubService) ingestBatchItem(ctx context.Context, index int, raw json.RawMessage) models.BatchItemResult {
	var head struct {
		SensorType string `json:"sensor_type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return batchFailure(index, "", "item is not a JSON object")
	}

	switch head.SensorType {
	case models.BatchTypeDHT:
		var reading models.DHTReading
		if err := json.Unmarshal(raw, &reading); err != nil {
			return batchFailure(index, head.SensorType, decodeMessage(err))
		}
		return s.batchResult(index, head.SensorType, mongodb.CollectionDHT)(s.IngestDHT(ctx, &reading))

	case models.BatchTypeNavigation:
		var reading models.NavigationReading
		if err := json.Unmarshal(raw, &reading); err != nil {
			return batchFailure(index, head.SensorType, decodeMessage(err))
		}
		return s.batchResult(index, head.SensorType, mongodb.CollectionNavigation)(s.IngestNavigation(ctx, &reading))

	case models.BatchTypeMapping:
		var reading models.MappingReading
		if err := json.Unmarshal(raw, &reading); err != nil {
			return batchFailure(index, head.SensorType, decodeMessage(err))
		}
		return s.batchResult(index, head.SensorType, mongodb.CollectionMapping)(s.IngestMapping(ctx, &reading))

	case models.BatchTypeGeneral:
		var reading models.GeneralReading
		if err := json.Unmarshal(raw, &reading); err != nil {
			return batchFailure(index, head.SensorType, decodeMessage(err))
		}
		return s.batchResult(index, head.SensorType, mongodb.CollectionGeneral)(s.IngestGeneral(ctx, &reading))

	case "":
		return batchFailure(index, "", "missing required field: sensor_type")

	default:
		return batchFailure(index, head.SensorType, fmt.Sprintf("unknown sensor_type %q", head.SensorType))
	}
}

// batchResult converts a single-record ingestion outcome into a per-item
// result.
func (s *HubService) batchResult(index int, sensorType, collection string) func(*IngestResult, error) models.BatchItemResult {
	return func(res *IngestResult, err error) models.BatchItemResult {
		if err != nil {
			return batchFailure(index, sensorType, errorMessage(err))
		}
		return models.BatchItemResult{
			Index:      index,
			SensorType: sensorType,
			Status:     models.BatchItemSuccess,
			ID:         res.ID,
			Collection: collection,
		}
	}
}

func batchFailure(index int, sensorType, message string) models.BatchItemResult {
	return models.BatchItemResult{
		Index:      index,
		SensorType: sensorType,
		Status:     models.BatchItemError,
		Error:      message,
	}
}

// errorMessage extracts the caller-facing message from an APIError so store
// internals never leak into batch results.
func errorMessage(err error) string {
	if apiErr, ok := err.(*errors.APIError); ok {
		return apiErr.Message
	}
	return err.Error()
}

func decodeMessage(err error) string {
	if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
		return fmt.Sprintf("invalid type for field %s", typeErr.Field)
	}
	return "malformed record"
}
