// FilePath: api/resources/api.resource.batch.go
package resources

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/hubservice"
	"github.com/uwnav/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// BatchHandlers encapsulates the batch ingestion HTTP handler
type BatchHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Ingest a heterogeneous batch of sensor records
// @Description Dispatch each record by its sensor_type discriminator; one bad item never aborts the batch
// @Tags ingest
// @Accept json
// @Produce json
// @Param batch body []object true "Array of sensor records, each tagged with sensor_type"
// @Success 200 {object} models.BatchResponse
// @Failure 400 {object} errors.APIError
// @Router /batch-data [post]
func (h *BatchHandlers) ReceiveBatch(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var items []json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&items); err != nil {
		respondWithError(w, errors.NewValidationError("request body must be a JSON array of sensor records", err).WithRequestID(requestID))
		return
	}

	results := h.hubservice.IngestBatch(r.Context(), items)

	failed := 0
	for _, res := range results {
		if res.Status == models.BatchItemError {
			failed++
		}
	}

	respondWithJSON(w, http.StatusOK, models.BatchResponse{
		Status:    "success",
		Message:   fmt.Sprintf("Batch data processed (%d items, %d failed)", len(results), failed),
		Processed: len(results) - failed,
		Failed:    failed,
		Results:   results,
	})
}
