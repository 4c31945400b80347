// FilePath: api/resources/api.resource.ingest.go
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

// IngestHandlers encapsulates the single-record ingestion HTTP handlers
type IngestHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Ingest a DHT sensor reading
// @Description Validate and persist one temperature/humidity sample
// @Tags ingest
// @Accept json
// @Produce json
// @Param reading body models.DHTReading true "DHT sensor reading"
// @Success 200 {object} models.IngestResponse
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /dht-sensor [post]
func (h *IngestHandlers) ReceiveDHTReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var reading models.DHTReading
	if err := decodeJSONBody(r, &reading); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), err).WithRequestID(requestID))
		return
	}

	result, err := h.hubservice.IngestDHT(r.Context(), &reading)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.IngestResponse{
		Status:    "success",
		Message:   "DHT sensor data received and saved to database",
		ID:        result.ID,
		Timestamp: result.Timestamp,
	})
}

// @Summary Ingest a navigation reading
// @Description Validate and persist one pose snapshot (position, orientation, velocity)
// @Tags ingest
// @Accept json
// @Produce json
// @Param reading body models.NavigationReading true "Navigation reading"
// @Success 200 {object} models.IngestResponse
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /navigation [post]
func (h *IngestHandlers) ReceiveNavigationReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var reading models.NavigationReading
	if err := decodeJSONBody(r, &reading); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), err).WithRequestID(requestID))
		return
	}

	result, err := h.hubservice.IngestNavigation(r.Context(), &reading)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.IngestResponse{
		Status:    "success",
		Message:   "Navigation data received and saved to database",
		ID:        result.ID,
		Timestamp: result.Timestamp,
	})
}

// @Summary Ingest a mapping reading
// @Description Validate and persist one sonar/LiDAR scan sweep
// @Tags ingest
// @Accept json
// @Produce json
// @Param reading body models.MappingReading true "Mapping reading"
// @Success 200 {object} models.IngestResponse
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /mapping [post]
func (h *IngestHandlers) ReceiveMappingReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var reading models.MappingReading
	if err := decodeJSONBody(r, &reading); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), err).WithRequestID(requestID))
		return
	}

	result, err := h.hubservice.IngestMapping(r.Context(), &reading)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.IngestResponse{
		Status:    "success",
		Message:   "Mapping data received and saved to database",
		ID:        result.ID,
		Timestamp: result.Timestamp,
	})
}

// @Summary Ingest a general sensor reading
// @Description Validate and persist one schema-flexible sensor reading
// @Tags ingest
// @Accept json
// @Produce json
// @Param reading body models.GeneralReading true "General sensor reading"
// @Success 200 {object} models.IngestResponse
// @Failure 400 {object} errors.APIError
// @Failure 500 {object} errors.APIError
// @Router /general-sensor [post]
func (h *IngestHandlers) ReceiveGeneralReading(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var reading models.GeneralReading
	if err := decodeJSONBody(r, &reading); err != nil {
		respondWithError(w, errors.NewValidationError(err.Error(), err).WithRequestID(requestID))
		return
	}

	result, err := h.hubservice.IngestGeneral(r.Context(), &reading)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.IngestResponse{
		Status:    "success",
		Message:   "General sensor data received and saved to database",
		ID:        result.ID,
		Timestamp: result.Timestamp,
	})
}

// Helper functions

// decodeJSONBody decodes the request body into dst, turning type mismatches
// into messages that name the offending field.
func decodeJSONBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if typeErr, ok := err.(*json.UnmarshalTypeError); ok && typeErr.Field != "" {
			return fmt.Errorf("invalid type for field %s", typeErr.Field)
		}
		return fmt.Errorf("invalid request body")
	}
	return nil
}

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

// respondWithServiceError translates a service-layer error into an HTTP
// response, wrapping anything untyped as an internal error.
func respondWithServiceError(w http.ResponseWriter, err error, requestID string) {
	if apiErr, ok := err.(*errors.APIError); ok {
		respondWithError(w, apiErr.WithRequestID(requestID))
		return
	}
	respondWithError(w, errors.NewInternalError("unexpected error", err).WithRequestID(requestID))
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
