// FilePath: api/resources/api.resource.query.go
package resources

import (
	"net/http"

	"github.com/gorilla/schema"
	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/hubservice"
	"github.com/uwnav/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// QueryHandlers encapsulates the read-back HTTP handlers
type QueryHandlers struct {
	hubservice   *hubservice.HubService
	databaseName string
}

// queryDecoder decodes /data query strings into models.ListQuery. The
// decoder caches struct metadata and is safe for concurrent use.
var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

func parseListQuery(r *http.Request) (models.ListQuery, error) {
	var q models.ListQuery
	err := queryDecoder.Decode(&q, r.URL.Query())
	return q, err
}

// @Summary List recent DHT sensor readings
// @Description Most recent first, optionally filtered by sensor_id
// @Tags query
// @Produce json
// @Param limit query int false "Maximum results (default 10, capped at 1000)"
// @Param sensor_id query string false "Filter by sensor id"
// @Success 200 {object} models.QueryResponse
// @Failure 500 {object} errors.APIError
// @Router /data/dht-sensor [get]
func (h *QueryHandlers) ListDHTReadings(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	q, err := parseListQuery(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	readings, err := h.hubservice.ListDHTReadings(r.Context(), q)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.QueryResponse{
		Status: "success",
		Count:  len(readings),
		Data:   readings,
	})
}

// @Summary List recent navigation readings
// @Description Most recent first, optionally filtered by device_id
// @Tags query
// @Produce json
// @Param limit query int false "Maximum results (default 10, capped at 1000)"
// @Param device_id query string false "Filter by device id"
// @Success 200 {object} models.QueryResponse
// @Failure 500 {object} errors.APIError
// @Router /data/navigation [get]
func (h *QueryHandlers) ListNavigationReadings(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	q, err := parseListQuery(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	readings, err := h.hubservice.ListNavigationReadings(r.Context(), q)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.QueryResponse{
		Status: "success",
		Count:  len(readings),
		Data:   readings,
	})
}

// @Summary List recent mapping readings
// @Description Most recent first, optionally filtered by sensor_id
// @Tags query
// @Produce json
// @Param limit query int false "Maximum results (default 10, capped at 1000)"
// @Param sensor_id query string false "Filter by sensor id"
// @Success 200 {object} models.QueryResponse
// @Failure 500 {object} errors.APIError
// @Router /data/mapping [get]
func (h *QueryHandlers) ListMappingReadings(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	q, err := parseListQuery(r)
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid query parameters", err).WithRequestID(requestID))
		return
	}

	readings, err := h.hubservice.ListMappingReadings(r.Context(), q)
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.QueryResponse{
		Status: "success",
		Count:  len(readings),
		Data:   readings,
	})
}

// @Summary Per-collection document counts
// @Tags query
// @Produce json
// @Success 200 {object} models.StatsResponse
// @Failure 500 {object} errors.APIError
// @Router /data/stats [get]
func (h *QueryHandlers) GetStats(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	counts, err := h.hubservice.CollectionStats(r.Context())
	if err != nil {
		respondWithServiceError(w, err, requestID)
		return
	}

	respondWithJSON(w, http.StatusOK, models.StatsResponse{
		Status:      "success",
		Database:    h.databaseName,
		Collections: counts,
	})
}
