// FilePath: api/resources/api.resource.system.go
package resources

import (
	"fmt"
	"net/http"
	"time"

	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/hubservice"
)

// SystemHandlers encapsulates the service banner and health handlers
type SystemHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Service banner
// @Description Service name, status and available endpoints
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func (h *SystemHandlers) Root(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]any{
		"message": "Underwater Navigation Data Collection API",
		"status":  "active",
		"endpoints": []string{
			"/dht-sensor",
			"/navigation",
			"/mapping",
			"/general-sensor",
			"/batch-data",
			"/data/dht-sensor",
			"/data/navigation",
			"/data/mapping",
			"/data/stats",
			"/health",
		},
	})
}

// @Summary Liveness and readiness of API and store connection
// @Tags system
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} map[string]any
// @Router /health [get]
func (h *SystemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.hubservice.HealthCheck(r.Context()); err != nil {
		respondWithJSON(w, http.StatusServiceUnavailable, map[string]any{
			"status":    "unhealthy",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// NotFound answers requests for routes that do not exist, keeping the error
// body in the same shape as every other failure response.
func (h *SystemHandlers) NotFound(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, errors.NewNotFoundError(fmt.Sprintf("no route for %s %s", r.Method, r.URL.Path), nil))
}
