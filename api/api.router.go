// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/uwnav/hub/api/resources"
	"github.com/uwnav/hub/internal/hubservice"
)

type Router struct {
	router    *mux.Router
	resources *resources.Resources
}

// NewRouter wires the resource handlers to the HTTP routes. databaseName is
// reported by the stats endpoint.
func NewRouter(svc *hubservice.HubService, databaseName string) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		resources: resources.NewResources(svc, databaseName),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	r.router.NotFoundHandler = http.HandlerFunc(r.resources.System.NotFound)

	// System
	r.router.HandleFunc("/", r.resources.System.Root).Methods(http.MethodGet)
	r.router.HandleFunc("/health", r.resources.System.Health).Methods(http.MethodGet)

	// Ingestion
	r.router.HandleFunc("/dht-sensor", r.resources.Ingest.ReceiveDHTReading).Methods(http.MethodPost)
	r.router.HandleFunc("/navigation", r.resources.Ingest.ReceiveNavigationReading).Methods(http.MethodPost)
	r.router.HandleFunc("/mapping", r.resources.Ingest.ReceiveMappingReading).Methods(http.MethodPost)
	r.router.HandleFunc("/general-sensor", r.resources.Ingest.ReceiveGeneralReading).Methods(http.MethodPost)
	r.router.HandleFunc("/batch-data", r.resources.Batch.ReceiveBatch).Methods(http.MethodPost)

	// Read-back
	data := r.router.PathPrefix("/data").Subrouter()
	data.HandleFunc("/dht-sensor", r.resources.Query.ListDHTReadings).Methods(http.MethodGet)
	data.HandleFunc("/navigation", r.resources.Query.ListNavigationReadings).Methods(http.MethodGet)
	data.HandleFunc("/mapping", r.resources.Query.ListMappingReadings).Methods(http.MethodGet)
	data.HandleFunc("/stats", r.resources.Query.GetStats).Methods(http.MethodGet)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
