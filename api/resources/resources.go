// FilePath: api/resources/resources.go
package resources

import (
	"github.com/uwnav/hub/internal/hubservice"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Ingest *IngestHandlers
	Batch  *BatchHandlers
	Query  *QueryHandlers
	System *SystemHandlers
}

// NewResources creates a new Resources instance. databaseName is reported by
// the stats endpoint.
func NewResources(svc *hubservice.HubService, databaseName string) *Resources {
	return &Resources{
		Ingest: &IngestHandlers{hubservice: svc},
		Batch:  &BatchHandlers{hubservice: svc},
		Query:  &QueryHandlers{hubservice: svc, databaseName: databaseName},
		System: &SystemHandlers{hubservice: svc},
	}
}
