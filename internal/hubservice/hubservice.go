// FilePath: internal/hubservice/hubservice.go
package hubservice

import (
	"github.com/uwnav/hub/internal/errors"
	"github.com/uwnav/hub/internal/monitoring"
	"github.com/uwnav/hub/internal/repository"
)

// HubService contains the reading repository and service-wide dependencies.
// It holds no per-request state; every method is safe for concurrent use.
type HubService struct {
	Readings   repository.ReadingRepository
	monitoring *monitoring.Service
}

// New creates a new HubService instance
func New(readings repository.ReadingRepository, mon *monitoring.Service) *HubService {
	return &HubService{
		Readings:   readings,
		monitoring: mon,
	}
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Readings == nil {
		return ErrMissingRepository("readings")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}

// recordEvent forwards an event to monitoring when it is configured
func (s *HubService) recordEvent(name string, labels map[string]string) {
	if s.monitoring != nil {
		s.monitoring.RecordEvent(name, labels)
	}
}
