// Package health aggregates component health for the readiness endpoint.
package health

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Unhealthy indicates the service cannot answer searches.
	Unhealthy Status = "error"
)

// Report aggregates health check results. Detail carries the failure cause
// when the status is not Healthy.
type Report struct {
	Status Status
	Detail string
}

// Service coordinates health checks.
type Service struct {
	catalog CatalogChecker
}

// New creates a Service.
func New(catalog CatalogChecker) *Service {
	return &Service{catalog: catalog}
}

// Check reports the current health. A failed catalog load makes the service
// permanently unhealthy for this process lifetime.
func (s *Service) Check() Report {
	if err := s.catalog.Ready(); err != nil {
		return Report{Status: Unhealthy, Detail: err.Error()}
	}
	return Report{Status: Healthy}
}
