package health

import "context"

// CachePinger checks embedding cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// Checker checks an external dependency: the embedding provider or the
// similarity service.
type Checker interface {
	HealthCheck(ctx context.Context) error
}
