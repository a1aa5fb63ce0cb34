package interfaces

import "context"

// ViabilityResult is the facade-level outcome of a coverage check.
type ViabilityResult struct {
	Feasible  bool
	Longitude float64
	Latitude  float64
	// Degraded marks results produced by the fallback policy rather than a
	// real provider answer.
	Degraded bool
}

// IViabilityGateway checks whether the provider can serve a free-text
// address. Implementations own timeout/retry policy and must degrade to a
// feasible fallback rather than block the flow on provider failure.

type IViabilityGateway interface {
	CheckViability(ctx context.Context, address string) (ViabilityResult, error)
}
