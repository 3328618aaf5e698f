package collector

import (
	"context"

	"github.com/clusterlens/clusterlens/pkg/inventory"
)

// Collector gathers cluster resources into a normalized inventory.
// Implementations never fail outright: every error is caught at the boundary
// of the phase that produced it and reported alongside the partial inventory,
// so the caller decides whether partial results are acceptable.
type Collector interface {
	Collect(ctx context.Context) (*inventory.Inventory, []inventory.PhaseError)
}

// InfoCollector gathers flat key-value facts about the cluster itself, such
// as the API server version, for report metadata.
type InfoCollector interface {
	Collect(ctx context.Context) (map[string]string, error)
}
