package lifecycle

import (
	"context"

	"github.com/gnames/chemdb/pkg/config"
)

// Optimizer prepares a populated store for queries.
//
// Optimization always rebuilds from scratch: the compounds view is
// dropped and recreated from the current tables, then the structural
// index is built over it.
type Optimizer interface {
	Optimize(ctx context.Context, cfg *config.Config) error
}
