package lifecycle

import (
	"context"

	"github.com/gnames/chemdb/pkg/config"
)

// Populator fills an empty store from the structures dump and the two
// mapping sources.
//
// Population is one-shot. It refuses to run on a store that already has
// substances or a recorded load run, and a failed run leaves the store in
// a state that has to be recreated.
type Populator interface {
	Populate(ctx context.Context, cfg *config.Config) error
}
