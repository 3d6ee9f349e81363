// Package iooptimize implements Optimizer interface. This is an impure
// I/O package that builds the compounds materialized view, its indices
// and statistics.
package iooptimize

import (
	"context"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/db"
	"github.com/gnames/chemdb/pkg/lifecycle"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// optimizer implements the Optimizer interface.
type optimizer struct {
	operator db.Operator
	quiet    bool
}

// Option configures the optimizer.
type Option func(*optimizer)

// OptQuiet disables the progress bar.
func OptQuiet(b bool) Option {
	return func(o *optimizer) {
		o.quiet = b
	}
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer(op db.Operator, opts ...Option) lifecycle.Optimizer {
	res := &optimizer{operator: op}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Optimize executes 3 sequential steps:
//  1. Rebuild the compounds materialized view
//  2. Create the structural index and lookup indices of the view
//  3. Run VACUUM ANALYZE to update statistics
//
// It refuses to run unless the structural column is finalized.
func (o *optimizer) Optimize(
	ctx context.Context,
	cfg *config.Config,
) error {
	if o.operator.Pool() == nil {
		return NotConnectedError()
	}

	st, err := iodb.DetectStage(ctx, o.operator)
	if err != nil {
		return err
	}
	if st != stage.Finalized {
		return StageError(st)
	}

	startTime := time.Now()
	slog.Info("Starting database optimization")
	gn.Info("Optimization in progress, <em>it might take a while</em>...")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"view", func() error {
			_, err := o.buildView(ctx, cfg.WithCollapsedCatalog())
			return err
		}},
		{"index", func() error {
			return o.buildIndex(ctx, cfg.Structure.IndexMethod)
		}},
		{"vacuum", func() error {
			return o.vacuumAnalyze(ctx)
		}},
	}

	var bar *pb.ProgressBar
	if !o.quiet {
		bar = newProgressBar(len(steps), "Optimizing: ")
		defer bar.Finish()
	}
	for i, v := range steps {
		slog.Info("Optimization step", "step", i+1, "name", v.name)
		if err = v.fn(); err != nil {
			return err
		}
		if bar != nil {
			bar.Increment()
		}
	}

	slog.Info("Database optimization completed successfully")
	gn.Info("Optimization complete in %s",
		gnfmt.TimeString(time.Since(startTime).Seconds()))
	return nil
}
