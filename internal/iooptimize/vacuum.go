package iooptimize

import (
	"context"
	"log/slog"
	"time"
)

// vacuumAnalyze runs VACUUM ANALYZE on the entire database to reclaim
// space and update query planner statistics.
//
// VACUUM cannot run inside a transaction block.
func (o *optimizer) vacuumAnalyze(ctx context.Context) error {
	slog.Info("Running VACUUM ANALYZE on database...")
	timeStart := time.Now()

	if _, err := o.operator.Pool().Exec(ctx, "VACUUM ANALYZE"); err != nil {
		return VacuumError(err)
	}

	slog.Info("VACUUM ANALYZE completed",
		"duration", time.Since(timeStart).String())
	return nil
}
