package iopopulate

import (
	"context"
	"fmt"
	"time"

	"github.com/gnames/chemdb/pkg/mapping"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// runLog keeps the load_runs row of the current populate run.
type runLog struct {
	pool *pgxpool.Pool
	id   string
}

// startRun inserts a new load run. From now on the store counts as
// populated, even if the run fails.
func startRun(ctx context.Context, pool *pgxpool.Pool) (*runLog, error) {
	res := &runLog{pool: pool, id: uuid.NewString()}
	q := fmt.Sprintf(
		`INSERT INTO %s (id, started_at, stage, attempted, created, failed,
		timed_out, registry_accepted, registry_rejected, registry_suspect,
		catalog_accepted, catalog_rejected)
		VALUES ($1, $2, $3, 0, 0, 0, 0, 0, 0, 0, 0, 0)`,
		schema.LoadRunsTable,
	)
	_, err := pool.Exec(ctx, q, res.id, time.Now().UTC(), stage.Raw.String())
	if err != nil {
		return nil, RunLogError(err)
	}
	return res, nil
}

// setIngest records ingestion counts and the reached stage.
func (r *runLog) setIngest(
	ctx context.Context,
	st stage.Stage,
	rep substance.IngestReport,
) error {
	q := fmt.Sprintf(
		`UPDATE %s SET stage = $2, attempted = $3, created = $4, failed = $5,
		timed_out = $6
		WHERE id = $1`,
		schema.LoadRunsTable,
	)
	_, err := r.pool.Exec(ctx, q,
		r.id, st.String(), rep.Attempted, rep.Created, rep.Failed,
		rep.TimedOut)
	if err != nil {
		return RunLogError(err)
	}
	return nil
}

// finish records mapping counts and the finishing time.
func (r *runLog) finish(
	ctx context.Context,
	reg, cat mapping.Result,
) error {
	q := fmt.Sprintf(
		`UPDATE %s SET finished_at = $2,
		registry_accepted = $3, registry_rejected = $4, registry_suspect = $5,
		catalog_accepted = $6, catalog_rejected = $7
		WHERE id = $1`,
		schema.LoadRunsTable,
	)
	_, err := r.pool.Exec(ctx, q, r.id, time.Now().UTC(),
		reg.Accepted, reg.Rejected, reg.Suspect,
		cat.Accepted, cat.Rejected,
	)
	if err != nil {
		return RunLogError(err)
	}
	return nil
}
