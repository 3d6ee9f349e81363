package iopopulate

import (
	"context"

	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// substanceSink appends batches of serialized substances with one
// CopyFrom per batch. A failed copy leaves nothing of the batch.
type substanceSink struct {
	pool *pgxpool.Pool
}

var substanceColumns = []string{
	"substance_key", "raw_notation", "canonical_key", schema.PayloadColumn,
}

// Append implements ingest.Sink.
func (s *substanceSink) Append(
	ctx context.Context,
	recs []substance.Record,
) error {
	_, err := s.pool.CopyFrom(
		ctx,
		pgx.Identifier{schema.SubstancesTable},
		substanceColumns,
		pgx.CopyFromSlice(len(recs), func(i int) ([]any, error) {
			r := recs[i]
			return []any{r.Key, r.RawNotation, r.CanonicalKey, r.Payload}, nil
		}),
	)
	return err
}
