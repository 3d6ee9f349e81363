package iopopulate

import (
	"context"
	"fmt"

	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/jackc/pgx/v5/pgxpool"
)

// materializeIdentitySet reads keys of all stored substances. It runs
// after the structural column is finalized, so only substances that
// survived conversion are in the set.
func materializeIdentitySet(
	ctx context.Context,
	pool *pgxpool.Pool,
) (substance.IdentitySet, error) {
	q := fmt.Sprintf("SELECT substance_key FROM %s", schema.SubstancesTable)
	rows, err := pool.Query(ctx, q)
	if err != nil {
		return nil, IdentitySetError(err)
	}
	defer rows.Close()

	res := substance.NewIdentitySet()
	var key string
	for rows.Next() {
		if err = rows.Scan(&key); err != nil {
			return nil, IdentitySetError(err)
		}
		res.Add(key)
	}
	if err = rows.Err(); err != nil {
		return nil, IdentitySetError(err)
	}
	return res, nil
}
