package iodb

import (
	"context"
	"fmt"

	"github.com/gnames/chemdb/pkg/db"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/chemdb/pkg/stage"
)

// DetectStage finds the materialization stage of the substances table
// from the live schema:
//
//   - no structural column, no rows: Raw
//   - no structural column, payloads: Serialized
//   - structural column and payloads: Native
//   - mandatory structural column, no payloads: Finalized
//
// Any other combination, including a missing table, is Unknown.
func DetectStage(ctx context.Context, op db.Operator) (stage.Stage, error) {
	exists, err := op.TableExists(ctx, schema.SubstancesTable)
	if err != nil || !exists {
		return stage.Unknown, err
	}

	payload, err := op.ColumnInfo(ctx, schema.SubstancesTable, schema.PayloadColumn)
	if err != nil {
		return stage.Unknown, err
	}
	structure, err := op.ColumnInfo(ctx, schema.SubstancesTable, schema.StructureColumn)
	if err != nil {
		return stage.Unknown, err
	}

	switch {
	case payload.Exists && !structure.Exists:
		var hasRows bool
		q := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s)", schema.SubstancesTable)
		if err = op.Pool().QueryRow(ctx, q).Scan(&hasRows); err != nil {
			return stage.Unknown, TableCheckError(err)
		}
		if hasRows {
			return stage.Serialized, nil
		}
		return stage.Raw, nil
	case payload.Exists && structure.Exists:
		return stage.Native, nil
	case !payload.Exists && structure.Exists && structure.NotNull:
		return stage.Finalized, nil
	}
	return stage.Unknown, nil
}
