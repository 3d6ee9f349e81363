package iooptimize

import (
	"context"
	"testing"

	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/internal/ioschema"
	"github.com/gnames/chemdb/internal/iotesting"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/db"
	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/chemdb/pkg/lifecycle"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptimizer_ImplementsInterface(t *testing.T) {
	var _ lifecycle.Optimizer = NewOptimizer(iodb.NewPgxOperator())
}

func TestOptimize_NotConnected(t *testing.T) {
	err := NewOptimizer(iodb.NewPgxOperator()).
		Optimize(context.Background(), config.New())
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
}

// setupFinalized creates the schema with three finalized substances,
// two catalog ids for the first one and one registry number for the
// first two.
func setupFinalized(t *testing.T, cfg *config.Config) db.Operator {
	t.Helper()
	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	t.Cleanup(func() { _ = op.Close() })

	require.NoError(t, op.DropMaterializedViews(ctx))
	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx, cfg))

	for _, q := range []string{
		`INSERT INTO substances (substance_key, raw_notation, canonical_key, payload)
		VALUES ('DTXSID001', 'InChI=1S/a', 'A', 'a'),
		('DTXSID002', 'InChI=1S/b', 'B', 'b'),
		('DTXSID003', 'InChI=1S/c', 'C', 'c')`,
		`ALTER TABLE substances ADD COLUMN structure bytea`,
		`UPDATE substances SET structure = payload`,
		`ALTER TABLE substances DROP COLUMN payload`,
		`ALTER TABLE substances ALTER COLUMN structure SET NOT NULL`,
		`INSERT INTO catalog_mappings (substance_key, catalog_id)
		VALUES ('DTXSID001', 102), ('DTXSID001', 101), ('DTXSID002', 103)`,
		`INSERT INTO registry_mappings (substance_key, registry_number, display_name)
		VALUES ('DTXSID001', '50-00-0', 'Formaldehyde'),
		('DTXSID002', '7732-18-5', 'Water')`,
	} {
		_, err := op.Pool().Exec(ctx, q)
		require.NoError(t, err)
	}
	return op
}

func viewRows(t *testing.T, op db.Operator) int {
	t.Helper()
	var res int
	err := op.Pool().QueryRow(context.Background(),
		"SELECT count(*) FROM compounds").Scan(&res)
	require.NoError(t, err)
	return res
}

func TestOptimize(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := setupFinalized(t, cfg)

	opt := NewOptimizer(op, OptQuiet(true))
	require.NoError(t, opt.Optimize(ctx, cfg))
	assert.Equal(t, 4, viewRows(t, op), "catalog fan-out is kept")

	var cnt int
	err := op.Pool().QueryRow(ctx,
		`SELECT count(*) FROM compounds
		WHERE registry_number IS NULL AND catalog_id IS NULL`).Scan(&cnt)
	require.NoError(t, err)
	assert.Equal(t, 1, cnt, "substance without mappings is present")

	var exists bool
	err = op.Pool().QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = $1)",
		StructureIndex).Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)

	// rebuild with collapsed catalog keeps the lowest id
	yes := true
	cfg.Update([]config.Option{config.OptViewCollapseCatalog(&yes)})
	require.NoError(t, opt.Optimize(ctx, cfg))
	assert.Equal(t, 3, viewRows(t, op))

	var cid int64
	err = op.Pool().QueryRow(ctx,
		"SELECT catalog_id FROM compounds WHERE substance_key = 'DTXSID001'").
		Scan(&cid)
	require.NoError(t, err)
	assert.Equal(t, int64(101), cid)
}

func TestOptimize_NotFinalized(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()
	require.NoError(t, op.DropMaterializedViews(ctx))
	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, ioschema.NewManager(op).Create(ctx, cfg))

	err := NewOptimizer(op, OptQuiet(true)).Optimize(ctx, cfg)
	require.Error(t, err)
	var gnErr *gn.Error
	require.ErrorAs(t, err, &gnErr)
	assert.Equal(t, errcode.OptimizerStageError, gnErr.Code)
}
