package iodb_test

import (
	"context"
	"testing"

	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/internal/iotesting"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectStage(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, iotesting.GetTestDatabaseConfig()))
	defer op.Close()
	require.NoError(t, op.DropAllTables(ctx))

	exec := func(q string) {
		_, err := op.Pool().Exec(ctx, q)
		require.NoError(t, err, q)
	}
	check := func(exp stage.Stage) {
		s, err := iodb.DetectStage(ctx, op)
		require.NoError(t, err)
		assert.Equal(t, exp, s)
	}

	check(stage.Unknown)

	exec(`CREATE TABLE substances (
		substance_key TEXT PRIMARY KEY, raw_notation TEXT, payload BYTEA)`)
	check(stage.Raw)

	exec(`INSERT INTO substances VALUES ('DTXSID001', 'InChI=1S/CH2O', 'x')`)
	check(stage.Serialized)

	exec(`ALTER TABLE substances ADD COLUMN structure BYTEA`)
	exec(`UPDATE substances SET structure = payload`)
	check(stage.Native)

	exec(`ALTER TABLE substances DROP COLUMN payload`)
	check(stage.Unknown)

	exec(`ALTER TABLE substances ALTER COLUMN structure SET NOT NULL`)
	check(stage.Finalized)

	require.NoError(t, op.DropAllTables(ctx))
}
