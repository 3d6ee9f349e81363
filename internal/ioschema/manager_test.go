package ioschema

import (
	"context"
	"testing"

	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/internal/iotesting"
	"github.com/gnames/chemdb/pkg/lifecycle"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestManager_ImplementsInterface verifies manager
// implements lifecycle.SchemaManager interface.
func TestManager_ImplementsInterface(t *testing.T) {
	op := iodb.NewPgxOperator()
	var _ lifecycle.SchemaManager = NewManager(op)
}

func TestExtensionFor(t *testing.T) {
	ext, ok := extensionFor("mol")
	assert.True(t, ok)
	assert.Equal(t, "rdkit", ext)

	_, ok = extensionFor("bytea")
	assert.False(t, ok)
}

func TestCreate_NotConnected(t *testing.T) {
	mgr := NewManager(iodb.NewPgxOperator())
	err := mgr.Create(context.Background(), iotesting.GetTestConfig())
	assert.Error(t, err)
}

func TestCreate(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	cfg := iotesting.GetTestConfig()
	op := iodb.NewPgxOperator()
	require.NoError(t, op.Connect(ctx, &cfg.Database))
	defer op.Close()

	require.NoError(t, op.DropAllTables(ctx))
	require.NoError(t, NewManager(op).Create(ctx, cfg))

	for _, tbl := range []string{
		schema.SubstancesTable,
		schema.RegistryTable,
		schema.CatalogTable,
		schema.LoadRunsTable,
	} {
		exists, err := op.TableExists(ctx, tbl)
		require.NoError(t, err)
		assert.True(t, exists, tbl)
	}

	col, err := op.ColumnInfo(ctx, schema.SubstancesTable, schema.PayloadColumn)
	require.NoError(t, err)
	assert.Equal(t, "bytea", col.Type)

	// source identifiers are unbounded
	for _, v := range [][2]string{
		{schema.SubstancesTable, "canonical_key"},
		{schema.RegistryTable, "registry_number"},
	} {
		col, err = op.ColumnInfo(ctx, v[0], v[1])
		require.NoError(t, err)
		assert.Equal(t, "text", col.Type, v[1])
	}

	// foreign key rejects a mapping to an unknown substance
	_, err = op.Pool().Exec(ctx,
		`INSERT INTO catalog_mappings (substance_key, catalog_id)
		VALUES ('DTXSID_NONE', 1)`)
	assert.Error(t, err)
}
