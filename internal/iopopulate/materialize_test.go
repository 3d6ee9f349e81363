package iopopulate

import (
	"context"
	"testing"

	"github.com/gnames/chemdb/internal/iodb"
	"github.com/gnames/chemdb/internal/ioschema"
	"github.com/gnames/chemdb/internal/iotesting"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeSQL(t *testing.T) {
	cfg := config.New().Structure
	res := nativeSQL(cfg)
	assert.Equal(t, "ALTER TABLE substances ADD COLUMN structure mol", res[0])
	assert.Equal(t,
		"UPDATE substances SET structure = "+
			"mol_from_ctab(convert_from(payload, 'UTF8')::cstring)",
		res[1])
}

func TestFinalizeSQL(t *testing.T) {
	res := finalizeSQL()
	assert.Equal(t, "ALTER TABLE substances DROP COLUMN payload", res[0])
	assert.Equal(t,
		"ALTER TABLE substances ALTER COLUMN structure SET NOT NULL", res[1])
}

func TestFinalize(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tests := []struct {
		name       string
		conversion string
		code       gn.ErrorCode
		stage      stage.Stage
		payload    bool
	}{
		{"every structure converted", "payload",
			0, stage.Finalized, false},
		{"one structure lost",
			"CASE WHEN substance_key = 'DTXSID003' THEN NULL ELSE payload END",
			errcode.PopulateConsistencyError, stage.Native, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cfg := iotesting.GetTestConfig()
			cfg.Update([]config.Option{config.OptStructureConversion(tt.conversion)})
			require.Equal(t, tt.conversion, cfg.Structure.Conversion)

			op := iodb.NewPgxOperator()
			require.NoError(t, op.Connect(ctx, &cfg.Database))
			defer op.Close()
			require.NoError(t, op.DropMaterializedViews(ctx))
			require.NoError(t, op.DropAllTables(ctx))
			require.NoError(t, ioschema.NewManager(op).Create(ctx, cfg))

			sink := &substanceSink{pool: op.Pool()}
			require.NoError(t, sink.Append(ctx, []substance.Record{
				{Key: "DTXSID001", RawNotation: "InChI=1S/a", Payload: []byte("a")},
				{Key: "DTXSID002", RawNotation: "InChI=1S/b", Payload: []byte("b")},
				{Key: "DTXSID003", RawNotation: "InChI=1S/c", Payload: []byte("c")},
			}))

			machine := stage.NewMachine()
			require.NoError(t, machine.Advance(stage.Serialized))
			mat := newMaterializer(op.Pool(), cfg.Structure, machine)
			require.NoError(t, mat.toNative(ctx))

			err := mat.finalize(ctx, 3)
			if tt.code == 0 {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				var gnErr *gn.Error
				require.ErrorAs(t, err, &gnErr)
				assert.Equal(t, tt.code, gnErr.Code)
				assert.Equal(t, []any{3, 2}, gnErr.Vars)
			}

			col, err := op.ColumnInfo(ctx, schema.SubstancesTable, schema.PayloadColumn)
			require.NoError(t, err)
			assert.Equal(t, tt.payload, col.Exists)

			st, err := iodb.DetectStage(ctx, op)
			require.NoError(t, err)
			assert.Equal(t, tt.stage, st)
		})
	}
}
