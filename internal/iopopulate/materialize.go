package iopopulate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// materializer converts serialized payloads into the database-native
// structural column and finalizes it.
type materializer struct {
	pool    *pgxpool.Pool
	cfg     config.StructureConfig
	machine *stage.Machine
}

func newMaterializer(
	pool *pgxpool.Pool,
	cfg config.StructureConfig,
	m *stage.Machine,
) *materializer {
	return &materializer{pool: pool, cfg: cfg, machine: m}
}

// toNative adds the structural column and fills it from payloads with
// the configured conversion, as one transaction.
func (m *materializer) toNative(ctx context.Context) error {
	if err := m.machine.Advance(stage.Native); err != nil {
		return StageError(err)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return ConversionError(m.cfg.Conversion, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, q := range nativeSQL(m.cfg) {
		if _, err = tx.Exec(ctx, q); err != nil {
			return ConversionError(m.cfg.Conversion, err)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return ConversionError(m.cfg.Conversion, err)
	}

	slog.Info("Structures converted",
		"column_type", m.cfg.ColumnType,
		"conversion", m.cfg.Conversion,
	)
	return nil
}

// finalize checks that every created substance received a structure,
// then drops payloads and makes the structural column mandatory. The
// check and the schema change are one transaction.
func (m *materializer) finalize(ctx context.Context, created int) error {
	if err := m.machine.Advance(stage.Finalized); err != nil {
		return StageError(err)
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return FinalizeError(err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	converted, err := countConverted(ctx, tx)
	if err != nil {
		return FinalizeError(err)
	}
	if err = stage.CheckConsistency(created, converted); err != nil {
		return ConsistencyError(created, converted, err)
	}

	for _, q := range finalizeSQL() {
		if _, err = tx.Exec(ctx, q); err != nil {
			return FinalizeError(err)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return FinalizeError(err)
	}

	slog.Info("Structures finalized", "count", converted)
	return nil
}

func countConverted(ctx context.Context, tx pgx.Tx) (int, error) {
	var res int
	q := fmt.Sprintf(
		"SELECT count(*) FROM %s WHERE %s IS NOT NULL",
		schema.SubstancesTable, schema.StructureColumn,
	)
	err := tx.QueryRow(ctx, q).Scan(&res)
	return res, err
}

func nativeSQL(cfg config.StructureConfig) []string {
	return []string{
		fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s %s",
			schema.SubstancesTable, schema.StructureColumn, cfg.ColumnType),
		fmt.Sprintf("UPDATE %s SET %s = %s",
			schema.SubstancesTable, schema.StructureColumn, cfg.Conversion),
	}
}

func finalizeSQL() []string {
	return []string{
		fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s",
			schema.SubstancesTable, schema.PayloadColumn),
		fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET NOT NULL",
			schema.SubstancesTable, schema.StructureColumn),
	}
}
