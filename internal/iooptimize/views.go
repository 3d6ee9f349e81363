package iooptimize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/gn"
)

// viewStats compares the view with the substances table.
type viewStats struct {
	rows, substances int64
}

// FanOut is the number of extra rows created by substances with several
// mappings of the same kind.
func (v viewStats) FanOut() int64 {
	return v.rows - v.substances
}

// buildView drops and recreates the compounds view from the current
// tables. There is no incremental path, the view reflects tables as they
// are at the time of the build.
func (o *optimizer) buildView(
	ctx context.Context,
	collapse bool,
) (viewStats, error) {
	var res viewStats
	pool := o.operator.Pool()

	slog.Info("Building compounds view", "collapse_catalog", collapse)
	if err := o.operator.DropMaterializedViews(ctx); err != nil {
		return res, err
	}
	if _, err := pool.Exec(ctx, viewSQL(collapse)); err != nil {
		return res, ViewError(schema.CompoundsView, err)
	}

	q := fmt.Sprintf(
		"SELECT (SELECT count(*) FROM %s), (SELECT count(*) FROM %s)",
		schema.CompoundsView, schema.SubstancesTable,
	)
	err := pool.QueryRow(ctx, q).Scan(&res.rows, &res.substances)
	if err != nil {
		return res, ViewError(schema.CompoundsView, err)
	}

	slog.Info("Compounds view created",
		"rows", res.rows,
		"substances", res.substances,
		"fan_out", res.FanOut(),
	)
	if res.FanOut() > 0 {
		gn.Warn(
			"<warn>%s substances rows are multiplied by several mappings</warn>",
			humanize.Comma(res.FanOut()),
		)
	}
	gn.Message(
		"<em>Created compounds view with %s records</em>",
		humanize.Comma(res.rows),
	)
	return res, nil
}

// viewSQL returns the definition of the compounds view. With collapse
// only the lowest catalog id of every substance is joined.
func viewSQL(collapse bool) string {
	catalog := schema.CatalogTable
	if collapse {
		catalog = fmt.Sprintf(`(
    SELECT DISTINCT ON (substance_key) substance_key, catalog_id
      FROM %s
      ORDER BY substance_key, catalog_id
  )`, schema.CatalogTable)
	}

	return fmt.Sprintf(`CREATE MATERIALIZED VIEW %s AS
SELECT s.substance_key, c.catalog_id, r.registry_number, r.display_name,
  s.canonical_key, s.raw_notation, s.%s
  FROM %s s
    LEFT JOIN %s c ON c.substance_key = s.substance_key
    LEFT JOIN %s r ON r.substance_key = s.substance_key`,
		schema.CompoundsView, schema.StructureColumn,
		schema.SubstancesTable, catalog, schema.RegistryTable,
	)
}
