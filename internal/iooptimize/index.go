package iooptimize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gnames/chemdb/pkg/schema"
)

// StructureIndex is the name of the structural index of the compounds
// view.
const StructureIndex = "compounds_structure_idx"

type viewIndex struct {
	name, method, column string
}

func viewIndices(method string) []viewIndex {
	return []viewIndex{
		{StructureIndex, method, schema.StructureColumn},
		{"compounds_substance_key_idx", "btree", "substance_key"},
		{"compounds_catalog_id_idx", "btree", "catalog_id"},
		{"compounds_registry_number_idx", "btree", "registry_number"},
	}
}

func (v viewIndex) sql() string {
	return fmt.Sprintf("CREATE INDEX %s ON %s USING %s (%s)",
		v.name, schema.CompoundsView, v.method, v.column)
}

// buildIndex creates the structural index with the configured access
// method and lookup indices of the view.
func (o *optimizer) buildIndex(ctx context.Context, method string) error {
	pool := o.operator.Pool()
	for _, v := range viewIndices(method) {
		slog.Info("Creating index", "index", v.name, "method", v.method)
		if _, err := pool.Exec(ctx, v.sql()); err != nil {
			return IndexError(v.name, v.method, err)
		}
	}
	return nil
}
