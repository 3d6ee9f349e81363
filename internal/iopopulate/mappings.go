package iopopulate

import (
	"context"

	"github.com/gnames/chemdb/pkg/mapping"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func saveRegistry(
	ctx context.Context,
	pool *pgxpool.Pool,
	rows []mapping.CasrnMapping,
) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{schema.RegistryTable},
		[]string{"substance_key", "registry_number", "display_name"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{r.Key, r.RegistryNumber, r.DisplayName}, nil
		}),
	)
	if err != nil {
		return MappingError(schema.RegistryTable, err)
	}
	return nil
}

func saveCatalog(
	ctx context.Context,
	pool *pgxpool.Pool,
	rows []mapping.CidMapping,
) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := pool.CopyFrom(
		ctx,
		pgx.Identifier{schema.CatalogTable},
		[]string{"substance_key", "catalog_id"},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			return []any{rows[i].Key, rows[i].CatalogID}, nil
		}),
	)
	if err != nil {
		return MappingError(schema.CatalogTable, err)
	}
	return nil
}
