// Package db defines the contract of the low-level database operator.
package db

import (
	"context"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator defines the interface for basic database management operations.
// It provides connection lifecycle management and exposes the pgxpool.Pool
// for lifecycle components (SchemaManager, Populator, Optimizer) that run
// their own SQL, bulk copies and transactions.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, or nil if not connected.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the public schema.
	TableExists(ctx context.Context, tableName string) (bool, error)

	// HasTables checks if the database has any tables in the public schema.
	HasTables(ctx context.Context) (bool, error)

	// DropAllTables drops all tables in the public schema.
	DropAllTables(ctx context.Context) error

	// DropMaterializedViews drops all materialized views in the public
	// schema.
	DropMaterializedViews(ctx context.Context) error

	// ColumnInfo describes a column of a table in the public schema.
	// A missing column returns Column with Exists set to false.
	ColumnInfo(ctx context.Context, table, column string) (Column, error)
}

// Column describes a table column as seen in information_schema.
type Column struct {
	Exists bool

	// Type is the udt name of the column type (bytea, mol, text).
	Type string

	NotNull bool
}
