// Package ioschema implements SchemaManager interface for
// database schema management. This is an impure I/O package
// that wraps GORM AutoMigrate functionality.
package ioschema

import (
	"context"
	"log/slog"

	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/db"
	"github.com/gnames/chemdb/pkg/lifecycle"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// cartridges maps structural column types to PostgreSQL extensions
// that provide them.
var cartridges = map[string]string{
	"mol":  "rdkit",
	"qmol": "rdkit",
	"bfp":  "rdkit",
	"sfp":  "rdkit",
}

// manager implements the lifecycle.SchemaManager interface
// using GORM AutoMigrate.
type manager struct {
	operator db.Operator
}

// NewManager creates a new SchemaManager.
func NewManager(op db.Operator) lifecycle.SchemaManager {
	return &manager{operator: op}
}

// Create enables the chemistry cartridge if the structural column type
// needs one, creates tables with GORM AutoMigrate and adds foreign keys
// of mapping tables.
func (m *manager) Create(
	ctx context.Context,
	cfg *config.Config,
) error {
	pool := m.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	if ext, ok := extensionFor(cfg.Structure.ColumnType); ok {
		q := "CREATE EXTENSION IF NOT EXISTS " + ext
		if _, err := pool.Exec(ctx, q); err != nil {
			return ExtensionError(ext, err)
		}
		slog.Info("Extension enabled", "extension", ext)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		return GORMConnectionError(err)
	}

	if err := schema.Migrate(gormDB.WithContext(ctx)); err != nil {
		return CreateSchemaError(err)
	}

	for _, ddl := range schema.ConstraintDDL() {
		if _, err := pool.Exec(ctx, ddl); err != nil {
			return ConstraintError(ddl, err)
		}
	}

	slog.Info("Schema created", "tables", len(schema.AllModels()))
	return nil
}

func extensionFor(columnType string) (string, bool) {
	ext, ok := cartridges[columnType]
	return ext, ok
}
