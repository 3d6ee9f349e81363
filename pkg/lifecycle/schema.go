// Package lifecycle defines the three phases of a chemdb store:
// schema creation, population and optimization.
package lifecycle

import (
	"context"

	"github.com/gnames/chemdb/pkg/config"
)

// SchemaManager creates the database schema.
type SchemaManager interface {
	// Create creates tables with GORM AutoMigrate and adds foreign keys
	// from mapping tables to substances. It expects an empty database,
	// callers drop existing tables beforehand.
	Create(ctx context.Context, cfg *config.Config) error
}
