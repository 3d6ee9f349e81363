package ioschema

import (
	"errors"
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when Create runs before Connect.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Cannot create chemdb schema, database is not connected",
		Err:  errors.New("schema: operator is not connected"),
	}
}

// GORMConnectionError wraps failures to open GORM on top of the pool.
func GORMConnectionError(err error) error {
	msg := `Cannot open the chemdb schema session

<em>How to fix:</em>
  Check the <em>database</em> section of config.yaml and that the
  server accepts connections from this host`

	return &gn.Error{
		Code: errcode.SchemaGORMConnectionError,
		Msg:  msg,
		Err:  fmt.Errorf("gorm open: %w", err),
	}
}

// CreateSchemaError wraps AutoMigrate failures for the substances,
// mapping and load_runs tables.
func CreateSchemaError(err error) error {
	msg := `Cannot create substances, mapping or load_runs tables

<em>How to fix:</em>
  The database user needs CREATE on schema <em>public</em>.
  If tables were left by a failed attempt, rerun with <em>--force</em>`

	return &gn.Error{
		Code: errcode.SchemaCreateError,
		Msg:  msg,
		Err:  fmt.Errorf("auto-migrate: %w", err),
	}
}

// ConstraintError is returned when a mapping table foreign key to
// substances cannot be added.
func ConstraintError(ddl string, err error) error {
	msg := `Cannot add foreign key constraint

<em>Statement:</em>
%s`

	return &gn.Error{
		Code: errcode.SchemaConstraintError,
		Msg:  msg,
		Vars: []any{ddl},
		Err:  fmt.Errorf("failed to add constraint: %w", err),
	}
}

// ExtensionError is returned when the chemistry cartridge is missing.
func ExtensionError(ext string, err error) error {
	msg := `Cannot enable PostgreSQL extension <em>%s</em>

<em>How to fix:</em>
  1. Install the RDKit cartridge for your PostgreSQL version
  2. Or use plain PostgreSQL types in config.yaml:
     structure.column_type: bytea
     structure.conversion: payload
     structure.index_method: btree`

	return &gn.Error{
		Code: errcode.SchemaExtensionError,
		Msg:  msg,
		Vars: []any{ext},
		Err:  fmt.Errorf("failed to create extension %s: %w", ext, err),
	}
}
