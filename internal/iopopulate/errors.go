package iopopulate

import (
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when populate runs without a database
// connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Populate operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// SourceMissingError is returned when a required source is not
// configured or its file does not exist.
func SourceMissingError(name, path string, err error) error {
	msg := `Source <em>%s</em> is not available

<em>Path:</em> %s

<em>How to fix:</em>
  1. Provide the file with the <em>--%s</em> flag
  2. Or set <em>sources.%s</em> in <em>~/.config/chemdb/config.yaml</em>`

	vars := []any{name, path, name, name}
	return &gn.Error{
		Code: errcode.PopulateSourceMissingError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("source %s at '%s': %w", name, path, err),
	}
}

// SourceOpenError is returned when a source file cannot be opened or
// read.
func SourceOpenError(path string, err error) error {
	msg := "Cannot read source file <em>%s</em>"
	return &gn.Error{
		Code: errcode.PopulateSourceOpenError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("read source '%s': %w", path, err),
	}
}

// SourceLayoutError is returned when a mapping source does not have the
// expected columns.
func SourceLayoutError(path, reason string) error {
	msg := `Unexpected layout of source file <em>%s</em>

<em>Reason:</em> %s`

	return &gn.Error{
		Code: errcode.PopulateSourceLayoutError,
		Msg:  msg,
		Vars: []any{path, reason},
		Err:  fmt.Errorf("layout of '%s': %s", path, reason),
	}
}

// DestinationNotEmptyError is returned when the store already has
// substances or a load run.
func DestinationNotEmptyError(substances, runs int) error {
	msg := `Database is already populated

<em>Substances:</em> %d
<em>Load runs:</em> %d

<em>How to fix:</em>
  Recreate the schema with <em>chemdb create --force</em>
  and run <em>chemdb populate</em> again`

	return &gn.Error{
		Code: errcode.PopulateDestinationNotEmptyError,
		Msg:  msg,
		Vars: []any{substances, runs},
		Err: fmt.Errorf("destination not empty: %d substances, %d runs",
			substances, runs),
	}
}

// SchemaMissingError is returned when populate runs before create.
func SchemaMissingError(table string) error {
	msg := `Table <em>%s</em> does not exist

<em>How to fix:</em>
  Create the schema with <em>chemdb create</em>`

	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("table %s does not exist", table),
	}
}

// DestinationCheckError is returned when the emptiness check fails.
func DestinationCheckError(err error) error {
	return &gn.Error{
		Code: errcode.DBTableCheckError,
		Msg:  "Cannot check if the database is empty",
		Err:  fmt.Errorf("check destination: %w", err),
	}
}

// RunLogError is returned when the load run row cannot be written.
func RunLogError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateRunLogError,
		Msg:  "Cannot record the load run",
		Err:  fmt.Errorf("load run: %w", err),
	}
}

// StageError is returned on an out-of-order stage transition.
func StageError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateStageError,
		Msg:  "Invalid materialization stage transition",
		Err:  fmt.Errorf("stage: %w", err),
	}
}

// ConversionError is returned when payloads cannot be converted into
// the native structural column.
func ConversionError(conversion string, err error) error {
	msg := `Cannot convert structures to the native column

<em>Conversion:</em> %s

<em>How to fix:</em>
  1. Make sure the database extension for <em>structure.column_type</em> is installed
  2. Check <em>structure.conversion</em> in <em>~/.config/chemdb/config.yaml</em>`

	return &gn.Error{
		Code: errcode.PopulateConversionError,
		Msg:  msg,
		Vars: []any{conversion},
		Err:  fmt.Errorf("conversion '%s': %w", conversion, err),
	}
}

// ConsistencyError is returned when some created substances did not
// receive a native structure.
func ConsistencyError(created, converted int, err error) error {
	msg := `Not every substance received a structure

<em>Created:</em> %d
<em>Converted:</em> %d`

	return &gn.Error{
		Code: errcode.PopulateConsistencyError,
		Msg:  msg,
		Vars: []any{created, converted},
		Err:  err,
	}
}

// FinalizeError is returned when the structural column cannot be
// finalized.
func FinalizeError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateFinalizeError,
		Msg:  "Cannot finalize the structural column",
		Err:  fmt.Errorf("finalize: %w", err),
	}
}

// IdentitySetError is returned when substance keys cannot be read.
func IdentitySetError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateIdentitySetError,
		Msg:  "Cannot read keys of stored substances",
		Err:  fmt.Errorf("identity set: %w", err),
	}
}

// MappingError is returned when mapping rows cannot be saved.
func MappingError(table string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateMappingError,
		Msg:  "Cannot save mapping rows to <em>%s</em>",
		Vars: []any{table},
		Err:  fmt.Errorf("copy to %s: %w", table, err),
	}
}
