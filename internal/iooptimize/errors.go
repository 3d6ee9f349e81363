package iooptimize

import (
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/gnames/gn"
)

// NotConnectedError is returned when optimize runs without a database
// connection.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  "Optimize operation attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// StageError is returned when the structural column is not finalized.
func StageError(st stage.Stage) error {
	msg := `Structures are not finalized

<em>Current stage:</em> %s

<em>How to fix:</em>
  1. Recreate the schema: <em>chemdb create --force</em>
  2. Populate the database: <em>chemdb populate</em>`

	return &gn.Error{
		Code: errcode.OptimizerStageError,
		Msg:  msg,
		Vars: []any{st.String()},
		Err:  fmt.Errorf("stage %s instead of %s", st, stage.Finalized),
	}
}

// ViewError is returned when the compounds view cannot be built.
func ViewError(view string, err error) error {
	return &gn.Error{
		Code: errcode.OptimizerViewCreationError,
		Msg:  "Cannot build materialized view <em>%s</em>",
		Vars: []any{view},
		Err:  fmt.Errorf("view %s: %w", view, err),
	}
}

// IndexError is returned when an index of the compounds view cannot be
// created.
func IndexError(index, method string, err error) error {
	msg := `Cannot create index <em>%s</em>

<em>Method:</em> %s

<em>How to fix:</em>
  Check <em>structure.index_method</em> in <em>~/.config/chemdb/config.yaml</em>,
  it has to support the type of the structure column`

	return &gn.Error{
		Code: errcode.OptimizerIndexError,
		Msg:  msg,
		Vars: []any{index, method},
		Err:  fmt.Errorf("index %s: %w", index, err),
	}
}

// VacuumError is returned when VACUUM ANALYZE fails.
func VacuumError(err error) error {
	return &gn.Error{
		Code: errcode.OptimizerVacuumError,
		Msg:  "Cannot update statistics of the database",
		Err:  fmt.Errorf("vacuum analyze: %w", err),
	}
}
