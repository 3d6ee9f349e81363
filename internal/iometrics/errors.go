package iometrics

import (
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// WriteError is returned when metrics cannot be saved.
func WriteError(path string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateMetricsError,
		Msg:  "Cannot write metrics to <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot write metrics textfile %s: %w", path, err),
	}
}
