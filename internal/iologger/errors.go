package iologger

import (
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// CreateLogFileError is returned when the log file cannot be opened.
func CreateLogFileError(path string, err error) error {
	msg := `Cannot open log file <em>%s</em>

<em>How to fix:</em>
  Set <em>log.destination</em> to <em>stderr</em>, or check permissions`

	return &gn.Error{
		Code: errcode.CreateLogFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("open log file %s: %w", path, err),
	}
}
