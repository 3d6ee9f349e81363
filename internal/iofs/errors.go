package iofs

import (
	"fmt"
	"runtime"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// caller returns the name of the function that created an error.
func caller() string {
	pc, _, _, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name()
}

// CreateDirError is returned when one of chemdb directories cannot be
// created.
func CreateDirError(dir string, err error) error {
	msg := `Cannot create directory <em>%s</em>

<em>How to fix:</em>
  Check permissions of the parent directory`

	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: []any{dir},
		Err:  fmt.Errorf("from %s: create dir %s: %w", caller(), dir, err),
	}
}

// CopyFileError is returned when the default config.yaml cannot be
// written.
func CopyFileError(file string, err error) error {
	return &gn.Error{
		Code: errcode.CopyFileError,
		Msg:  "Cannot write default config to <em>%s</em>",
		Vars: []any{file},
		Err:  fmt.Errorf("from %s: write %s: %w", caller(), file, err),
	}
}

// ReadFileError is returned when a config file exists but cannot be
// read or parsed.
func ReadFileError(path string, err error) error {
	msg := `Cannot read <em>%s</em>

<em>How to fix:</em>
  Fix YAML syntax, or remove the file to get the default one`

	return &gn.Error{
		Code: errcode.ReadFileError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("from %s: read %s: %w", caller(), path, err),
	}
}
