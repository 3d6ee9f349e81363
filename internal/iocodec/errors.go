package iocodec

import (
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// NotFoundError is returned when the obabel executable is missing.
func NotFoundError(path string, err error) error {
	msg := `Cannot find Open Babel executable <em>%s</em>

<em>How to fix:</em>
  1. Install Open Babel (for example <em>apt install openbabel</em>)
  2. Or set <em>codec.obabel_path</em> in config.yaml`

	return &gn.Error{
		Code: errcode.CodecNotFoundError,
		Msg:  msg,
		Vars: []any{path},
		Err:  fmt.Errorf("obabel not found at %s: %w", path, err),
	}
}
