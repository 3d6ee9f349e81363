package iojournal

import (
	"fmt"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/gn"
)

// OpenError is returned when the journal file cannot be created.
func OpenError(path string, err error) error {
	return &gn.Error{
		Code: errcode.PopulateJournalError,
		Msg:  "Cannot create reject journal <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot open journal %s: %w", path, err),
	}
}

// WriteError is returned when a rejected record cannot be saved.
func WriteError(err error) error {
	return &gn.Error{
		Code: errcode.PopulateJournalError,
		Msg:  "Cannot save a rejected record to the journal",
		Err:  fmt.Errorf("cannot write journal: %w", err),
	}
}
