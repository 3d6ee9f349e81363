package ingest

import (
	"fmt"
	"runtime"

	"github.com/gnames/chemdb/pkg/errcode"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/gnames/gn"
)

// ChunkSizeError is returned when an Ingestor is created with a
// non-positive chunk size.
func ChunkSizeError(size int) error {
	msg := "Chunk size must be a positive number, got <em>%d</em>"
	vars := []any{size}
	return &gn.Error{
		Code: errcode.IngestChunkSizeError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("invalid chunk size %d", size),
	}
}

// SourceReadError is returned when the structures source cannot be read
// any further (I/O failure, not a malformed line).
func SourceReadError(line int, err error) error {
	msg := "Cannot read structures source after line <em>%d</em>"
	vars := []any{line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.IngestSourceReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read source: %w", fn.Name(), err),
	}
}

// CodecError is returned when the structure codec fails for a reason
// other than an unparsable notation, for example when the toolkit
// cannot be started.
func CodecError(rec substance.RawRecord, err error) error {
	msg := `Structure toolkit failed on <em>%s</em>

<em>How to fix:</em>
  1. Check that Open Babel is installed: <em>obabel -V</em>
  2. Check <em>codec.obabel_path</em> in config.yaml`
	vars := []any{rec.Key}
	return &gn.Error{
		Code: errcode.CodecFailureError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("codec failure on %s (line %d): %w",
			rec.Key, rec.Line, err),
	}
}

// AppendError is returned when a batch cannot be written to the base
// store. Ingestion stops, the store is left partially populated.
func AppendError(batch, size int, err error) error {
	msg := `Cannot save batch <em>%d</em> (%d records)

The store is partially populated.
Run <em>chemdb create --force</em> before trying again.`
	vars := []any{batch, size}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.PopulateAppendError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: append of batch %d failed: %w",
			fn.Name(), batch, err),
	}
}

// CancelledError is returned when ingestion is interrupted. Counts are
// those of appended batches.
func CancelledError(rep substance.IngestReport, err error) error {
	msg := `Import was interrupted after <em>%d</em> records

The store is partially populated.
Run <em>chemdb create --force</em> before trying again.`
	vars := []any{rep.Attempted}
	return &gn.Error{
		Code: errcode.PopulateCancelledError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("ingestion cancelled: %w", err),
	}
}
