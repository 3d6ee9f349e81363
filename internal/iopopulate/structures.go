package iopopulate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/gnames/chemdb/pkg/ingest"
	"github.com/gnames/chemdb/pkg/substance"
)

// structuresReader streams the DSSTox structures dump: tab-separated
// lines of substance key, InChI and InChIKey without a header.
type structuresReader struct {
	r    *csv.Reader
	line int
}

func newStructuresReader(r io.Reader) *structuresReader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &structuresReader{r: cr}
}

// Read implements ingest.RecordReader. Lines that do not have exactly
// three fields, or have an empty key or notation, return an error
// wrapping ingest.ErrMalformed.
func (s *structuresReader) Read() (substance.RawRecord, error) {
	var res substance.RawRecord
	row, err := s.r.Read()
	if errors.Is(err, io.EOF) {
		return res, io.EOF
	}
	s.line++
	res.Line = s.line

	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return res, fmt.Errorf("line %d: %w: %w", s.line, ingest.ErrMalformed, err)
	}
	if err != nil {
		return res, err
	}

	if len(row) != 3 {
		return res, fmt.Errorf("line %d: %w: %d fields instead of 3",
			s.line, ingest.ErrMalformed, len(row))
	}

	res.Key = strings.TrimSpace(row[0])
	res.RawNotation = strings.TrimSpace(row[1])
	res.CanonicalKey = strings.TrimSpace(row[2])
	if res.Key == "" || res.RawNotation == "" {
		return res, fmt.Errorf("line %d: %w: empty key or notation",
			s.line, ingest.ErrMalformed)
	}
	return res, nil
}
