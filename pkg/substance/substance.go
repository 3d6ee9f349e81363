// Package substance provides entities of the chemical substances store:
// raw records of the structures dump, serialized substance records,
// ingestion reports and the set of stored substance keys.
package substance

// RawRecord is one record of the structures dump as it was read from the
// source, before any structure conversion.
type RawRecord struct {
	// Key is a stable external substance identifier (DSSTox DTXSID).
	Key string

	// RawNotation is the textual structure representation (InChI).
	RawNotation string

	// CanonicalKey is a hash-like identifier derived from the structure
	// (InChIKey). It is not unique across keys.
	CanonicalKey string

	// Line is the position of the record in the source, starting from 1.
	Line int
}

// Record is a substance that was parsed successfully and received a
// serialized structural payload.
type Record struct {
	Key          string
	RawNotation  string
	CanonicalKey string

	// Payload is an opaque serialized structure created by a codec.
	Payload []byte
}

// IngestReport contains cumulative counts of an ingestion run.
type IngestReport struct {
	// Attempted is the number of records read from the source.
	Attempted int

	// Created is the number of records appended to the base store.
	Created int

	// Failed is the number of records dropped because they could not be
	// converted.
	Failed int

	// TimedOut is the part of Failed dropped on a conversion timeout.
	TimedOut int
}

// Add adds counts of a batch to the report.
func (r *IngestReport) Add(b BatchReport) {
	r.Attempted += b.Attempted
	r.Created += b.Created
	r.Failed += b.Failed
	r.TimedOut += b.TimedOut
}

// Consistent is true when every attempted record was either created or
// counted as failed.
func (r IngestReport) Consistent() bool {
	return r.Created+r.Failed == r.Attempted
}

// BatchReport contains counts of one ingested batch together with
// running totals.
type BatchReport struct {
	// Index of the batch, starting from 1.
	Index     int
	Attempted int
	Created   int
	Failed    int
	TimedOut  int

	// Total are cumulative counts including this batch.
	Total IngestReport
}

// IdentitySet is a set of substance keys that are present in the base
// store. It is the referential-integrity oracle for mapping tables.
type IdentitySet map[string]struct{}

// NewIdentitySet creates a set from given keys.
func NewIdentitySet(keys ...string) IdentitySet {
	res := make(IdentitySet, len(keys))
	for _, v := range keys {
		res.Add(v)
	}
	return res
}

// Add inserts a key to the set.
func (s IdentitySet) Add(key string) {
	s[key] = struct{}{}
}

// Has checks if a key belongs to the set.
func (s IdentitySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Len returns the number of keys.
func (s IdentitySet) Len() int {
	return len(s)
}
