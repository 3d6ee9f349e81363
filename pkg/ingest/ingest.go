// Package ingest converts a stream of raw structure records into
// serialized substance records, one bounded batch at a time.
//
// Only one batch is kept in memory. Records that cannot be read or
// converted are dropped and counted, they are never retried. Batches are
// appended to the sink strictly in order, and a batch is appended before
// the next one is read.
package ingest

import (
	"context"
	"errors"
	"io"

	"github.com/gnames/chemdb/pkg/codec"
	"github.com/gnames/chemdb/pkg/substance"
)

// ErrMalformed marks a source record that could not be split into a key,
// a notation and a canonical key. Readers return it (possibly wrapped)
// together with a RawRecord that has at least the Line set.
var ErrMalformed = errors.New("malformed source record")

// RecordReader is a lazy stream of raw records. Read returns io.EOF when
// the stream is exhausted.
type RecordReader interface {
	Read() (substance.RawRecord, error)
}

// Sink receives batches of converted records. A batch is appended as one
// unit, an error from Append aborts ingestion. The slice is reused for
// the next batch, so Append must not keep it.
type Sink interface {
	Append(ctx context.Context, recs []substance.Record) error
}

// Ingestor runs chunked ingestion.
type Ingestor struct {
	codec     codec.StructureCodec
	sink      Sink
	chunkSize int
	onBatch   func(substance.BatchReport)
	onFailure func(substance.RawRecord, error)
}

// Option configures an Ingestor.
type Option func(*Ingestor)

// OptOnBatch sets a callback that is called after each appended batch.
func OptOnBatch(fn func(substance.BatchReport)) Option {
	return func(ing *Ingestor) {
		ing.onBatch = fn
	}
}

// OptOnFailure sets a callback that receives every dropped record with
// the reason of the drop.
func OptOnFailure(fn func(substance.RawRecord, error)) Option {
	return func(ing *Ingestor) {
		ing.onFailure = fn
	}
}

// New creates an Ingestor. The chunk size must be positive.
func New(
	c codec.StructureCodec,
	s Sink,
	chunkSize int,
	opts ...Option,
) (*Ingestor, error) {
	if chunkSize <= 0 {
		return nil, ChunkSizeError(chunkSize)
	}
	res := &Ingestor{
		codec:     c,
		sink:      s,
		chunkSize: chunkSize,
		onBatch:   func(substance.BatchReport) {},
		onFailure: func(substance.RawRecord, error) {},
	}
	for _, opt := range opts {
		opt(res)
	}
	return res, nil
}

// Ingest reads all records from src and appends converted ones to the
// sink. It returns cumulative counts, for which Created + Failed equals
// Attempted. On error the returned report contains counts of batches
// that were appended before the failure. Cancellation of ctx, between
// batches or inside one, returns CancelledError, and the unfinished batch
// is not appended.
func (ing *Ingestor) Ingest(
	ctx context.Context,
	src RecordReader,
) (substance.IngestReport, error) {
	var total substance.IngestReport
	batch := make([]substance.Record, 0, ing.chunkSize)

	for idx := 1; ; idx++ {
		if err := ctx.Err(); err != nil {
			return total, CancelledError(total, err)
		}

		br, eof, err := ing.batch(ctx, src, idx, batch[:0])
		if cerr := ctx.Err(); err != nil && cerr != nil {
			return total, CancelledError(total, cerr)
		}
		if err != nil {
			return total, err
		}
		if br.Attempted == 0 {
			return total, nil
		}
		total.Add(br)
		br.Total = total
		ing.onBatch(br)
		if eof {
			return total, nil
		}
	}
}

// batch reads up to chunkSize records, converts them and appends the
// survivors. eof is true when the source is exhausted.
func (ing *Ingestor) batch(
	ctx context.Context,
	src RecordReader,
	idx int,
	recs []substance.Record,
) (substance.BatchReport, bool, error) {
	res := substance.BatchReport{Index: idx}
	var eof bool

	for res.Attempted < ing.chunkSize {
		raw, err := src.Read()
		if errors.Is(err, io.EOF) {
			eof = true
			break
		}
		if err != nil && !errors.Is(err, ErrMalformed) {
			return res, false, SourceReadError(raw.Line, err)
		}
		res.Attempted++
		if err != nil {
			res.Failed++
			ing.onFailure(raw, err)
			continue
		}

		rec, err := ing.convert(ctx, raw)
		if err != nil && ctx.Err() != nil {
			// the record was not refused, conversion was cut short
			return res, false, err
		}
		if err != nil {
			timeout := errors.Is(err, codec.ErrTimeout)
			if !timeout && !errors.Is(err, codec.ErrParse) {
				return res, false, CodecError(raw, err)
			}
			if timeout {
				res.TimedOut++
			}
			res.Failed++
			ing.onFailure(raw, err)
			continue
		}
		recs = append(recs, rec)
	}

	if len(recs) > 0 {
		if err := ing.sink.Append(ctx, recs); err != nil {
			return res, false, AppendError(idx, len(recs), err)
		}
	}
	res.Created = len(recs)
	return res, eof, nil
}

func (ing *Ingestor) convert(
	ctx context.Context,
	raw substance.RawRecord,
) (substance.Record, error) {
	var res substance.Record
	st, err := ing.codec.Parse(ctx, raw.RawNotation)
	if err != nil {
		return res, err
	}
	payload, err := ing.codec.Serialize(st)
	if err != nil {
		return res, err
	}
	res = substance.Record{
		Key:          raw.Key,
		RawNotation:  raw.RawNotation,
		CanonicalKey: raw.CanonicalKey,
		Payload:      payload,
	}
	return res, nil
}
