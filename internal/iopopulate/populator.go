// Package iopopulate implements Populator interface that fills an empty
// chemdb store from the DSSTox structures dump, the CAS registry
// spreadsheet and the PubChem catalog mapping file.
// This is an impure I/O package that reads source files, runs the
// structure codec and performs bulk inserts.
package iopopulate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/chemdb/internal/iocodec"
	"github.com/gnames/chemdb/internal/iojournal"
	"github.com/gnames/chemdb/internal/iometrics"
	"github.com/gnames/chemdb/pkg/codec"
	"github.com/gnames/chemdb/pkg/config"
	"github.com/gnames/chemdb/pkg/db"
	"github.com/gnames/chemdb/pkg/ingest"
	"github.com/gnames/chemdb/pkg/lifecycle"
	"github.com/gnames/chemdb/pkg/mapping"
	"github.com/gnames/chemdb/pkg/schema"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
)

// populator implements the Populator interface.
type populator struct {
	operator db.Operator
	codec    codec.StructureCodec
	metrics  *iometrics.Metrics
	journal  *iojournal.Journal
	quiet    bool
}

// Option configures the populator.
type Option func(*populator)

// OptCodec sets the structure codec. By default the Open Babel codec is
// created from the codec section of the config.
func OptCodec(c codec.StructureCodec) Option {
	return func(p *populator) {
		p.codec = c
	}
}

// OptQuiet disables the progress bar.
func OptQuiet(b bool) Option {
	return func(p *populator) {
		p.quiet = b
	}
}

// NewPopulator creates a new Populator.
func NewPopulator(op db.Operator, opts ...Option) lifecycle.Populator {
	res := &populator{operator: op}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Populate ingests structures, materializes the structural column, and
// then loads the mapping sources filtered by stored substances.
func (p *populator) Populate(
	ctx context.Context,
	cfg *config.Config,
) (err error) {
	pool := p.operator.Pool()
	if pool == nil {
		return NotConnectedError()
	}

	startTime := time.Now()
	slog.Info("Starting database population")

	if err = checkSources(cfg.Sources); err != nil {
		return err
	}
	if err = p.checkDestination(ctx); err != nil {
		return err
	}
	if p.codec == nil {
		if p.codec, err = iocodec.New(cfg.Codec); err != nil {
			return err
		}
	}

	run, err := startRun(ctx, pool)
	if err != nil {
		return err
	}
	slog.Info("Load run started", "run_id", run.id)

	p.metrics = iometrics.New()
	p.metrics.SetStage(stage.Raw)
	// counters of aborted runs are exported too
	defer func() {
		merr := p.metrics.WriteTextfile(cfg.Metrics.Textfile)
		if err == nil {
			err = merr
		} else if merr != nil {
			slog.Warn("Cannot write metrics", "error", merr)
		}
	}()

	if cfg.WithJournal() {
		path := config.JournalFilePath(cfg.HomeDir)
		if p.journal, err = iojournal.Open(ctx, path, run.id); err != nil {
			return err
		}
		defer func() {
			failures, rejects := p.journal.Counts()
			slog.Info("Journal saved",
				"path", path,
				"parse_failures", failures,
				"mapping_rejects", rejects,
			)
			if jerr := p.journal.Close(); err == nil {
				err = jerr
			}
			p.journal = nil
		}()
	}

	machine := stage.NewMachine()

	gn.Info("(1/4) Ingesting structures...")
	rep, err := p.ingestStructures(ctx, cfg)
	if err != nil {
		return err
	}
	if err = p.advance(ctx, run, machine, rep, stage.Serialized); err != nil {
		return err
	}
	gn.Message(
		"<em>Ingested %s structures, %s failed</em>",
		humanize.Comma(int64(rep.Created)),
		humanize.Comma(int64(rep.Failed)),
	)
	if rep.TimedOut > 0 {
		gn.Warn("<em>%s</em> structures timed out, consider a larger "+
			"<em>codec.timeout_sec</em>", humanize.Comma(int64(rep.TimedOut)))
	}

	gn.Info("(2/4) Building native structures...")
	mat := newMaterializer(pool, cfg.Structure, machine)
	if err = mat.toNative(ctx); err != nil {
		return err
	}
	if err = p.setStage(ctx, run, machine, rep); err != nil {
		return err
	}
	if err = mat.finalize(ctx, rep.Created); err != nil {
		return err
	}
	if err = p.setStage(ctx, run, machine, rep); err != nil {
		return err
	}

	ids, err := materializeIdentitySet(ctx, pool)
	if err != nil {
		return err
	}
	slog.Info("Identity set built", "keys", ids.Len())

	gn.Info("(3/4) Loading CAS registry numbers...")
	reg, err := p.loadRegistry(ctx, cfg.Sources.Registry, ids)
	if err != nil {
		return err
	}

	gn.Info("(4/4) Loading catalog compound ids...")
	cat, err := p.loadCatalog(ctx, cfg, ids)
	if err != nil {
		return err
	}

	if err = run.finish(ctx, reg, cat); err != nil {
		return err
	}
	slog.Info("Population complete",
		"run_id", run.id,
		"attempted", rep.Attempted,
		"created", rep.Created,
		"failed", rep.Failed,
		"timed_out", rep.TimedOut,
		"registry_accepted", reg.Accepted,
		"catalog_accepted", cat.Accepted,
		"duration", time.Since(startTime).String(),
	)
	gn.Info(`Population complete
  Substances:        %s (%s failed, %s timed out)
  Registry numbers:  %s (%s rejected, %s suspect)
  Catalog ids:       %s (%s rejected)
  Time:              %s`,
		humanize.Comma(int64(rep.Created)),
		humanize.Comma(int64(rep.Failed)),
		humanize.Comma(int64(rep.TimedOut)),
		humanize.Comma(int64(reg.Accepted)),
		humanize.Comma(int64(reg.Rejected)),
		humanize.Comma(int64(reg.Suspect)),
		humanize.Comma(int64(cat.Accepted)),
		humanize.Comma(int64(cat.Rejected)),
		gnfmt.TimeString(time.Since(startTime).Seconds()),
	)
	return nil
}

// checkSources requires the structures dump. Mapping sources are
// optional, a missing one is skipped with a warning.
func checkSources(src config.SourcesConfig) error {
	if src.Structures == "" {
		return SourceMissingError("structures", "",
			errors.New("path is not set"))
	}
	if _, err := os.Stat(src.Structures); err != nil {
		return SourceMissingError("structures", src.Structures, err)
	}
	for _, v := range []struct{ name, path string }{
		{"registry", src.Registry},
		{"catalog", src.Catalog},
	} {
		if v.path == "" {
			continue
		}
		if _, err := os.Stat(v.path); err != nil {
			return SourceMissingError(v.name, v.path, err)
		}
	}
	return nil
}

// checkDestination refuses to populate a store that has substances or
// a recorded load run.
func (p *populator) checkDestination(ctx context.Context) error {
	for _, tbl := range []string{schema.SubstancesTable, schema.LoadRunsTable} {
		exists, err := p.operator.TableExists(ctx, tbl)
		if err != nil {
			return err
		}
		if !exists {
			return SchemaMissingError(tbl)
		}
	}

	var substances, runs int
	q := fmt.Sprintf(
		"SELECT (SELECT count(*) FROM %s), (SELECT count(*) FROM %s)",
		schema.SubstancesTable, schema.LoadRunsTable,
	)
	err := p.operator.Pool().QueryRow(ctx, q).Scan(&substances, &runs)
	if err != nil {
		return DestinationCheckError(err)
	}
	if substances > 0 || runs > 0 {
		return DestinationNotEmptyError(substances, runs)
	}
	return nil
}

func (p *populator) ingestStructures(
	ctx context.Context,
	cfg *config.Config,
) (substance.IngestReport, error) {
	var rep substance.IngestReport
	path := cfg.Sources.Structures
	f, err := os.Open(path)
	if err != nil {
		return rep, SourceOpenError(path, err)
	}
	defer f.Close()

	var src *structuresReader
	if p.quiet {
		src = newStructuresReader(f)
	} else {
		fi, err := f.Stat()
		if err != nil {
			return rep, SourceOpenError(path, err)
		}
		bar := pb.Full.Start64(fi.Size())
		bar.Set("prefix", "Structures: ")
		bar.Set(pb.Bytes, true)
		bar.Set(pb.CleanOnFinish, true)
		defer bar.Finish()
		src = newStructuresReader(bar.NewProxyReader(f))
	}

	sink := &substanceSink{pool: p.operator.Pool()}
	ing, err := ingest.New(p.codec, sink, cfg.Import.ChunkSize,
		ingest.OptOnBatch(p.onBatch),
		ingest.OptOnFailure(p.onFailure),
	)
	if err != nil {
		return rep, err
	}
	return ing.Ingest(ctx, src)
}

func (p *populator) onBatch(b substance.BatchReport) {
	p.metrics.AddBatch(b)
	slog.Info("Batch appended",
		"batch", b.Index,
		"created", b.Created,
		"failed", b.Failed,
		"timed_out", b.TimedOut,
		"total_created", humanize.Comma(int64(b.Total.Created)),
		"total_failed", humanize.Comma(int64(b.Total.Failed)),
	)
}

func (p *populator) onFailure(raw substance.RawRecord, reason error) {
	slog.Debug("Structure record dropped",
		"line", raw.Line,
		"key", raw.Key,
		"reason", reason,
	)
	if p.journal == nil {
		return
	}
	err := p.journal.AddParseFailure(raw.Line, raw.Key, raw.RawNotation, reason)
	if err != nil {
		slog.Warn("Cannot save dropped record to journal", "error", err)
	}
}

// advance moves the machine to the given stage and records it.
func (p *populator) advance(
	ctx context.Context,
	run *runLog,
	m *stage.Machine,
	rep substance.IngestReport,
	to stage.Stage,
) error {
	if err := m.Advance(to); err != nil {
		return StageError(err)
	}
	return p.setStage(ctx, run, m, rep)
}

func (p *populator) setStage(
	ctx context.Context,
	run *runLog,
	m *stage.Machine,
	rep substance.IngestReport,
) error {
	p.metrics.SetStage(m.Current())
	slog.Info("Stage reached", "stage", m.Current().String())
	return run.setIngest(ctx, m.Current(), rep)
}

func (p *populator) loadRegistry(
	ctx context.Context,
	path string,
	ids substance.IdentitySet,
) (mapping.Result, error) {
	res := mapping.Result{Source: mapping.Registry}
	if path == "" {
		gn.Warn("Registry source is not set, skipping CAS registry numbers")
		return res, nil
	}

	rows, malformed, err := readRegistry(path)
	if err != nil {
		return res, err
	}
	accepted, res := mapping.Filter(mapping.Registry, rows, ids,
		func(r mapping.CasrnMapping) {
			p.reject(mapping.Registry, r.Key, r.RegistryNumber)
		},
	)
	res.Malformed = malformed
	res.Suspect = countSuspect(accepted)

	if err = saveRegistry(ctx, p.operator.Pool(), accepted); err != nil {
		return res, err
	}
	p.reportMapping(res)
	return res, nil
}

func (p *populator) loadCatalog(
	ctx context.Context,
	cfg *config.Config,
	ids substance.IdentitySet,
) (mapping.Result, error) {
	res := mapping.Result{Source: mapping.Catalog}
	path := cfg.Sources.Catalog
	if path == "" {
		gn.Warn("Catalog source is not set, skipping catalog compound ids")
		return res, nil
	}

	rows, malformed, err := readCatalog(path, cfg.Import)
	if err != nil {
		return res, err
	}
	accepted, res := mapping.Filter(mapping.Catalog, rows, ids,
		func(r mapping.CidMapping) {
			p.reject(mapping.Catalog, r.Key, fmt.Sprintf("%d", r.CatalogID))
		},
	)
	res.Malformed = malformed

	if err = saveCatalog(ctx, p.operator.Pool(), accepted); err != nil {
		return res, err
	}
	p.reportMapping(res)
	return res, nil
}

func (p *populator) reject(src mapping.Source, key, value string) {
	if p.journal == nil {
		return
	}
	if err := p.journal.AddMappingReject(string(src), key, value); err != nil {
		slog.Warn("Cannot save rejected mapping to journal", "error", err)
	}
}

func (p *populator) reportMapping(r mapping.Result) {
	p.metrics.AddMapping(r)
	slog.Info("Mapping loaded",
		"source", string(r.Source),
		"total", r.Total,
		"accepted", r.Accepted,
		"rejected", r.Rejected,
		"duplicates", r.Duplicates,
		"malformed", r.Malformed,
		"suspect", r.Suspect,
	)
	gn.Message(
		"<em>%s: %s accepted, %s rejected, %s duplicates</em>",
		string(r.Source),
		humanize.Comma(int64(r.Accepted)),
		humanize.Comma(int64(r.Rejected)),
		humanize.Comma(int64(r.Duplicates)),
	)
}
