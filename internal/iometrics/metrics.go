// Package iometrics counts populate results with Prometheus collectors
// and exports them for the node_exporter textfile collector.
package iometrics

import (
	"github.com/gnames/chemdb/pkg/mapping"
	"github.com/gnames/chemdb/pkg/stage"
	"github.com/gnames/chemdb/pkg/substance"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "chemdb"

// Metrics keeps collectors of one populate run in its own registry.
type Metrics struct {
	reg *prometheus.Registry

	records  *prometheus.CounterVec
	batches  prometheus.Counter
	mappings *prometheus.CounterVec
	stage    prometheus.Gauge
}

// New creates and registers collectors.
func New() *Metrics {
	res := &Metrics{
		reg: prometheus.NewRegistry(),
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingest_records_total",
				Help:      "Structure records by ingestion result.",
			},
			[]string{"result"},
		),
		batches: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "ingest_batches_total",
				Help:      "Batches appended to the substances table.",
			},
		),
		mappings: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mapping_rows_total",
				Help:      "Mapping rows by source and filter result.",
			},
			[]string{"source", "result"},
		),
		stage: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "stage",
				Help:      "Materialization stage (1 RAW, 2 SERIALIZED, 3 NATIVE, 4 FINALIZED).",
			},
		),
	}
	res.reg.MustRegister(res.records, res.batches, res.mappings, res.stage)
	return res
}

// AddBatch counts records of an appended batch.
func (m *Metrics) AddBatch(b substance.BatchReport) {
	m.batches.Inc()
	m.records.WithLabelValues("attempted").Add(float64(b.Attempted))
	m.records.WithLabelValues("created").Add(float64(b.Created))
	m.records.WithLabelValues("failed").Add(float64(b.Failed))
	m.records.WithLabelValues("timed_out").Add(float64(b.TimedOut))
}

// AddMapping counts rows of a filtered mapping source.
func (m *Metrics) AddMapping(r mapping.Result) {
	src := string(r.Source)
	m.mappings.WithLabelValues(src, "accepted").Add(float64(r.Accepted))
	m.mappings.WithLabelValues(src, "rejected").Add(float64(r.Rejected))
	m.mappings.WithLabelValues(src, "duplicate").Add(float64(r.Duplicates))
	m.mappings.WithLabelValues(src, "malformed").Add(float64(r.Malformed))
	m.mappings.WithLabelValues(src, "suspect").Add(float64(r.Suspect))
}

// SetStage records the reached materialization stage.
func (m *Metrics) SetStage(s stage.Stage) {
	m.stage.Set(float64(s))
}

// WriteTextfile writes all metrics to path in the text exposition
// format. Nothing is written if path is empty.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return WriteError(path, err)
	}
	return nil
}
