// Package metrics collects prometheus metrics for one linkpred run.
//
// A run is a batch job, so every Collector owns a private registry instead
// of the global one, and the result is dumped once with WriteTextfile for the
// node-exporter textfile collector.
package metrics

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/export"
)

// Collector holds the metrics of a single run.
type Collector struct {
	reg *prometheus.Registry

	// PairsTotal counts candidate pairs with at least one common neighbor.
	PairsTotal prometheus.Counter

	// RowsExported counts rows written per table.
	RowsExported *prometheus.CounterVec

	// Graph size.
	GraphNodes  prometheus.Gauge
	GraphEdges  prometheus.Gauge
	GraphWedges prometheus.Gauge

	// PhaseDuration measures pipeline phases (read, build, aggregate, ...).
	PhaseDuration *prometheus.HistogramVec
}

// New creates a Collector on a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Collector{
		reg: reg,
		PairsTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "linkpred_pairs_total",
			Help: "Unordered node pairs with at least one common neighbor",
		}),
		RowsExported: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "linkpred_rows_exported_total",
				Help: "Rows written per result table",
			},
			[]string{"table"},
		),
		GraphNodes: f.NewGauge(prometheus.GaugeOpts{
			Name: "linkpred_graph_nodes",
			Help: "Nodes of the scored graph",
		}),
		GraphEdges: f.NewGauge(prometheus.GaugeOpts{
			Name: "linkpred_graph_edges",
			Help: "Undirected edges of the scored graph",
		}),
		GraphWedges: f.NewGauge(prometheus.GaugeOpts{
			Name: "linkpred_graph_wedges",
			Help: "Sum of deg(z)*(deg(z)-1)/2, the common-neighbor enumeration work",
		}),
		PhaseDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "linkpred_phase_duration_seconds",
				Help:    "Duration of pipeline phases in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
			},
			[]string{"phase"},
		),
	}
}

// Registry returns the private registry, for gathering.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// ObserveGraph records the size of g.
func (c *Collector) ObserveGraph(g *core.Graph) {
	c.GraphNodes.Set(float64(g.NodeCount()))
	c.GraphEdges.Set(float64(g.EdgeCount()))
	c.GraphWedges.Set(float64(g.Wedges()))
}

// Phase starts timing a phase; call the returned func when it ends.
func (c *Collector) Phase(name string) func() time.Duration {
	start := time.Now()
	obs := c.PhaseDuration.WithLabelValues(name)

	return func() time.Duration {
		d := time.Since(start)
		obs.Observe(d.Seconds())
		return d
	}
}

// WriteTextfile dumps every metric in text exposition format. The file is
// written atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.reg); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

// Sink wraps next so that every written row is counted in RowsExported.
func (c *Collector) Sink(next export.Sink) export.Sink {
	return &countingSink{next: next, rows: c.RowsExported}
}

type countingSink struct {
	next export.Sink
	rows *prometheus.CounterVec
}

func (s *countingSink) WriteTable(ctx context.Context, name string, rows iter.Seq[export.Row]) error {
	var n int
	err := s.next.WriteTable(ctx, name, func(yield func(export.Row) bool) {
		n = 0
		for r := range rows {
			n++
			if !yield(r) {
				return
			}
		}
	})
	s.rows.WithLabelValues(name).Add(float64(n))

	return err
}

func (s *countingSink) Close() error { return s.next.Close() }
