// Package pipeline runs one batch link-prediction job end to end: read the
// dataset, preprocess it, aggregate common neighbors, score the requested
// metrics and export the tables together with a manifest and metrics.
//
// The steps are the same as driving the packages by hand; Run only wires
// them to a config.Config, a zerolog.Logger and a metrics.Collector.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linkpred/config"
	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/export"
	"github.com/katalvlaran/linkpred/metrics"
	"github.com/katalvlaran/linkpred/preprocess"
	"github.com/katalvlaran/linkpred/similarity"
)

// Phases reported to the metrics collector.
const (
	PhaseLoad      = "load"
	PhaseAggregate = "aggregate"
	PhaseScore     = "score"
)

// Result describes a finished run.
type Result struct {
	Manifest *export.Manifest

	// Graph is the scored graph, after preprocessing.
	Graph *core.Graph

	// Mapping names the nodes of the input before component extraction;
	// nil for plain integer input without a node file.
	Mapping *preprocess.Mapping

	// Subgraph is set when the largest component was extracted.
	Subgraph *preprocess.Subgraph

	// Files lists every file written, in write order.
	Files []string

	Collector *metrics.Collector
}

// Run executes the job described by cfg. It stops at the first error: tables
// exported before the failure stay on disk, but no manifest is written.
func Run(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	selected, err := cfg.Metrics()
	if err != nil {
		return nil, err
	}

	manifest := export.NewManifest()
	manifest.Input = cfg.EdgesPath()
	manifest.Settings = cfg.Settings()
	log = log.With().Str("run_id", manifest.RunID).Logger()
	col := metrics.New()
	res := &Result{Manifest: manifest, Collector: col}

	// Load and preprocess.
	stop := col.Phase(PhaseLoad)
	ds, err := load(ctx, cfg)
	if err != nil {
		return nil, err
	}
	res.Graph, res.Mapping, res.Subgraph = ds.graph, ds.mapping, ds.sub
	col.ObserveGraph(ds.graph)
	log.Info().
		Str("input", cfg.EdgesPath()).
		Int("nodes", ds.graph.NodeCount()).
		Int("edges", ds.graph.EdgeCount()).
		Int("max_degree", ds.graph.MaxDegree()).
		Int64("wedges", ds.graph.Wedges()).
		Dur("elapsed", stop()).
		Msg("graph loaded")
	if ds.sub != nil {
		log.Info().
			Int("kept", len(ds.sub.NewToOld)).
			Int("dropped", len(ds.sub.OldToNew)-len(ds.sub.NewToOld)).
			Msg("largest component extracted")
	}
	if cfg.SavePreprocessed() {
		files, serr := ds.save(cfg.OutputDir(), cfg.OutputPrefix())
		if serr != nil {
			return nil, serr
		}
		res.Files = append(res.Files, files...)
	}

	// Aggregate common neighbors.
	stop = col.Phase(PhaseAggregate)
	battery, err := similarity.Prepare(ctx, ds.graph, batteryOptions(cfg, log)...)
	if err != nil {
		return nil, err
	}
	pairs := battery.CommonNeighbors().Len()
	col.PairsTotal.Add(float64(pairs))
	log.Info().Int("pairs", pairs).Dur("elapsed", stop()).Msg("common neighbors aggregated")

	// Score and export.
	stop = col.Phase(PhaseScore)
	sink, files, err := openSink(cfg)
	if err != nil {
		return nil, err
	}
	rec := export.NewRecorder(sink)
	err = battery.Run(ctx, col.Sink(rec), selected...)
	if cerr := rec.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	for _, m := range selected {
		res.Files = append(res.Files, files(m.String())...)
	}
	log.Info().Int("tables", len(selected)).Dur("elapsed", stop()).Msg("tables exported")

	manifest.Graph = export.GraphStats{
		Nodes:     ds.graph.NodeCount(),
		Edges:     ds.graph.EdgeCount(),
		MaxDegree: ds.graph.MaxDegree(),
		Wedges:    ds.graph.Wedges(),
		Pairs:     pairs,
	}
	manifest.Tables = rec.Summaries()
	if cfg.WriteManifest() {
		path := filepath.Join(cfg.OutputDir(), prefixed(cfg.OutputPrefix(), export.ManifestFile))
		if err = manifest.WriteFile(path); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
	}
	if path := cfg.MetricsTextfile(); path != "" {
		if err = col.WriteTextfile(path); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, path)
	}

	return res, nil
}

func batteryOptions(cfg *config.Config, log zerolog.Logger) []similarity.Option {
	opts := []similarity.Option{
		similarity.WithMaxPairs(cfg.MaxPairs()),
		similarity.WithLogger(log),
	}
	if n := cfg.Workers(); n > 0 {
		opts = append(opts, similarity.WithWorkers(n))
	}
	if n := cfg.Shards(); n > 0 {
		opts = append(opts, similarity.WithShards(n))
	}

	return opts
}

// openSink builds the sink for output.format. The returned func lists the
// files a table ends up in.
func openSink(cfg *config.Config) (export.Sink, func(table string) []string, error) {
	delim, err := cfg.OutputDelimiter()
	if err != nil {
		return nil, nil, err
	}
	opts := []export.Option{
		export.WithPrefix(cfg.OutputPrefix()),
		export.WithDelimiter(delim),
		export.WithHeader(cfg.OutputHeader()),
	}
	dir := cfg.OutputDir()

	var (
		sinks []export.Sink
		paths []func(string) string
	)
	format := cfg.OutputFormat()
	if format == config.FormatCSV || format == config.FormatBoth {
		s, err := export.NewCSVSink(dir, opts...)
		if err != nil {
			return nil, nil, err
		}
		sinks, paths = append(sinks, s), append(paths, s.Path)
	}
	if format == config.FormatMsgpack || format == config.FormatBoth {
		s, err := export.NewMsgpackSink(dir, opts...)
		if err != nil {
			return nil, nil, err
		}
		sinks, paths = append(sinks, s), append(paths, s.Path)
	}
	if len(sinks) == 0 {
		return nil, nil, fmt.Errorf("%w: output.format %q", config.ErrInvalidConfig, format)
	}

	files := func(table string) []string {
		out := make([]string, len(paths))
		for i, p := range paths {
			out[i] = p(table)
		}
		return out
	}
	if len(sinks) == 1 {
		return sinks[0], files, nil
	}

	return export.NewMultiSink(sinks...), files, nil
}

func prefixed(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "_" + name
}

// IsUsageError reports whether err stems from the configuration rather than
// the data or the environment.
func IsUsageError(err error) bool {
	return errors.Is(err, config.ErrInvalidConfig) || errors.Is(err, similarity.ErrUnknownMetric)
}
