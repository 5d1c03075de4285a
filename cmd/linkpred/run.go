package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/linkpred/config"
	"github.com/katalvlaran/linkpred/pipeline"
)

// flagKeys maps every run flag to the config key it overrides.
var flagKeys = map[string]string{
	"edges":             "input.edges",
	"nodes":             "input.nodes",
	"delimiter":         "input.delimiter",
	"renumber":          "preprocess.renumber",
	"largest-component": "preprocess.largest_component",
	"save-preprocessed": "preprocess.save",
	"workers":           "performance.workers",
	"shards":            "performance.shards",
	"max-pairs":         "performance.max_pairs",
	"out":               "output.dir",
	"prefix":            "output.prefix",
	"format":            "output.format",
	"out-delimiter":     "output.delimiter",
	"header":            "output.header",
	"metrics":           "output.metrics",
	"manifest":          "output.manifest",
	"log-level":         "logging.level",
	"log-format":        "logging.format",
	"metrics-textfile":  "metrics.textfile",
}

func newRunCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Score a graph and export one table per metric",
		Long: `Read an edge list, optionally renumber it and keep its largest connected
component, then compute the selected metrics and export them.

Settings come from, in increasing priority: defaults, the --config file,
LINKPRED_* environment variables (LINKPRED_PERFORMANCE_WORKERS=8), flags.`,
		Example: `  linkpred run --edges karate.edges --out results
  linkpred run --edges cora.cites --nodes cora.content --renumber --largest-component --save-preprocessed
  linkpred run --config run.yaml --metrics CN,RA_CNI --format both`,
		Args: cobra.NoArgs,
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML config file")
	f.String("edges", "", "edge list file (required)")
	f.String("nodes", "", "node file: node id first, class label last")
	f.String("delimiter", "", `input field separator; empty splits on whitespace and commas, "\t" for tab`)
	f.Bool("renumber", false, "treat node ids as arbitrary labels and renumber them densely")
	f.Bool("largest-component", false, "keep only the largest connected component")
	f.Bool("save-preprocessed", false, "write the preprocessed .edges/.nodes files to the output directory")
	f.Int("workers", 0, "worker goroutines; 0 uses GOMAXPROCS")
	f.Int("shards", 0, "aggregation shards; 0 uses the default")
	f.Int("max-pairs", 0, "abort when more candidate pairs are found; 0 disables the cap")
	f.String("out", ".", "output directory")
	f.String("prefix", "", "output file name prefix")
	f.String("format", config.FormatCSV, "output format: csv, msgpack or both")
	f.String("out-delimiter", " ", "CSV field separator")
	f.Bool("header", true, "write the CSV header line")
	f.StringSlice("metrics", nil, "metrics to compute (default all)")
	f.Bool("manifest", true, "write manifest.yaml")
	f.String("log-level", "info", "log level")
	f.String("log-format", "console", "log format: console or json")
	f.String("metrics-textfile", "", "write prometheus metrics to this file")

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cmd.SilenceUsage = true

		cfg := config.New()
		if configPath != "" {
			if err := cfg.LoadFromFile(configPath); err != nil {
				return err
			}
		}
		if err := bindFlags(cfg, cmd.Flags()); err != nil {
			return err
		}

		log := cfg.NewLogger(cmd.ErrOrStderr())
		res, err := pipeline.Run(cmd.Context(), cfg, log)
		if err != nil {
			cmd.SilenceErrors = true
			log.Error().Err(err).Bool("usage", pipeline.IsUsageError(err)).Msg("run failed")
			return err
		}
		log.Info().
			Str("run_id", res.Manifest.RunID).
			Strs("files", res.Files).
			Msg("run finished")

		return nil
	}

	return cmd
}

// bindFlags lets explicitly set flags override the config file and environment.
func bindFlags(cfg *config.Config, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := cfg.Viper().BindPFlag(key, fs.Lookup(name)); err != nil {
			return err
		}
	}

	return nil
}
