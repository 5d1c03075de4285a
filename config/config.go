// Package config holds the run configuration of the linkpred CLI and
// pipeline, backed by viper: defaults, an optional YAML file, and
// LINKPRED_* environment overrides (LINKPRED_PERFORMANCE_WORKERS and so on).
package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/spf13/viper"

	"github.com/katalvlaran/linkpred/similarity"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LINKPRED"

// Output formats.
const (
	FormatCSV     = "csv"
	FormatMsgpack = "msgpack"
	FormatBoth    = "both"
)

// ErrInvalidConfig indicates a setting that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid setting")

// Config manages run configuration using Viper.
type Config struct {
	v *viper.Viper
}

// New creates a configuration with defaults and environment overrides enabled.
func New() *Config {
	v := viper.New()

	// Input
	v.SetDefault("input.edges", "")
	v.SetDefault("input.nodes", "")
	v.SetDefault("input.delimiter", "")

	// Preprocessing
	v.SetDefault("preprocess.renumber", false)
	v.SetDefault("preprocess.largest_component", false)
	v.SetDefault("preprocess.save", false)

	// Performance; zero picks the engine defaults
	v.SetDefault("performance.workers", 0)
	v.SetDefault("performance.shards", 0)
	v.SetDefault("performance.max_pairs", 0)

	// Output
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.prefix", "")
	v.SetDefault("output.format", FormatCSV)
	v.SetDefault("output.delimiter", " ")
	v.SetDefault("output.header", true)
	v.SetDefault("output.metrics", []string{})
	v.SetDefault("output.manifest", true)

	// Logging
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("metrics.textfile", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadFromFile merges settings from a YAML (or any viper-supported) file.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: load %s: %w", path, err)
	}

	return nil
}

// Set allows dynamic configuration changes.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Viper exposes the underlying store, for flag binding.
func (c *Config) Viper() *viper.Viper { return c.v }

// Getters for input
func (c *Config) EdgesPath() string { return c.v.GetString("input.edges") }
func (c *Config) NodesPath() string { return c.v.GetString("input.nodes") }
func (c *Config) InputDelimiter() (rune, error) {
	return delimiter("input.delimiter", c.v.GetString("input.delimiter"), 0)
}

// Getters for preprocessing
func (c *Config) Renumber() bool         { return c.v.GetBool("preprocess.renumber") }
func (c *Config) LargestComponent() bool { return c.v.GetBool("preprocess.largest_component") }
func (c *Config) SavePreprocessed() bool { return c.v.GetBool("preprocess.save") }

// Getters for performance
func (c *Config) Workers() int  { return c.v.GetInt("performance.workers") }
func (c *Config) Shards() int   { return c.v.GetInt("performance.shards") }
func (c *Config) MaxPairs() int { return c.v.GetInt("performance.max_pairs") }

// Getters for output
func (c *Config) OutputDir() string    { return c.v.GetString("output.dir") }
func (c *Config) OutputPrefix() string { return c.v.GetString("output.prefix") }
func (c *Config) OutputFormat() string { return strings.ToLower(c.v.GetString("output.format")) }
func (c *Config) OutputHeader() bool   { return c.v.GetBool("output.header") }
func (c *Config) WriteManifest() bool  { return c.v.GetBool("output.manifest") }
func (c *Config) OutputDelimiter() (rune, error) {
	return delimiter("output.delimiter", c.v.GetString("output.delimiter"), ' ')
}

// Metrics parses output.metrics; an empty list selects every metric.
func (c *Config) Metrics() ([]similarity.Metric, error) {
	ms, err := similarity.ParseMetrics(c.v.GetStringSlice("output.metrics"))
	if err != nil {
		return nil, fmt.Errorf("config: output.metrics: %w", err)
	}

	return ms, nil
}

// Getters for logging and metrics
func (c *Config) LogLevel() string        { return c.v.GetString("logging.level") }
func (c *Config) LogFormat() string       { return strings.ToLower(c.v.GetString("logging.format")) }
func (c *Config) MetricsTextfile() string { return c.v.GetString("metrics.textfile") }

// Settings returns every resolved key as a string, for the run manifest.
func (c *Config) Settings() map[string]string {
	keys := c.v.AllKeys()
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = fmt.Sprint(c.v.Get(k))
	}

	return out
}

// Validate checks the settings a run depends on.
func (c *Config) Validate() error {
	if c.EdgesPath() == "" {
		return fmt.Errorf("%w: input.edges is required", ErrInvalidConfig)
	}
	switch c.OutputFormat() {
	case FormatCSV, FormatMsgpack, FormatBoth:
	default:
		return fmt.Errorf("%w: output.format %q (want csv, msgpack or both)", ErrInvalidConfig, c.OutputFormat())
	}
	for _, k := range []string{"performance.workers", "performance.shards", "performance.max_pairs"} {
		if c.v.GetInt(k) < 0 {
			return fmt.Errorf("%w: %s must be ≥ 0 (%d)", ErrInvalidConfig, k, c.v.GetInt(k))
		}
	}
	if _, err := c.InputDelimiter(); err != nil {
		return err
	}
	if _, err := c.OutputDelimiter(); err != nil {
		return err
	}
	if _, err := c.Metrics(); err != nil {
		return err
	}
	if c.SavePreprocessed() && c.OutputDir() == "" {
		return fmt.Errorf("%w: preprocess.save needs output.dir", ErrInvalidConfig)
	}

	return nil
}

// delimiter decodes a single-rune setting; "" yields def and `\t` a tab.
func delimiter(key, s string, def rune) (rune, error) {
	switch s {
	case "":
		return def, nil
	case `\t`, "tab":
		return '\t', nil
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, fmt.Errorf("%w: %s must be a single character (%q)", ErrInvalidConfig, key, s)
	}

	return r, nil
}
