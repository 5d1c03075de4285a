package export

import (
	"context"
	"fmt"
	"iter"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

// ManifestFile is the conventional manifest name inside an output directory.
const ManifestFile = "manifest.yaml"

// GraphStats describes the input a run scored.
type GraphStats struct {
	Nodes     int   `yaml:"nodes"`
	Edges     int   `yaml:"edges"`
	MaxDegree int   `yaml:"max_degree"`
	Wedges    int64 `yaml:"wedges"`
	Pairs     int   `yaml:"common_neighbor_pairs"`
}

// TableSummary holds summary statistics of one exported table.
// Statistics are zero for an empty table.
type TableSummary struct {
	Name   string  `yaml:"name"`
	Rows   int     `yaml:"rows"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
	Min    float64 `yaml:"min"`
	Max    float64 `yaml:"max"`
	Median float64 `yaml:"median"`
}

// Manifest records what a run produced.
type Manifest struct {
	RunID     string            `yaml:"run_id"`
	CreatedAt time.Time         `yaml:"created_at"`
	Input     string            `yaml:"input,omitempty"`
	Settings  map[string]string `yaml:"settings,omitempty"`
	Graph     GraphStats        `yaml:"graph"`
	Tables    []TableSummary    `yaml:"tables"`
}

// NewManifest returns a manifest with a fresh random run id.
func NewManifest() *Manifest {
	return &Manifest{RunID: uuid.NewString(), CreatedAt: time.Now().UTC()}
}

// WriteFile marshals m as YAML to path.
func (m *Manifest) WriteFile(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("Manifest.WriteFile: %w", err)
	}
	if err = os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("Manifest.WriteFile: %w", err)
	}

	return nil
}

// ReadManifest loads a manifest written by WriteFile.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ReadManifest: %w", err)
	}
	var m Manifest
	if err = yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ReadManifest(%s): %w", path, err)
	}

	return &m, nil
}

// Summarize computes the summary statistics of values.
func Summarize(name string, values []float64) TableSummary {
	s := TableSummary{Name: name, Rows: len(values)}
	if len(values) == 0 {
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	if len(values) == 1 {
		s.StdDev = 0
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	s.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)

	return s
}

// Recorder forwards tables to another Sink and summarizes every table that
// was written successfully.
type Recorder struct {
	next Sink

	mu        sync.Mutex
	summaries []TableSummary
}

// NewRecorder wraps next.
func NewRecorder(next Sink) *Recorder {
	return &Recorder{next: next}
}

// WriteTable tees the similarity column off the stream on its way to next.
func (r *Recorder) WriteTable(ctx context.Context, name string, rows iter.Seq[Row]) error {
	var values []float64
	tee := func(yield func(Row) bool) {
		// a MultiSink downstream iterates once per sink
		values = values[:0]
		for row := range rows {
			values = append(values, row.Similarity)
			if !yield(row) {
				return
			}
		}
	}
	if err := r.next.WriteTable(ctx, name, tee); err != nil {
		return err
	}

	s := Summarize(name, values)
	r.mu.Lock()
	r.summaries = append(r.summaries, s)
	r.mu.Unlock()

	return nil
}

// Close closes the wrapped sink.
func (r *Recorder) Close() error { return r.next.Close() }

// Summaries returns the recorded tables in write order.
func (r *Recorder) Summaries() []TableSummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.summaries)
}
