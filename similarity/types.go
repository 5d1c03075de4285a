package similarity

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/linkpred/aggregate"
)

// Sentinel errors for scoring.
var (
	// ErrZeroDenominator indicates a ratio metric whose denominator is zero.
	ErrZeroDenominator = errors.New("similarity: zero denominator")

	// ErrNonFinite indicates a score that came out NaN or ±Inf.
	ErrNonFinite = errors.New("similarity: non-finite score")

	// ErrMissingInteraction indicates RA_CNI was requested from a battery without interactions.
	ErrMissingInteraction = errors.New("similarity: interaction table required for RA_CNI")

	// ErrUnknownMetric indicates a metric name or value outside the battery.
	ErrUnknownMetric = errors.New("similarity: unknown metric")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("similarity: invalid option supplied")
)

// ScoreError pinpoints the pair and quantity that invalidated a score.
type ScoreError struct {
	Metric   Metric
	Pair     aggregate.PairKey
	Quantity string
	Value    float64
	Err      error
}

func (e *ScoreError) Error() string {
	return fmt.Sprintf("similarity: %s for pair %s: %s = %g: %v", e.Metric, e.Pair, e.Quantity, e.Value, e.Err)
}

// Unwrap exposes ErrZeroDenominator or ErrNonFinite.
func (e *ScoreError) Unwrap() error { return e.Err }

// Score is one scored pair, Source < Target.
type Score struct {
	Source int
	Target int
	Value  float64
}

// Option configures a Battery and, through Prepare, its aggregation.
type Option func(*Options)

// Options holds scoring and aggregation tunables.
type Options struct {
	// Workers bounds scoring and aggregation goroutines.
	Workers int

	// Shards is the aggregation shard count; 0 lets aggregate pick.
	Shards int

	// MaxPairs caps the common-neighbor table; 0 means unlimited.
	MaxPairs int

	// Logger receives per-metric progress; zerolog.Nop() by default.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Workers = GOMAXPROCS and a no-op logger.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0), Logger: zerolog.Nop()}
}

// WithWorkers sets the worker bound; n must be ≥ 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithShards sets the aggregation shard count; n must be ≥ 1.
func WithShards(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: shards must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Shards = n
	}
}

// WithMaxPairs caps the common-neighbor table; 0 disables the cap.
func WithMaxPairs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max pairs cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPairs = n
	}
}

// WithLogger attaches a logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// aggregateOptions translates o for the aggregate package.
func (o Options) aggregateOptions() []aggregate.Option {
	out := []aggregate.Option{
		aggregate.WithWorkers(o.Workers),
		aggregate.WithMaxPairs(o.MaxPairs),
		aggregate.WithLogger(o.Logger),
	}
	if o.Shards > 0 {
		out = append(out, aggregate.WithShards(o.Shards))
	}

	return out
}
