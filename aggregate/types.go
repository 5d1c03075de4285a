package aggregate

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"
)

// Sentinel errors for aggregation.
var (
	// ErrSelfPair indicates a pair whose two endpoints coincide.
	ErrSelfPair = errors.New("aggregate: pair endpoints must differ")

	// ErrUndefinedLogDegree indicates a shared neighbor whose degree makes 1/ln(deg) undefined.
	ErrUndefinedLogDegree = errors.New("aggregate: 1/ln(degree) undefined for shared neighbor")

	// ErrResourceExhausted indicates the aggregate outgrew Options.MaxPairs.
	ErrResourceExhausted = errors.New("aggregate: pair budget exhausted")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("aggregate: invalid option supplied")

	// ErrTableMismatch indicates tables built from different inputs were combined.
	ErrTableMismatch = errors.New("aggregate: interaction table does not match common-neighbor table")
)

// DegreeError reports the shared neighbor that made an Adamic-Adar term undefined.
type DegreeError struct {
	Node   int
	Degree int
}

func (e *DegreeError) Error() string {
	return fmt.Sprintf("aggregate: shared neighbor %d has degree %d, 1/ln(%d) is undefined", e.Node, e.Degree, e.Degree)
}

// Unwrap lets errors.Is match ErrUndefinedLogDegree.
func (e *DegreeError) Unwrap() error { return ErrUndefinedLogDegree }

// PairKey is a canonical unordered node pair: X < Y always.
type PairKey struct {
	X int
	Y int
}

// NewPairKey canonicalizes {a,b} so lookups are orientation-independent.
// Returns ErrSelfPair when a == b.
func NewPairKey(a, b int) (PairKey, error) {
	if a == b {
		return PairKey{}, fmt.Errorf("NewPairKey(%d,%d): %w", a, b, ErrSelfPair)
	}

	return canonical(a, b), nil
}

// canonical orders a != b without validation; hot paths only.
func canonical(a, b int) PairKey {
	if a > b {
		return PairKey{X: b, Y: a}
	}

	return PairKey{X: a, Y: b}
}

// Compare orders keys by (X, Y); suitable for slices.SortFunc.
func (k PairKey) Compare(o PairKey) int {
	if c := cmp.Compare(k.X, o.X); c != 0 {
		return c
	}

	return cmp.Compare(k.Y, o.Y)
}

// String renders the key as "{x,y}".
func (k PairKey) String() string { return fmt.Sprintf("{%d,%d}", k.X, k.Y) }

// shard routes k to one of n shards.
func (k PairKey) shard(n int) int {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], uint64(k.X))
	binary.LittleEndian.PutUint64(buf[8:], uint64(k.Y))

	return int(xxhash.Sum64(buf[:]) % uint64(n))
}

// CommonNeighborRecord holds the three quantities accumulated for a pair.
//   - CN:    number of shared neighbors (always ≥ 1 for stored records).
//   - AASum: Σ 1/ln(deg(z)) over shared neighbors z.
//   - RASum: Σ 1/deg(z) over shared neighbors z.
type CommonNeighborRecord struct {
	CN    int
	AASum float64
	RASum float64
}

// add folds o into r.
func (r *CommonNeighborRecord) add(o CommonNeighborRecord) {
	r.CN += o.CN
	r.AASum += o.AASum
	r.RASum += o.RASum
}

// Option configures an aggregation run. Invalid values are recorded and
// surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds the tunables shared by CommonNeighbors and Interactions.
type Options struct {
	// Workers bounds the number of goroutines doing enumeration or merging.
	Workers int

	// Shards is the number of PairKey hash shards per chunk.
	Shards int

	// MaxPairs caps the number of distinct pairs; 0 means unlimited.
	MaxPairs int

	// Logger receives debug progress; zerolog.Nop() by default.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns Workers = GOMAXPROCS, Shards = 4×Workers,
// MaxPairs = 0 (unlimited), and a no-op logger.
func DefaultOptions() Options {
	w := runtime.GOMAXPROCS(0)

	return Options{
		Workers: w,
		Shards:  4 * w,
		Logger:  zerolog.Nop(),
	}
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

// WithShards sets the shard count; n must be ≥ 1.
func WithShards(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: shards must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Shards = n
	}
}

// WithMaxPairs caps the distinct-pair count; 0 disables the cap.
func WithMaxPairs(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max pairs cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPairs = n
	}
}

// WithLogger attaches a logger for progress messages.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// resolve applies opts over the defaults and reports any recorded violation.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
