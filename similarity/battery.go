package similarity

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkpred/aggregate"
	"github.com/katalvlaran/linkpred/core"
	"github.com/katalvlaran/linkpred/export"
)

// scoresPerChunk sizes the units of work handed to scoring workers.
const scoresPerChunk = 4096

// Battery evaluates metrics against one graph and its cached aggregates.
// Every metric reads the same CommonNeighborTable; nothing is recomputed
// per metric. A Battery is safe for concurrent use.
type Battery struct {
	g    *core.Graph
	cn   *aggregate.CommonNeighborTable
	opts Options

	mu     sync.Mutex
	cni    *aggregate.InteractionTable
	lazy   bool
	ratios []*Table
}

// NewBattery wraps precomputed aggregates. cni may be nil, in which case
// RA_CNI fails with ErrMissingInteraction.
//
// Errors: core.ErrNilGraph, aggregate.ErrTableMismatch when cn is nil or cni
// was not derived from cn, ErrOptionViolation.
func NewBattery(g *core.Graph, cn *aggregate.CommonNeighborTable, cni *aggregate.InteractionTable, opts ...Option) (*Battery, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("NewBattery: %w", core.ErrNilGraph)
	}
	if cn == nil {
		return nil, fmt.Errorf("NewBattery: nil common-neighbor table: %w", aggregate.ErrTableMismatch)
	}
	if cni != nil && cni.Source() != cn {
		return nil, fmt.Errorf("NewBattery: %w", aggregate.ErrTableMismatch)
	}

	return &Battery{g: g, cn: cn, cni: cni, opts: o}, nil
}

// Prepare aggregates common neighbors once and returns a Battery that
// computes interactions on the first RA_CNI request only.
func Prepare(ctx context.Context, g *core.Graph, opts ...Option) (*Battery, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	cn, err := aggregate.CommonNeighbors(ctx, g, o.aggregateOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Prepare: %w", err)
	}

	return &Battery{g: g, cn: cn, opts: o, lazy: true}, nil
}

// Graph returns the scored graph.
func (b *Battery) Graph() *core.Graph { return b.g }

// CommonNeighbors returns the shared common-neighbor table.
func (b *Battery) CommonNeighbors() *aggregate.CommonNeighborTable { return b.cn }

// Evaluate scores every pair in m's domain.
//
// Errors: ErrUnknownMetric, ErrMissingInteraction, *ScoreError,
// aggregate errors from lazy interactions, ctx.Err().
func (b *Battery) Evaluate(ctx context.Context, m Metric) (*Table, error) {
	switch {
	case !m.valid():
		return nil, fmt.Errorf("Evaluate(%d): %w", int(m), ErrUnknownMetric)
	case m == PA:
		return b.preferentialAttachment(ctx)
	case m.isRatio():
		ratios, err := b.ratioTables(ctx)
		if err != nil {
			return nil, err
		}
		return ratios[m-JC], nil
	case m == RACNI:
		cni, err := b.interactions(ctx)
		if err != nil {
			return nil, err
		}
		return b.scoreCommon(ctx, m, func(i int, r aggregate.CommonNeighborRecord) float64 {
			_, v := cni.At(i)
			return r.RASum + v
		})
	case m == AA:
		return b.scoreCommon(ctx, m, func(_ int, r aggregate.CommonNeighborRecord) float64 { return r.AASum })
	case m == RA:
		return b.scoreCommon(ctx, m, func(_ int, r aggregate.CommonNeighborRecord) float64 { return r.RASum })
	default:
		return b.scoreCommon(ctx, m, func(_ int, r aggregate.CommonNeighborRecord) float64 { return float64(r.CN) })
	}
}

// Run evaluates metrics in the given order (all of them when none are
// given) and writes each table to sink under its metric name. It stops at
// the first error; tables already written stay written.
func (b *Battery) Run(ctx context.Context, sink export.Sink, metrics ...Metric) error {
	if sink == nil {
		return fmt.Errorf("Run: nil sink: %w", ErrOptionViolation)
	}
	if len(metrics) == 0 {
		metrics = AllMetrics()
	}
	for _, m := range metrics {
		if !m.valid() {
			return fmt.Errorf("Run: metric %d: %w", int(m), ErrUnknownMetric)
		}
	}

	for _, m := range metrics {
		start := time.Now()
		t, err := b.Evaluate(ctx, m)
		if err != nil {
			return fmt.Errorf("Run: %s: %w", m, err)
		}
		if err = sink.WriteTable(ctx, m.String(), t.Rows()); err != nil {
			return fmt.Errorf("Run: export %s: %w", m, err)
		}
		b.opts.Logger.Info().
			Str("metric", m.String()).
			Int("rows", t.Len()).
			Dur("elapsed", time.Since(start)).
			Msg("metric exported")
	}

	return nil
}

// interactions returns the cached InteractionTable, computing it on first
// use when the battery came from Prepare.
func (b *Battery) interactions(ctx context.Context) (*aggregate.InteractionTable, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cni != nil {
		return b.cni, nil
	}
	if !b.lazy {
		return nil, fmt.Errorf("Evaluate(%s): %w", RACNI, ErrMissingInteraction)
	}
	cni, err := aggregate.Interactions(ctx, b.g, b.cn, b.opts.aggregateOptions()...)
	if err != nil {
		return nil, fmt.Errorf("Evaluate(%s): %w", RACNI, err)
	}
	b.cni = cni

	return cni, nil
}

// scoreCommon maps every common-neighbor record through value.
func (b *Battery) scoreCommon(ctx context.Context, m Metric, value func(int, aggregate.CommonNeighborRecord) float64) (*Table, error) {
	n := b.cn.Len()
	scores := make([]Score, n)
	err := b.forChunks(ctx, n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			e := b.cn.At(i)
			v, err := finite(m, e.Key, m.String(), value(i, e.Record))
			if err != nil {
				return err
			}
			scores[i] = Score{Source: e.Key.X, Target: e.Key.Y, Value: v}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Table{metric: m, scores: scores}, nil
}

// ratioTables derives JC, SA, SO, HPI, HDI and LLHN in a single pass and
// caches them.
func (b *Battery) ratioTables(ctx context.Context) ([]*Table, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ratios != nil {
		return b.ratios, nil
	}

	n := b.cn.Len()
	var out [len(ratioReducers)][]Score
	for j := range out {
		out[j] = make([]Score, n)
	}
	err := b.forChunks(ctx, n, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			e := b.cn.At(i)
			in := ratioInput{
				cn: float64(e.Record.CN),
				dx: float64(b.g.Degree(e.Key.X)),
				dy: float64(b.g.Degree(e.Key.Y)),
			}
			for j := range ratioReducers {
				v, err := ratioReducers[j].apply(e.Key, in)
				if err != nil {
					return err
				}
				out[j][i] = Score{Source: e.Key.X, Target: e.Key.Y, Value: v}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	tables := make([]*Table, len(ratioReducers))
	for j, r := range ratioReducers {
		tables[j] = &Table{metric: r.metric, scores: out[j]}
	}
	b.ratios = tables

	return tables, nil
}

// preferentialAttachment scores the observed edges only.
func (b *Battery) preferentialAttachment(ctx context.Context) (*Table, error) {
	edges := b.g.Edges()
	scores := make([]Score, len(edges))
	err := b.forChunks(ctx, len(edges), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			e := edges[i]
			k := aggregate.PairKey{X: e.From, Y: e.To}
			v, err := finite(PA, k, "deg(x)*deg(y)", float64(b.g.Degree(e.From))*float64(b.g.Degree(e.To)))
			if err != nil {
				return err
			}
			scores[i] = Score{Source: e.From, Target: e.To, Value: v}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Table{metric: PA, scores: scores}, nil
}

// forChunks runs fn over [0, n) in scoresPerChunk slices on up to Workers
// goroutines. Each index is written by exactly one goroutine.
func (b *Battery) forChunks(ctx context.Context, n int, fn func(lo, hi int) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(b.opts.Workers)
	for lo := 0; lo < n; lo += scoresPerChunk {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			return fn(lo, min(lo+scoresPerChunk, n))
		})
	}

	return eg.Wait()
}
