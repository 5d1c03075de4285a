package aggregate

import (
	"context"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkpred/core"
)

// pairsPerChunk sizes the units of work handed to interaction workers.
const pairsPerChunk = 1024

// degreeBucket groups the neighbors of one node that share a degree value.
type degreeBucket struct {
	inv   float64 // 1/deg
	count float64 // neighbors with that degree
}

// degreeProfiles is an arena of per-node degree histograms over N(v):
// buckets[offsets[v]:offsets[v+1]], ascending by degree.
type degreeProfiles struct {
	offsets []int
	buckets []degreeBucket
}

// profile returns the histogram of the degrees found in N(v).
func (p *degreeProfiles) profile(v int) []degreeBucket {
	return p.buckets[p.offsets[v]:p.offsets[v+1]]
}

// buildProfiles computes the degree histogram of every neighborhood.
// Complexity: O(V + E log d).
func buildProfiles(g *core.Graph) *degreeProfiles {
	n := g.NodeCount()
	p := &degreeProfiles{offsets: make([]int, n+1)}
	var degs []int
	for v := 0; v < n; v++ {
		degs = degs[:0]
		for _, u := range g.Neighbors(v) {
			degs = append(degs, g.Degree(u))
		}
		slices.Sort(degs)
		for i := 0; i < len(degs); {
			j := i
			for j < len(degs) && degs[j] == degs[i] {
				j++
			}
			p.buckets = append(p.buckets, degreeBucket{inv: 1 / float64(degs[i]), count: float64(j - i)})
			i = j
		}
		p.offsets[v+1] = len(p.buckets)
	}

	return p
}

// crossTerm evaluates Σ_{a∈N(x), b∈N(y)} |1/deg(a) − 1/deg(b)| from the two
// degree histograms. Equal-degree neighbor pairs contribute 0, so grouping
// by degree is exact; the loop order is fixed, so the result is reproducible.
func crossTerm(px, py []degreeBucket) float64 {
	var sum float64
	for _, a := range px {
		for _, b := range py {
			sum += a.count * b.count * math.Abs(a.inv-b.inv)
		}
	}

	return sum
}

// Gamma is the per-node-pair interaction weight |1/deg(a) − 1/deg(b)|,
// evaluated on demand. It returns 0 if either node is isolated or invalid.
func Gamma(g *core.Graph, a, b int) float64 {
	da, db := g.Degree(a), g.Degree(b)
	if da == 0 || db == 0 {
		return 0
	}

	return math.Abs(1/float64(da) - 1/float64(db))
}

// Interactions computes cni for every pair of cn, and only for those pairs:
// the cross term is the most expensive quantity in the battery, so it is
// never evaluated outside the common-neighbor domain.
//
// Errors: ErrOptionViolation, core.ErrNilGraph, ErrTableMismatch when cn
// names nodes outside g, or ctx.Err() when aborted.
//
// Complexity: O(V + E log d) for the profiles plus
// O(Σ_pairs |profile(x)|·|profile(y)|) ≤ O(Σ_pairs deg(x)·deg(y)).
func Interactions(ctx context.Context, g *core.Graph, cn *CommonNeighborTable, opts ...Option) (*InteractionTable, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("Interactions: %w", core.ErrNilGraph)
	}
	if cn == nil {
		return nil, fmt.Errorf("Interactions: nil common-neighbor table: %w", ErrTableMismatch)
	}

	profiles := buildProfiles(g)
	values := make([]float64, cn.Len())
	chunks := (cn.Len() + pairsPerChunk - 1) / pairsPerChunk
	o.Logger.Debug().Int("pairs", cn.Len()).Int("chunks", chunks).Msg("interaction cross terms started")

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for c := 0; c < chunks; c++ {
		eg.Go(func() error {
			lo := c * pairsPerChunk
			hi := min(lo+pairsPerChunk, cn.Len())
			for i := lo; i < hi; i++ {
				if err := egCtx.Err(); err != nil {
					return err
				}
				k := cn.entries[i].Key
				if !g.Contains(k.X) || !g.Contains(k.Y) {
					return fmt.Errorf("Interactions: pair %s outside graph of %d nodes: %w", k, g.NodeCount(), ErrTableMismatch)
				}
				values[i] = crossTerm(profiles.profile(k.X), profiles.profile(k.Y))
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return &InteractionTable{cn: cn, values: values}, nil
}
