package aggregate

import (
	"context"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/linkpred/core"
)

// nodesPerChunk fixes the enumeration partition. It must not depend on
// Workers or Shards: chunk boundaries decide how partial sums associate.
const nodesPerChunk = 512

// shardMaps is one chunk's private accumulator, indexed by shard.
type shardMaps []map[PairKey]CommonNeighborRecord

// CommonNeighbors enumerates every unordered pair with at least one shared
// neighbor, exactly once per shared neighbor, and returns the sorted table.
//
// Steps:
//  1. Resolve options; reject a nil graph.
//  2. Split [0, n) into chunks of nodesPerChunk nodes; workers enumerate
//     C(deg(z),2) pairs for each z into chunk-private shard maps.
//  3. Merge shard i across all chunks, in chunk order, into final shard i.
//  4. Flatten and sort by PairKey.
//
// Errors: ErrOptionViolation, core.ErrNilGraph, *DegreeError,
// ErrResourceExhausted, or ctx.Err() when aborted.
//
// Complexity: O(Σ_z C(deg(z),2)) time; memory proportional to the number of
// (chunk, pair) partial entries, bounded by the same sum.
func CommonNeighbors(ctx context.Context, g *core.Graph, opts ...Option) (*CommonNeighborTable, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, fmt.Errorf("CommonNeighbors: %w", core.ErrNilGraph)
	}

	n := g.NodeCount()
	chunks := (n + nodesPerChunk - 1) / nodesPerChunk
	o.Logger.Debug().
		Int("nodes", n).
		Int64("wedges", g.Wedges()).
		Int("max_degree", g.MaxDegree()).
		Int("chunks", chunks).
		Int("workers", o.Workers).
		Int("shards", o.Shards).
		Msg("common-neighbor enumeration started")

	partials := make([]shardMaps, chunks)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for c := 0; c < chunks; c++ {
		eg.Go(func() error {
			lo := c * nodesPerChunk
			hi := min(lo+nodesPerChunk, n)
			part, err := enumerateChunk(egCtx, g, lo, hi, o)
			if err != nil {
				return err
			}
			partials[c] = part
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	merged, err := mergeShards(ctx, partials, o)
	if err != nil {
		return nil, err
	}

	table := newCommonNeighborTable(merged)
	o.Logger.Debug().Int("pairs", table.Len()).Msg("common-neighbor enumeration finished")

	return table, nil
}

// enumerateChunk accumulates the open-triangle contributions of nodes [lo, hi).
// Within a chunk, contributions land in ascending z order.
func enumerateChunk(ctx context.Context, g *core.Graph, lo, hi int, o Options) (shardMaps, error) {
	part := make(shardMaps, o.Shards)
	size := 0
	for z := lo; z < hi; z++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		nbrs := g.Neighbors(z)
		if len(nbrs) < 2 {
			continue
		}
		contrib, err := contribution(z, len(nbrs))
		if err != nil {
			return nil, err
		}
		// nbrs is sorted, so x < y and the key is already canonical
		for i, x := range nbrs[:len(nbrs)-1] {
			for _, y := range nbrs[i+1:] {
				k := PairKey{X: x, Y: y}
				s := k.shard(o.Shards)
				if part[s] == nil {
					part[s] = make(map[PairKey]CommonNeighborRecord)
				}
				r, seen := part[s][k]
				if !seen {
					// a chunk never holds more distinct pairs than the final table
					if size++; o.MaxPairs > 0 && size > o.MaxPairs {
						return nil, fmt.Errorf("CommonNeighbors: chunk [%d,%d) reached %d pairs > max %d at node %d: %w",
							lo, hi, size, o.MaxPairs, z, ErrResourceExhausted)
					}
				}
				r.add(contrib)
				part[s][k] = r
			}
		}
	}

	return part, nil
}

// contribution is what one shared neighbor z of degree d adds to each of
// its pairs. A degree below 2 makes 1/ln(d) non-finite and is rejected.
func contribution(z, d int) (CommonNeighborRecord, error) {
	aa := 1 / math.Log(float64(d))
	if d < 2 || math.IsInf(aa, 0) || math.IsNaN(aa) {
		return CommonNeighborRecord{}, &DegreeError{Node: z, Degree: d}
	}

	return CommonNeighborRecord{CN: 1, AASum: aa, RASum: 1 / float64(d)}, nil
}

// mergeShards sums shard i of every chunk, in chunk order, into final shard i.
// Shards are independent, so they merge in parallel. Chunk partials are
// released as soon as they are folded in.
func mergeShards(ctx context.Context, partials []shardMaps, o Options) ([]map[PairKey]CommonNeighborRecord, error) {
	merged := make([]map[PairKey]CommonNeighborRecord, o.Shards)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.Workers)
	for s := 0; s < o.Shards; s++ {
		eg.Go(func() error {
			var acc map[PairKey]CommonNeighborRecord
			for c := range partials {
				if err := egCtx.Err(); err != nil {
					return err
				}
				part := partials[c][s]
				if part == nil {
					continue
				}
				partials[c][s] = nil
				if acc == nil {
					// first contributor: adopt its map, 0 + x == x
					acc = part
					continue
				}
				for k, r := range part {
					cur := acc[k]
					cur.add(r)
					acc[k] = cur
				}
			}
			merged[s] = acc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	if o.MaxPairs > 0 {
		total := 0
		for _, m := range merged {
			total += len(m)
		}
		if total > o.MaxPairs {
			return nil, fmt.Errorf("CommonNeighbors: %d distinct pairs > max %d: %w", total, o.MaxPairs, ErrResourceExhausted)
		}
	}

	return merged, nil
}

// newCommonNeighborTable flattens the merged shards into a sorted table.
func newCommonNeighborTable(shards []map[PairKey]CommonNeighborRecord) *CommonNeighborTable {
	total := 0
	for _, m := range shards {
		total += len(m)
	}
	entries := make([]CommonNeighborEntry, 0, total)
	for _, m := range shards {
		for k, r := range m {
			entries = append(entries, CommonNeighborEntry{Key: k, Record: r})
		}
	}
	slices.SortFunc(entries, func(a, b CommonNeighborEntry) int { return a.Key.Compare(b.Key) })

	return &CommonNeighborTable{entries: entries}
}
