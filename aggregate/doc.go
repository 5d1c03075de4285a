// Package aggregate computes the shared, cached intermediates every
// similarity index in linkpred is reduced from.
//
// Two aggregates are built over an immutable *core.Graph:
//
//   - CommonNeighbors: one exact open-triangle enumeration. For every node z
//     and every unordered pair {x,y} ⊂ N(z) it accumulates
//     cn += 1, aa_sum += 1/ln(deg(z)), ra_sum += 1/deg(z).
//     Total work is Σ_z C(deg(z),2) (core.Graph.Wedges), dominated by hubs;
//     this is the principal scaling risk and no sampling is ever applied.
//
//   - Interactions: for every pair already present in the CommonNeighborTable,
//     cni(x,y) = Σ_{a∈N(x), b∈N(y)} |1/deg(a) − 1/deg(b)| over the full cross
//     product of both neighbor sets. gamma is evaluated on demand from per-node
//     degree profiles and never materialized for all node pairs.
//
// # Parallelism
//
// The node set is cut into fixed-size chunks. Workers (errgroup, bounded by
// Options.Workers) enumerate chunks into private maps, each split into
// Options.Shards shards keyed by xxhash(PairKey). Shard i of every chunk is
// then summed, in chunk order, into final shard i; the shards are merged in
// parallel. Because chunk boundaries do not depend on Workers or Shards, the
// floating-point association of every sum is fixed and the tables are
// bit-identical for any parallel configuration.
//
// # Absence semantics
//
// A CommonNeighborTable holds a record iff cn ≥ 1. Lookups of pairs without a
// shared neighbor report ok == false; they are never stored as zero records.
//
// # Errors
//
//	ErrSelfPair            - a PairKey with identical endpoints was requested.
//	ErrUndefinedLogDegree  - a shared neighbor of degree < 2 (ln(deg) ≤ 0); wrapped in *DegreeError.
//	ErrResourceExhausted   - the distinct-pair count exceeded Options.MaxPairs.
//	ErrOptionViolation     - an Option received a meaningless value.
//	ErrTableMismatch       - an InteractionTable was paired with a different CommonNeighborTable.
//	context.Canceled / context.DeadlineExceeded - the run was aborted; partial state is discarded.
package aggregate
