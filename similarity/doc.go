// Package similarity evaluates eleven local similarity indices for link
// prediction on top of the cached aggregates of package aggregate.
//
//	| Metric | Value                                   | Domain                 |
//	|--------|-----------------------------------------|------------------------|
//	| CN     | cn(x,y)                                 | pairs with cn ≥ 1      |
//	| AA     | Σ_z 1/ln(deg(z))                        | pairs with cn ≥ 1      |
//	| RA     | Σ_z 1/deg(z)                            | pairs with cn ≥ 1      |
//	| RA_CNI | ra(x,y) + cni(x,y)                      | pairs with cn ≥ 1      |
//	| PA     | deg(x)·deg(y)                           | observed edges only    |
//	| JC     | cn/(deg(x)+deg(y)−cn)                   | pairs with cn ≥ 1      |
//	| SA     | cn/√(deg(x)·deg(y))                     | pairs with cn ≥ 1      |
//	| SO     | 2·cn/(deg(x)+deg(y))                    | pairs with cn ≥ 1      |
//	| HPI    | cn/min(deg(x),deg(y))                   | pairs with cn ≥ 1      |
//	| HDI    | cn/max(deg(x),deg(y))                   | pairs with cn ≥ 1      |
//	| LLHN   | cn/(deg(x)·deg(y))                      | pairs with cn ≥ 1      |
//
// A pair outside a metric's domain is absent from its table, never present
// with value 0. PA is the only metric that reads the edge set instead of the
// common-neighbor table, so a connected pair without shared neighbors shows
// up in PA only, and a shared-neighbor pair without an edge never does.
//
// The six ratio metrics (JC through LLHN) are produced together in one pass
// over the common-neighbor table and cached on the Battery. RA_CNI needs an
// InteractionTable; Prepare computes it lazily on the first RA_CNI request.
//
// Every table is sorted by (Source, Target), so repeated runs emit identical
// rows whatever the worker and shard settings.
//
// Errors:
//
//   - *ScoreError wrapping ErrZeroDenominator or ErrNonFinite; fatal for the run.
//   - ErrMissingInteraction, ErrUnknownMetric, ErrOptionViolation.
package similarity
