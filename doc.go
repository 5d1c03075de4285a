// Package linkpred is a batch engine for neighborhood-based link prediction:
// given an undirected graph, it scores node pairs by how likely an edge
// between them is, using eleven classic similarity indices.
//
// 🚀 What is linkpred?
//
//	A parallel, deterministic scorer built around one shared aggregation:
//		• Counting indices: CN, AA, RA, RA_CNI
//		• Degree product: PA (scored on the existing edges)
//		• Normalized indices: JC, SA, SO, HPI, HDI, LLHN
//		• Preprocessing: dense renumbering, largest component, label remap
//		• Export: CSV, msgpack, YAML manifest, prometheus textfile
//
// ✨ Why linkpred?
//
//   - One pass - common neighbors are enumerated once per run, every metric
//     is derived from the same table
//   - Deterministic - identical output bytes for any worker or shard count
//   - Strict - invalid input and undefined arithmetic are errors, never NaN
//
// Packages:
//
//	core/       - immutable CSR Graph over dense ids, Build and FromAdjacency
//	builder/    - deterministic graph constructors for tests and benchmarks
//	bfs/        - breadth-first search and connected components
//	edgelist/   - edge list and node file parsing
//	preprocess/ - renumbering, largest component, label remapping
//	aggregate/  - sharded common-neighbor and interaction aggregation
//	similarity/ - the metric battery and result tables
//	export/     - sinks (CSV, msgpack, memory) and the run manifest
//	config/     - viper configuration and zerolog logger
//	metrics/    - prometheus collectors for a run
//	pipeline/   - one end-to-end run
//	cmd/linkpred - the CLI
//
// Quick ASCII example:
//
//	    0───1
//	     \ /
//	      2───3
//
//	CN(0,1)=CN(0,3)=CN(1,3)=1 through node 2, PA(2,3)=3·1=3.
//
//	go install github.com/katalvlaran/linkpred/cmd/linkpred@latest
package linkpred
