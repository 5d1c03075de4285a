// SPDX-License-Identifier: MIT

// Package builder assembles deterministic fixture graphs for tests,
// benchmarks and the synthetic inputs of the linkpred CLI.
//
// Every Constructor reserves a fresh block of dense node ids on a shared
// canvas and emits undirected edges inside that block. Constructors compose
// in call order, so
//
//	builder.BuildGraph(nil, builder.Path(3), builder.Star(4), builder.Bridge(2, 3))
//
// yields nodes 0..2 for the path, 3..6 for the star (hub 3), and one extra
// edge joining the two blocks.
//
// The package offers:
//
//   - Orchestrators: BuildEdges (raw stream) and BuildGraph (frozen core.Graph).
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid.
//   - Stochastic: RandomSparse (Erdős–Rényi G(n,p)), seeded by WithSeed/WithRand.
//   - Glue: Bridge joins two nodes that earlier constructors already created.
//
// Guarantees:
//
//   - Determinism: equal constructors, options and seed produce equal edges.
//   - Constructors never panic; they return sentinel errors wrapped with the
//     constructor name. Option constructors panic on nil arguments.
//   - Output is always simple: no self-loops, and duplicates collapse when
//     the stream is frozen by core.Build.
package builder
