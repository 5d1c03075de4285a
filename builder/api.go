// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// api.go - public entry points for the builder package.
//
// Design contract:
//   - Two orchestrators: BuildEdges (raw stream) and BuildGraph (frozen graph).
//   - Options resolve into an immutable builderConfig; no global state.
//   - Determinism: same options, seed and constructor order give identical edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkpred/core"
)

// Constructor reserves a block of nodes on the canvas and emits edges.
// Constructors validate parameters first and return sentinel errors;
// they never panic.
type Constructor func(c *canvas, cfg builderConfig) error

// BuildEdges resolves bopts, runs cons in order and returns the node count
// and the raw edge stream. Edges are in emission order and may repeat when
// a Bridge duplicates an existing edge.
//
// Complexity: Σ cost of each constructor.
func BuildEdges(bopts []BuilderOption, cons ...Constructor) (int, []core.Edge, error) {
	cfg := newBuilderConfig(bopts...)
	c := &canvas{}
	for i, fn := range cons {
		if fn == nil {
			return 0, nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(c, cfg); err != nil {
			return 0, nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return c.n, c.edges, nil
}

// BuildGraph runs BuildEdges and freezes the result with core.Build.
//
// Errors: any constructor sentinel wrapped with "BuildGraph: ", or
// ErrConstructFailed when freezing fails.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	n, edges, err := BuildEdges(bopts, cons...)
	if err != nil {
		return nil, err
	}
	g, err := core.Build(n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBuildGraph, ErrConstructFailed, err)
	}

	return g, nil
}
