// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_random_sparse.go - Erdős–Rényi G(n,p) and the Bridge glue constructor.

package builder

import "math"

// RandomSparse returns a Constructor for G(n,p): every unordered pair
// {i,j}, i<j, is kept independently with probability p. Pairs are drawn in
// lexicographic order, so a fixed seed fixes the edge set.
//
// p == 0 and p == 1 are deterministic and need no RNG.
//
// Errors (in this priority):
//   - ErrTooFewVertices if n < MinRandomNodes.
//   - ErrInvalidProbability if p ∉ [0,1].
//   - ErrNeedRandSource if 0 < p < 1 and no RNG was configured.
//
// Complexity: O(n²) draws.
func RandomSparse(n int, p float64) Constructor {
	return func(c *canvas, cfg builderConfig) error {
		if n < MinRandomNodes {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w", n, MinRandomNodes, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability || math.IsNaN(p) {
			return builderErrorf(methodRandomSparse, "p=%g: %w", p, ErrInvalidProbability)
		}
		deterministic := p == MinProbability || p == MaxProbability
		if !deterministic && cfg.rng == nil {
			return builderErrorf(methodRandomSparse, "p=%g: %w", p, ErrNeedRandSource)
		}

		base := c.reserve(n)
		if p == MinProbability {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if deterministic || cfg.rng.Float64() < p {
					c.link(base+i, base+j)
				}
			}
		}

		return nil
	}
}

// Bridge returns a Constructor that joins two nodes created by earlier
// constructors. It reserves no nodes.
//
// Errors: ErrUnknownNode if u or v is not yet on the canvas, or u == v.
// Complexity: O(1).
func Bridge(u, v int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if u < 0 || u >= c.n || v < 0 || v >= c.n {
			return builderErrorf(methodBridge, "{%d,%d} with %d nodes placed: %w", u, v, c.n, ErrUnknownNode)
		}
		if u == v {
			return builderErrorf(methodBridge, "{%d,%d} is a self-loop: %w", u, v, ErrUnknownNode)
		}
		c.link(u, v)

		return nil
	}
}
