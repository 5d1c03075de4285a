// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_complete.go - Complete and CompleteBipartite.

package builder

// Complete returns a Constructor for K_n, emitting {i,j} for i<j in
// lexicographic order.
//
// Errors: ErrTooFewVertices if n < MinCompleteNodes.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < MinCompleteNodes {
			return builderErrorf(methodComplete, "n=%d < min=%d: %w", n, MinCompleteNodes, ErrTooFewVertices)
		}
		base := c.reserve(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				c.link(base+i, base+j)
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{m,n}: the left side is
// b..b+m-1, the right side b+m..b+m+n-1, and every cross pair is an edge.
// Nodes on the same side share all n (resp. m) neighbors.
//
// Errors: ErrTooFewVertices if m or n < MinPartitionSize.
// Complexity: O(m·n).
func CompleteBipartite(m, n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if m < MinPartitionSize || n < MinPartitionSize {
			return builderErrorf(methodCompleteBipartite, "m=%d, n=%d < min=%d: %w",
				m, n, MinPartitionSize, ErrTooFewVertices)
		}
		left := c.reserve(m + n)
		right := left + m
		for i := 0; i < m; i++ {
			for j := 0; j < n; j++ {
				c.link(left+i, right+j)
			}
		}

		return nil
	}
}
