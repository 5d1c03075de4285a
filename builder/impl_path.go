// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_path.go - Path and Cycle.

package builder

// Path returns a Constructor for the simple path P_n: b, b+1, ..., b+n-1.
//
// Errors: ErrTooFewVertices if n < MinPathNodes.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < MinPathNodes {
			return builderErrorf(methodPath, "n=%d < min=%d: %w", n, MinPathNodes, ErrTooFewVertices)
		}
		base := c.reserve(n)
		for i := 0; i < n-1; i++ {
			c.link(base+i, base+i+1)
		}

		return nil
	}
}

// Cycle returns a Constructor for the ring C_n: a path closed by {b+n-1, b}.
//
// Errors: ErrTooFewVertices if n < MinCycleNodes.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < MinCycleNodes {
			return builderErrorf(methodCycle, "n=%d < min=%d: %w", n, MinCycleNodes, ErrTooFewVertices)
		}
		base := c.reserve(n)
		for i := 0; i < n; i++ {
			c.link(base+i, base+(i+1)%n)
		}

		return nil
	}
}
