// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_star.go - Star and Wheel. The hub is always the first node of the block.

package builder

// Star returns a Constructor for K_{1,n-1}: hub b joined to leaves b+1..b+n-1.
// Every pair of leaves shares exactly the hub.
//
// Errors: ErrTooFewVertices if n < MinStarNodes.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < MinStarNodes {
			return builderErrorf(methodStar, "n=%d < min=%d: %w", n, MinStarNodes, ErrTooFewVertices)
		}
		hub := c.reserve(n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			c.link(hub, leaf)
		}

		return nil
	}
}

// Wheel returns a Constructor for W_n: hub b, rim b+1..b+n-1 as a cycle,
// plus one spoke per rim node.
//
// Errors: ErrTooFewVertices if n < MinWheelNodes.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if n < MinWheelNodes {
			return builderErrorf(methodWheel, "n=%d < min=%d: %w", n, MinWheelNodes, ErrTooFewVertices)
		}
		hub := c.reserve(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			c.link(hub+1+i, hub+1+(i+1)%rim)
			c.link(hub, hub+1+i)
		}

		return nil
	}
}
