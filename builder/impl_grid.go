// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_grid.go - 4-neighborhood lattice.

package builder

// Grid returns a Constructor for the rows×cols lattice. Cell (r,c) gets id
// b + r*cols + c and is joined to its right and lower neighbor.
//
// Errors: ErrTooFewVertices if rows or cols < MinGridDim.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(c *canvas, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return builderErrorf(methodGrid, "rows=%d, cols=%d < min=%d: %w",
				rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := c.reserve(rows * cols)
		for r := 0; r < rows; r++ {
			for col := 0; col < cols; col++ {
				id := base + r*cols + col
				if col+1 < cols {
					c.link(id, id+1)
				}
				if r+1 < rows {
					c.link(id, id+cols)
				}
			}
		}

		return nil
	}
}
