// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Vertex IDs use the fixed scheme "r,c" (row-major order), an exception
//     to cfg.idFn that keeps coordinates explicit.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) in row-major order emit Right then Bottom when present;
//     in directed graphs each is followed by its reverse link.
//
// Complexity: O(rows*cols).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/netrel/core"
)

const (
	methodGrid = "builder: Grid"
	minGridDim = 1
)

// GridID returns the vertex ID of cell (r,c).
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		var r, c int
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				if err := g.AddVertex(GridID(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, GridID(r, c), err)
				}
			}
		}
		for r = 0; r < rows; r++ {
			for c = 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addSymmetric(g, cfg, methodGrid, u, GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addSymmetric(g, cfg, methodGrid, u, GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
