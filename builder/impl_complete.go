// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   • Emits each unordered pair {i,j} with i<j exactly once in lexicographic
//     order, followed by j→i when g.Directed() (two independent links).
//
// Complexity:
//   • Time: O(n²) links.
//   • Space: O(n) for the ID slice.
//
// K_n has Σ_{k=0}^{n-2} (n-2)!/(n-2-k)! simple paths between two vertices,
// so it is the standard stress fixture for path-based engines.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

const (
	methodComplete   = "builder: Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addSymmetric(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
