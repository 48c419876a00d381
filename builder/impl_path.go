// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_path.go - implementation of Path(n) constructor (series system).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//   - Emits links (i-1) → i for i=1..n-1; link i-1 joins vertex i-1 and i.
//   - R(first, last) is the product of the n-1 link reliabilities.
//
// Complexity: O(n) time, O(n) space for the ID slice.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

const (
	methodPath   = "builder: Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addLink(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
