// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor (ring).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits links i → (i+1) mod n for i=0..n-1 in that order.
//   - Undirected: any two vertices are joined by the two arcs of the ring,
//     so R(u,v) = 1 - (1 - Π arcA)(1 - Π arcB).
//   - Directed: a one-way ring; exactly one path between any pair.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

const (
	methodCycle   = "builder: Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addLink(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
