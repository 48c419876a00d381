// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_terminal.go - fixtures with fixed terminals SourceID and TargetID:
// Parallel(k, length), Bridge() and Ladder(n).
//
// Intermediate vertices take IDs from cfg.idFn using one running index, so
// fixtures compose with distinct ID schemes. Links are emitted in the order
// documented on each constructor; link IDs follow that order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

const (
	methodParallel = "builder: Parallel"
	methodBridge   = "builder: Bridge"
	methodLadder   = "builder: Ladder"

	minParallelPaths  = 1
	minParallelLength = 1
	minLadderRungs    = 1
)

// Parallel returns a Constructor that joins SourceID to TargetID by k
// internally vertex-disjoint paths of length links each, emitted path by
// path from S to T. With length == 1 only k == 1 is valid, since a second
// direct S–T link would be a multi-edge.
//
// R(S,T) = 1 - Π_paths (1 - Π_links r).
func Parallel(k, length int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if k < minParallelPaths {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodParallel, k, minParallelPaths, ErrTooFewVertices)
		}
		if length < minParallelLength {
			return fmt.Errorf("%s: length=%d < min=%d: %w", methodParallel, length, minParallelLength, ErrTooFewVertices)
		}
		if length == 1 && k > 1 {
			return fmt.Errorf("%s: k=%d direct links: %w", methodParallel, k, core.ErrMultiEdgeNotAllowed)
		}

		next := 0
		for p := 0; p < k; p++ {
			prev := SourceID
			for l := 1; l < length; l++ {
				v := cfg.idFn(next)
				next++
				if err := addLink(g, cfg, methodParallel, prev, v); err != nil {
					return err
				}
				prev = v
			}
			if err := addLink(g, cfg, methodParallel, prev, TargetID); err != nil {
				return err
			}
		}

		return nil
	}
}

// Bridge returns a Constructor for the classic bridge network on S, A, B, T
// (A = cfg.idFn(0), B = cfg.idFn(1)), emitting links in the order
//
//	0: S–A   1: S–B   2: A–B   3: A–T   4: B–T
//
// and, in a directed graph, 5: B→A so the middle link works both ways.
// Bridge is the smallest network that is neither series-parallel reducible
// nor covered by disjoint paths.
func Bridge() Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		a, b := cfg.idFn(0), cfg.idFn(1)
		for _, e := range [][2]string{{SourceID, a}, {SourceID, b}, {a, b}, {a, TargetID}, {b, TargetID}} {
			if err := addLink(g, cfg, methodBridge, e[0], e[1]); err != nil {
				return err
			}
		}
		if g.Directed() {
			return addLink(g, cfg, methodBridge, b, a)
		}

		return nil
	}
}

// Ladder returns a Constructor for a ladder of n rungs between SourceID and
// TargetID. Rails are top vertices cfg.idFn(0..n-1) and bottom vertices
// cfg.idFn(n..2n-1). Emission order:
//
//	S–top0, S–bottom0,
//	for i in 0..n-1: rung top_i–bottom_i, then rails top_i–top_{i+1}, bottom_i–bottom_{i+1},
//	top_{n-1}–T, bottom_{n-1}–T.
//
// Rungs and rails are mirrored when g is directed.
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minLadderRungs {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLadder, n, minLadderRungs, ErrTooFewVertices)
		}
		top := make([]string, n)
		bottom := make([]string, n)
		for i := 0; i < n; i++ {
			top[i], bottom[i] = cfg.idFn(i), cfg.idFn(n+i)
		}

		if err := addLink(g, cfg, methodLadder, SourceID, top[0]); err != nil {
			return err
		}
		if err := addLink(g, cfg, methodLadder, SourceID, bottom[0]); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addSymmetric(g, cfg, methodLadder, top[i], bottom[i]); err != nil {
				return err
			}
			if i+1 == n {
				break
			}
			if err := addSymmetric(g, cfg, methodLadder, top[i], top[i+1]); err != nil {
				return err
			}
			if err := addSymmetric(g, cfg, methodLadder, bottom[i], bottom[i+1]); err != nil {
				return err
			}
		}
		if err := addLink(g, cfg, methodLadder, top[n-1], TargetID); err != nil {
			return err
		}

		return addLink(g, cfg, methodLadder, bottom[n-1], TargetID)
	}
}
