// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible link independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j (loops are never admissible).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Each accepted link draws its reliability right after its Bernoulli trial,
//     so the structure and the reliabilities come from one stream.
//
// Complexity: O(n²) trials.
//
// Determinism: stable trial order (i asc, then j asc); identical output for a
// fixed seed and options.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

const (
	methodRandomSparse      = "builder: RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent link probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters before any side effect.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices 0..n-1 via cfg.idFn.
		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		// 3) Trials in stable order.
		directed := g.Directed()
		var i, j int
		for i = 0; i < n; i++ {
			j = i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !accept(cfg, p) {
					continue
				}
				if err = addLink(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// accept runs one Bernoulli(p) trial; p ∈ {0,1} needs no RNG.
func accept(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
