// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn          = DefaultIDFn        ("0","1","2",...)
//   - rng           = nil                (pure/deterministic unless seeded)
//   - reliabilityFn = DefaultReliabilityFn (constant DefaultLinkReliability)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand
	// Up-probability generator, called once per emitted link.
	reliabilityFn ReliabilityFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:          DefaultIDFn,
		reliabilityFn: DefaultReliabilityFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
