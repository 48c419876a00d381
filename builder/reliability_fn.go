// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// reliability_fn.go - per-link up-probability policies.
//
// Every ReliabilityFn returns a value in [0,1]; a nil RNG falls back to
// DefaultLinkReliability for stochastic policies so fixtures stay usable
// without a seed.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultLinkReliability is the up-probability used when no policy is set.
const DefaultLinkReliability = 0.9

// ReliabilityFn draws one link reliability.
type ReliabilityFn func(rng *rand.Rand) float64

// DefaultReliabilityFn returns DefaultLinkReliability.
func DefaultReliabilityFn(_ *rand.Rand) float64 {
	return DefaultLinkReliability
}

// ConstantReliabilityFn always returns r. Panics if r ∉ [0,1].
func ConstantReliabilityFn(r float64) ReliabilityFn {
	if !(r >= 0 && r <= 1) {
		panic(fmt.Sprintf("ConstantReliabilityFn: r must be in [0,1], got %g", r))
	}

	return func(_ *rand.Rand) float64 {
		return r
	}
}

// UniformReliabilityFn samples U[min,max]. Panics unless 0 ≤ min ≤ max ≤ 1.
func UniformReliabilityFn(min, max float64) ReliabilityFn {
	if !(min >= 0 && min <= max && max <= 1) {
		panic(fmt.Sprintf("UniformReliabilityFn: require 0 ≤ min ≤ max ≤ 1, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultLinkReliability
		}
		if max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}
