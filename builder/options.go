// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// options.go - functional options for builder configuration.
//
// Option constructors panic on meaningless input (nil functions, nil RNG,
// probabilities outside [0,1]); constructors themselves only return errors.

package builder

import (
	"math/rand"
)

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID strategy. Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand shares r across constructors. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed installs a fresh RNG seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithReliabilityFn sets the per-link reliability policy. Panics if fn is nil.
func WithReliabilityFn(fn ReliabilityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithReliabilityFn(nil)")
	}
	return func(c *builderConfig) {
		c.reliabilityFn = fn
	}
}

// WithConstantReliability gives every link reliability r.
func WithConstantReliability(r float64) BuilderOption {
	return WithReliabilityFn(ConstantReliabilityFn(r))
}

// WithUniformReliability draws reliabilities from U[min,max].
func WithUniformReliability(min, max float64) BuilderOption {
	return WithReliabilityFn(UniformReliabilityFn(min, max))
}

// WithSymbolIDs uses "A","B",...; see SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// WithSymbNumb uses prefix+index IDs, e.g. "v0","v1".
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
