// SPDX-License-Identifier: MIT
// Package: netrel/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into a builderConfig passed by value (no global state).
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs, link IDs included.
//   - Constructors return sentinel errors; option constructors panic on meaningless input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors must validate parameters before touching g,
// draw every link reliability from cfg.reliabilityFn, and emit links in a
// documented order (link IDs follow emission order).
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
//
// Errors: wraps constructor errors; branch with errors.Is against builder
// sentinels (ErrTooFewVertices, ErrInvalidProbability, ...) or core sentinels.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("builder: BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("builder: BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Apply runs cons against an existing graph, e.g. to overlay fixtures.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("builder: Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("builder: Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("builder: Apply: %w", err)
		}
	}

	return nil
}

// addLink draws a reliability and adds from→to, wrapping failures with method.
func addLink(g *core.Graph, cfg builderConfig, method, from, to string) error {
	r := cfg.reliabilityFn(cfg.rng)
	if _, err := g.AddLink(from, to, r); err != nil {
		return fmt.Errorf("%s: AddLink(%s→%s, r=%g): %w", method, from, to, r, err)
	}

	return nil
}

// addSymmetric adds u–v, and v→u as a second link when g is directed.
func addSymmetric(g *core.Graph, cfg builderConfig, method, u, v string) error {
	if err := addLink(g, cfg, method, u, v); err != nil {
		return err
	}
	if g.Directed() {
		return addLink(g, cfg, method, v, u)
	}

	return nil
}

// addVertices inserts cfg.idFn(0..n-1) and returns the IDs.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
