// Package netrel computes exact two-terminal network reliability: the
// probability that a target stays reachable from a source when every link
// fails independently with its own probability.
//
// 🚀 What is netrel?
//
//	A thread-safe graph model plus an exact engine built from three pieces:
//		• Path enumeration: stateful DFS over simple paths (First/Next)
//		• Cube algebra: sum of disjoint products (Classify, Reduce, Evaluate)
//		• Orchestration: per-pair queries, all-pairs fan-out, brute-force cross-check
//
// ✨ Why choose netrel?
//
//   - Exact: terms are pairwise disjoint, so their probabilities simply add up
//   - Deterministic: results depend only on the topology, never on scheduling
//   - Observable on demand: tracing and Prometheus metrics are opt-in
//
// Packages:
//
//	core/        Graph, Link (dense IDs), Arc, immutable Snapshot, Topology interface
//	paths/       simple-path Enumerator, Between/All collectors, Reachable
//	sdp/         Bit, Cube, Classify, Reduce, Probability, Evaluate
//	reliability/ STReliability, Compute, AllPairs, Exhaustive, Config, Metrics
//	builder/     deterministic fixtures: Path, Cycle, Complete, Grid, Parallel, Bridge, Ladder
//
// Quick ASCII example (the bridge network):
//
//	    ┌── A ──┐
//	    S   │   T
//	    └── B ──┘
//
//	with every link up with probability 0.9, R(S,T) = 0.97848.
//
//	go get github.com/katalvlaran/netrel
package netrel
