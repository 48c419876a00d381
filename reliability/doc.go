// Package reliability computes exact two-terminal network reliability: the
// probability that a target vertex t is reachable from a source s when every
// link fails independently with its own probability.
//
// The engine enumerates simple s→t paths with paths.Enumerator and turns the
// union of their "all links up" events into a sum of pairwise disjoint
// products using the sdp cube algebra:
//
//	history, state := [], []
//	for each path P ending at t (enumeration order):
//	    M := term(P)
//	    W := [M]
//	    for each H in history: W = Reduce(W, H)
//	    state  += W
//	    history += M
//	R(s,t) = Evaluate(state)
//
// Entry points:
//   - STReliability(topo, s, t, opts...)  float64 result
//   - Compute(topo, s, t, opts...)        Result with terms and Stats
//   - AllPairs / Queries                  parallel fan-out (errgroup)
//   - Exhaustive(topo, s, t)              brute force over link states
//   - VerifyDisjoint(terms)               pairwise disjointness check
//
// Instrumentation is opt-in and has no globals: WithTrace(TraceSink) receives
// per-path PathStats (SlogTrace adapts a *slog.Logger), WithMetrics(*Metrics)
// updates Prometheus collectors, and Config loads limits from YAML.
//
// Complexity: the number of simple paths and of disjoint terms can both grow
// exponentially with graph size. WithMaxPaths and WithMaxTerms bound the work
// and report ErrPathLimit / ErrTermLimit when exceeded.
package reliability
