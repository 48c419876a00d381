// Package paths enumerates simple (loop-free) paths on a core.Topology.
//
// What:
//
//   - Enumerator: a pull-model depth-first generator. First(source) yields
//     the trivial path [source]; each Next() yields the next simple path in
//     DFS order, either one link longer than the previous one or a new branch
//     found by backtracking. Paths to every reachable vertex are produced;
//     callers filter by Path.Last().
//   - All / Between: collectors returning independent copies, with
//     cancellation and depth limiting. Between prunes at the target.
//   - WithTerminal(v): never extend a path past v; paths ending at v keep
//     their order.
//   - Reachable: breadth-first reachability, used to short-circuit queries
//     whose target cannot be reached at all.
//
// Why:
//   - Exact reliability by sum of disjoint products starts from the complete
//     set of s→t paths; the enumeration order is deterministic so results and
//     traces are reproducible.
//
// Order:
//
//	For the diamond s→a, s→b, a→t, b→t, a→b (inserted in that order) the
//	enumerator yields:
//	  [s a] [s a t] [s a b] [s a b t] [s b] [s b t]
//
// Complexity:
//
//   - The number of simple paths is exponential in the worst case; the
//     enumerator itself uses O(L) memory for a path of L vertices.
//
// Errors:
//
//   - ErrGraphNil             topology is nil
//   - ErrStartVertexNotFound  source vertex not in topology
//   - context.Canceled        collector canceled via WithContext
package paths
