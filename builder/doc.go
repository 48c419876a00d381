// Package builder provides deterministic fixture topologies for reliability
// work, in the "functional options + Constructor" style: BuildGraph creates a
// core.Graph and applies Constructors in order, each drawing link
// reliabilities from a configurable policy.
//
// Topologies:
//   - Path(n)            series system P_n
//   - Cycle(n)           ring C_n
//   - Complete(n)        K_n (mirrored links when directed)
//   - Grid(rows, cols)   4-neighborhood grid with IDs "r,c"
//   - Parallel(k, l)     k disjoint S→T paths of l links each
//   - Bridge()           the 5-link bridge S, A, B, T
//   - Ladder(n)          n-rung ladder between S and T
//   - RandomSparse(n, p) Erdős–Rényi-like graph (needs WithSeed/WithRand)
//
// Configuration:
//   - WithIDScheme / WithSymbolIDs / WithSymbNumb: vertex IDs. Terminal
//     fixtures reserve SourceID "S" and TargetID "T"; schemes must not produce them.
//   - WithReliabilityFn / WithConstantReliability / WithUniformReliability:
//     per-link up-probability (default DefaultLinkReliability).
//   - WithSeed / WithRand: randomness for RandomSparse and uniform policies.
//
// Guarantees:
//   - Same inputs, options and seed ⇒ identical graphs, link IDs included.
//   - Option constructors panic on meaningless input; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) or wrapped core errors.
package builder
