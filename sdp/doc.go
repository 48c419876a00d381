// Package sdp implements the cube algebra behind sum-of-disjoint-products
// (SDP) reliability: ternary product terms over link-up literals and the
// operator that rewrites overlapping terms into mutually exclusive ones.
//
// What:
//
//   - Bit / Cube: one position per link, Up, DontCare, or Down(group). A Down
//     group g reads "not every link labeled Down(g) is up"; Down(0) is a
//     plain "this link is down" literal.
//   - PathToCube / FromPath: the term of a path (its links Up).
//   - Classify: Subset, Disjoint, X1 or SplitRecursive(u), in strict
//     precedence order.
//   - Reduce / Reducer: removes from a worklist everything another term
//     already covers, returning disjoint terms; Reducer counts relations.
//   - Probability / Evaluate: exact term and sum probabilities.
//   - AreDisjoint: exact pairwise disjointness test for verification.
//
// Notation:
//
//	Cube.String renders link 0 first, e.g. "1 x 0:1 0:1" means link 0 up,
//	link 1 irrelevant, and links 2,3 not both up.
//
// Example:
//
//	P1 = "1 1 x x"   (links 0,1)
//	P2 = "x x 1 1"   (links 2,3)
//	Reduce([P2], P1) = ["0:1 0:1 1 1"]  ⇒ P(P1) + P(P2 ∧ ¬P1)
//
// Errors:
//
//   - ErrBadCube     malformed notation passed to Parse
//   - panics         cube length mismatch, link ID outside the cube
package sdp
