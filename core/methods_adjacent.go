// File: methods_adjacent.go
// Role: Neighborhood APIs (OutgoingLinks, NeighborIDs, Degree).
// Determinism:
//   - OutgoingLinks() preserves link insertion order; this order fixes path enumeration order.
//   - NeighborIDs() follows OutgoingLinks() order.
// Concurrency:
//   - Read operations hold muLinkAdj read lock.
// AI-HINT (file):
//   - Directed links appear only under their From vertex; undirected links under both endpoints.
//   - Returned slices are independent copies (no shared backing with the graph).

package core

// OutgoingLinks returns the arcs leaving v in insertion order.
//
// Neighborhood policy:
//   - Directed links: included only under e.From.
//   - Undirected links: included under both endpoints with the opposite endpoint as To.
//
// Implementation:
//   - Stage 1: Acquire muLinkAdj read lock.
//   - Stage 2: Copy adjacency[v] into a fresh slice.
//
// Returns:
//   - []Arc: nil for unknown or isolated vertices.
//
// Complexity:
//   - Time O(d), Space O(d), where d is the out-degree of v.
//
// AI-Hints:
//   - Path enumeration over a live Graph pays this copy per step; use Snapshot() for hot loops.
func (g *Graph) OutgoingLinks(v string) []Arc {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	arcs := g.adjacency[v]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]Arc, len(arcs))
	copy(out, arcs)

	return out
}

// NeighborIDs returns the neighbor IDs of v in adjacency order.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	arcs := g.OutgoingLinks(id)
	out := make([]string, len(arcs))
	for i, a := range arcs {
		out[i] = a.To
	}

	return out, nil
}

// Degree returns the out-degree of id under the neighborhood policy.
func (g *Graph) Degree(id string) (int, error) {
	if !g.HasVertex(id) {
		return 0, ErrVertexNotFound
	}
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
