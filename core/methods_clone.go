// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - Clone preserves vertex order, link IDs and adjacency order exactly.
// Concurrency:
//   - Read locks for snapshotting; no mutation of the source graph.

package core

// Clone returns a deep copy of the Graph: configuration, vertices, links, adjacency.
// Vertex Metadata maps are shared, not deep-copied.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	clone := NewGraph(WithDirected(g.directed))
	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	var (
		id string
		v  *Vertex
	)
	for id, v = range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}

	clone.links = make([]*Link, len(g.links))
	for i, l := range g.links {
		cp := *l
		clone.links[i] = &cp
	}
	var arcs []Arc
	for id, arcs = range g.adjacency {
		cp := make([]Arc, len(arcs))
		copy(cp, arcs)
		clone.adjacency[id] = cp
	}
	var (
		from  string
		inner map[string]int
	)
	for from, inner = range g.index {
		cp := make(map[string]int, len(inner))
		for to, lid := range inner {
			cp[to] = lid
		}
		clone.index[from] = cp
	}

	return clone
}
