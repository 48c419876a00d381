// File: snapshot.go
// Role: Immutable, lock-free views of a Graph for read-heavy algorithms.
// Determinism:
//   - Preserves vertex order, link IDs, reliabilities and adjacency order.
// Concurrency:
//   - Read locks on source while copying; the Snapshot itself is never mutated,
//     so any number of goroutines may read it concurrently.
// AI-HINT (file):
//   - Snapshots do NOT track later mutations of the source Graph.
//   - Prefer a Snapshot for all-pairs reliability: no lock traffic on the hot path.

package core

import "fmt"

// Snapshot is a frozen copy of a Graph implementing Topology without locks.
type Snapshot struct {
	directed    bool
	vertices    []string
	present     map[string]struct{}
	links       []Link
	reliability []float64
	adjacency   map[string][]Arc
	index       map[string]map[string]int
}

// compile-time check
var (
	_ Topology = (*Graph)(nil)
	_ Topology = (*Snapshot)(nil)
)

// Snapshot returns an immutable copy of g.
//
// Implementation:
//   - Stage 1: Under muVert read lock, copy vertex order.
//   - Stage 2: Under muLinkAdj read lock, copy links, reliabilities, adjacency and index.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func (g *Graph) Snapshot() *Snapshot {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	s := &Snapshot{
		directed:    g.directed,
		vertices:    make([]string, len(g.order)),
		present:     make(map[string]struct{}, len(g.order)),
		links:       make([]Link, len(g.links)),
		reliability: make([]float64, len(g.links)),
		adjacency:   make(map[string][]Arc, len(g.adjacency)),
		index:       make(map[string]map[string]int, len(g.index)),
	}
	copy(s.vertices, g.order)
	for _, id := range g.order {
		s.present[id] = struct{}{}
	}
	for i, l := range g.links {
		s.links[i] = *l
		s.reliability[i] = l.Reliability
	}
	for id, arcs := range g.adjacency {
		cp := make([]Arc, len(arcs))
		copy(cp, arcs)
		s.adjacency[id] = cp
	}
	for from, inner := range g.index {
		cp := make(map[string]int, len(inner))
		for to, lid := range inner {
			cp[to] = lid
		}
		s.index[from] = cp
	}

	return s
}

// Directed reports the default directedness of the source graph.
func (s *Snapshot) Directed() bool { return s.directed }

// LinkCount returns the number of link slots.
func (s *Snapshot) LinkCount() int { return len(s.links) }

// OutgoingLinks returns the arcs leaving v in insertion order.
// The slice is shared; callers must not modify it.
func (s *Snapshot) OutgoingLinks(v string) []Arc { return s.adjacency[v] }

// LinkID returns the link leading from parent to child, if any.
func (s *Snapshot) LinkID(parent, child string) (int, bool) {
	id, ok := s.index[parent][child]
	return id, ok
}

// LinkReliability returns the up-probability of link id; it panics if id is out of range.
func (s *Snapshot) LinkReliability(id int) float64 {
	if id < 0 || id >= len(s.reliability) {
		panic(fmt.Sprintf("core: Snapshot.LinkReliability(%d): link count is %d", id, len(s.reliability)))
	}

	return s.reliability[id]
}

// HasVertex reports whether v exists in the snapshot.
func (s *Snapshot) HasVertex(v string) bool {
	_, ok := s.present[v]
	return ok
}

// Vertices returns a copy of the vertex IDs in insertion order.
func (s *Snapshot) Vertices() []string {
	out := make([]string, len(s.vertices))
	copy(out, s.vertices)

	return out
}

// Links returns a copy of all links ordered by ID.
func (s *Snapshot) Links() []Link {
	out := make([]Link, len(s.links))
	copy(out, s.links)

	return out
}

// Reliabilities returns a copy of the per-link up-probabilities indexed by link ID.
func (s *Snapshot) Reliabilities() []float64 {
	out := make([]float64, len(s.reliability))
	copy(out, s.reliability)

	return out
}
