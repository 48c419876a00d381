// Package core provides a thread-safe in-memory network topology with a
// minimal, composable API surface tuned for reliability analysis.
//
// The Graph G = (V,L) supports:
//
//   - Directed vs. undirected links (WithDirected, per-link WithLinkDirected)
//   - Dense integer link IDs in [0, LinkCount), assigned in insertion order
//   - Per-link up-probability (Reliability ∈ [0,1])
//   - Adjacency lists in stable insertion order
//   - Separate sync.RWMutex for vertices (muVert) and links+adjacency (muLinkAdj)
//
// Why dense IDs?
//
//	Reliability terms are ternary cubes with one slot per link. A link ID is
//	the slot index, so IDs must never be reused or compacted. For that reason
//	there is no RemoveLink.
//
// Why no multi-edges or loops?
//
//	Paths are node sequences; the link between two consecutive nodes must be
//	unique for the sequence to name a single set of links. A self-loop can
//	never appear on a simple path.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	Vertices() []string                   // O(V), insertion order
//
//	// Link lifecycle
//	AddLink(from, to string, r float64, opts ...LinkOption) (int, error) // O(1)
//	SetReliability(id int, r float64) error                              // O(1)
//	LinkID(parent, child string) (int, bool)                             // O(1)
//	OutgoingLinks(v string) []Arc                                        // O(d)
//
//	// Views
//	Clone() *Graph        // deep copy
//	Snapshot() *Snapshot  // immutable, lock-free Topology
//
// Both *Graph and *Snapshot implement Topology, the read-only contract
// consumed by the paths, sdp and reliability packages.
//
// Example:
//
//	g := core.NewGraph(core.WithDirected(false))
//	_, _ = g.AddLink("s", "a", 0.9)
//	_, _ = g.AddLink("a", "t", 0.8)
//	topo := g.Snapshot()
package core
