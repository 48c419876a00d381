// Package core defines the central Graph, Vertex, and Link types,
// and provides thread-safe primitives for building and querying
// network topologies whose links carry an up-probability.
//
// All Graph APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muLinkAdj for links and adjacency), so topologies can be assembled across
// goroutines with minimal contention. Reliability algorithms read the graph
// through the Topology interface; Snapshot gives them a lock-free immutable copy.
//
// This file declares Vertex, Link, Arc, Topology, Graph, GraphOption, LinkOption,
// sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrLinkNotFound        - requested link ID is outside [0, LinkCount).
//	ErrBadReliability      - reliability outside [0,1] or NaN.
//	ErrLoopNotAllowed      - self-loop (a loop never lies on a simple path).
//	ErrMultiEdgeNotAllowed - a second link between the same endpoints.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided Vertex has an empty ID.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLinkNotFound indicates an operation referenced a non-existent link ID.
	ErrLinkNotFound = errors.New("core: link not found")

	// ErrBadReliability indicates a link reliability outside the closed interval [0,1].
	ErrBadReliability = errors.New("core: reliability out of range [0,1]")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel link was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the topology.
//
// ID uniquely identifies this Vertex within its Graph.
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Link represents a network link between two vertices.
//
// A Link has a dense integer ID in [0, LinkCount) assigned in insertion order,
// endpoints From→To, an up-probability Reliability, and a Directed flag.
// An undirected link occupies a single ID and appears in the adjacency of both endpoints.
type Link struct {
	// ID is the dense slot index of this link; stable for the graph's lifetime.
	ID int

	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Reliability is the probability that this link is operational.
	Reliability float64

	// Directed indicates this link is one-way (true) or bidirectional (false).
	Directed bool
}

// Arc is one adjacency entry: the link taken and the neighbor it reaches.
type Arc struct {
	Link int    // link ID
	To   string // neighbor vertex ID
}

// Topology is the read-only view that path enumeration and reliability
// computation consume. Implementations must keep LinkCount and IDs stable
// for the duration of a computation.
type Topology interface {
	// LinkCount returns the number of link slots; IDs are dense in [0, LinkCount).
	LinkCount() int

	// OutgoingLinks returns the arcs leaving v in stable insertion order.
	// The caller must not modify the returned slice.
	OutgoingLinks(v string) []Arc

	// LinkID returns the link that leads from parent to child.
	LinkID(parent, child string) (int, bool)

	// LinkReliability returns the up-probability of link id.
	LinkReliability(id int) float64

	// HasVertex reports whether v exists.
	HasVertex(v string) bool

	// Vertices returns vertex IDs in insertion order.
	Vertices() []string
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default directedness for all new links
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// LinkOption configures properties of individual links when added.
type LinkOption func(*Link)

// WithLinkDirected overrides the Graph's default directedness for this link.
func WithLinkDirected(directed bool) LinkOption {
	return func(l *Link) { l.Directed = directed }
}

// Graph is the core in-memory topology.
//
// Links are never removed, which keeps link IDs dense and stable.
// muVert protects vertices and order; muLinkAdj protects links, adjacency and index.
type Graph struct {
	muVert    sync.RWMutex // guards vertices, order
	muLinkAdj sync.RWMutex // guards links, adjacency, index

	directed bool // default directedness

	vertices map[string]*Vertex // vertex ID → Vertex
	order    []string           // vertex IDs in insertion order
	links    []*Link            // link ID → Link

	// adjacency[from] lists outgoing arcs in insertion order.
	adjacency map[string][]Arc

	// index[from][to] = link ID; undirected links are registered both ways.
	index map[string]map[string]int
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is directed.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		directed:  true,
		vertices:  make(map[string]*Vertex),
		adjacency: make(map[string][]Arc),
		index:     make(map[string]map[string]int),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports the graph-wide default directedness applied to newly created links.
func (g *Graph) Directed() bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return g.directed
}
