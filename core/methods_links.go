// File: methods_links.go
// Role: Link lifecycle & queries: AddLink/SetReliability/Link/Links/LinkCount/LinkID/LinkReliability.
// Determinism:
//   - Link IDs are dense and assigned in insertion order (0, 1, 2, ...).
//   - Links() returns links ordered by ID.
// Concurrency:
//   - Mutations under muLinkAdj write lock.
//   - Read queries under muLinkAdj read lock.
// AI-HINT (file):
//   - There is no RemoveLink: IDs index cube slots and must stay dense.
//   - Reliability is validated here, at construction time; algorithms trust it.

package core

import (
	"fmt"
	"math"
)

// validReliability reports whether r is a probability in [0,1].
func validReliability(r float64) bool {
	return !math.IsNaN(r) && r >= 0 && r <= 1
}

// AddLink creates a new link from→to with the given up-probability and returns its ID.
//
// AI-HINT:
//   - from==to returns ErrLoopNotAllowed.
//   - A second link between the same endpoints returns ErrMultiEdgeNotAllowed;
//     for undirected links the check covers both orientations.
//   - reliability outside [0,1] returns ErrBadReliability.
//
// Steps:
//  1. Validate IDs, loops, reliability.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muLinkAdj, build the Link with the graph default directedness, apply opts.
//  4. Check the multi-edge constraint against the index.
//  5. Assign ID = len(links); store; append adjacency; register index.
//  6. If !Directed ⇒ mirror adjacency and index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddLink(from, to string, reliability float64, opts ...LinkOption) (int, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	if from == to {
		return 0, ErrLoopNotAllowed
	}
	if !validReliability(reliability) {
		return 0, fmt.Errorf("core: AddLink(%s→%s, r=%g): %w", from, to, reliability, ErrBadReliability)
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return 0, err
	}
	if err := g.AddVertex(to); err != nil {
		return 0, err
	}

	directed := g.Directed()

	// 3) Insert link under lock
	g.muLinkAdj.Lock()
	defer g.muLinkAdj.Unlock()

	l := &Link{From: from, To: to, Reliability: reliability, Directed: directed}
	var opt LinkOption
	for _, opt = range opts {
		opt(l)
	}

	// 4) Multi-edge check; an undirected link claims both orientations.
	if _, dup := g.index[from][to]; dup {
		return 0, ErrMultiEdgeNotAllowed
	}
	if !l.Directed {
		if _, dup := g.index[to][from]; dup {
			return 0, ErrMultiEdgeNotAllowed
		}
	}

	// 5) Store and link adjacency
	l.ID = len(g.links)
	g.links = append(g.links, l)
	g.adjacency[from] = append(g.adjacency[from], Arc{Link: l.ID, To: to})
	registerIndex(g, from, to, l.ID)

	// 6) Mirror undirected
	if !l.Directed {
		g.adjacency[to] = append(g.adjacency[to], Arc{Link: l.ID, To: from})
		registerIndex(g, to, from, l.ID)
	}

	return l.ID, nil
}

// registerIndex records index[from][to] = id. Caller holds muLinkAdj.
func registerIndex(g *Graph, from, to string, id int) {
	inner, ok := g.index[from]
	if !ok {
		inner = make(map[string]int)
		g.index[from] = inner
	}
	inner[to] = id
}

// SetReliability replaces the up-probability of link id.
//
// Errors:
//   - ErrLinkNotFound: id outside [0, LinkCount).
//   - ErrBadReliability: r outside [0,1].
func (g *Graph) SetReliability(id int, r float64) error {
	if !validReliability(r) {
		return fmt.Errorf("core: SetReliability(%d, r=%g): %w", id, r, ErrBadReliability)
	}
	g.muLinkAdj.Lock()
	defer g.muLinkAdj.Unlock()
	if id < 0 || id >= len(g.links) {
		return ErrLinkNotFound
	}
	g.links[id].Reliability = r

	return nil
}

// Link returns a copy of the link with the given ID.
func (g *Graph) Link(id int) (Link, error) {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()
	if id < 0 || id >= len(g.links) {
		return Link{}, ErrLinkNotFound
	}

	return *g.links[id], nil
}

// Links returns copies of all links ordered by ID.
// Complexity: O(E).
func (g *Graph) Links() []Link {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	out := make([]Link, len(g.links))
	for i, l := range g.links {
		out[i] = *l
	}

	return out
}

// LinkCount returns the number of links; IDs are dense in [0, LinkCount).
func (g *Graph) LinkCount() int {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()

	return len(g.links)
}

// LinkID returns the link leading from parent to child, if any.
// Undirected links are found in both orientations.
func (g *Graph) LinkID(parent, child string) (int, bool) {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()
	id, ok := g.index[parent][child]

	return id, ok
}

// LinkReliability returns the up-probability of link id.
// It panics if id is out of range: callers only pass IDs obtained from this graph.
func (g *Graph) LinkReliability(id int) float64 {
	g.muLinkAdj.RLock()
	defer g.muLinkAdj.RUnlock()
	if id < 0 || id >= len(g.links) {
		panic(fmt.Sprintf("core: LinkReliability(%d): link count is %d", id, len(g.links)))
	}

	return g.links[id].Reliability
}
