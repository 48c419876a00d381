// Package paths implements a stateful depth-first generator of simple paths
// on a core.Topology. Each call to Next yields the next loop-free path rooted
// at the source, in an order fixed entirely by adjacency order.
//
// Key features:
//   - First(source) / Next(): pull-model enumeration, no recursion
//   - Every simple path rooted at source exactly once, to every reachable vertex
//   - Depth limiting via WithMaxDepth, pruning past a target via WithTerminal
//
// Complexity:
//
//   - Per Next: O(L·d) worst case while backtracking (L = path length, d = max degree).
//   - Total: proportional to the number of simple paths, which is exponential in the worst case.
//   - Memory: O(L) for the path and its membership set.
//
// Errors:
//
//   - ErrGraphNil               if topo is nil.
//   - ErrStartVertexNotFound    if source is missing.
package paths

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

// Enumerator encapsulates state during simple-path enumeration.
// It is not safe for concurrent use and is not restartable mid-run:
// call First again to begin a fresh enumeration.
type Enumerator struct {
	topo   core.Topology       // underlying topology
	opts   Options             // enumeration options
	path   Path                // current path, mutated in place
	onPath map[string]struct{} // membership set mirroring path
	done   bool                // exhausted
}

// New returns an Enumerator over topo. Call First before Next.
func New(topo core.Topology, opts ...Option) (*Enumerator, error) {
	if topo == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}

	return &Enumerator{topo: topo, opts: o, done: true}, nil
}

// First resets the enumeration and returns the trivial path [source].
func (e *Enumerator) First(source string) (Path, error) {
	if !e.topo.HasVertex(source) {
		return nil, fmt.Errorf("paths: First(%q): %w", source, ErrStartVertexNotFound)
	}
	e.path = append(e.path[:0], source)
	e.onPath = map[string]struct{}{source: {}}
	e.done = false

	return e.path, nil
}

// Path returns the current path (shared, mutated by Next).
func (e *Enumerator) Path() Path { return e.path }

// Next advances to the next simple path in DFS order.
//
// Steps:
//  1. Try to go deeper: append the first neighbor of last(path), in adjacency
//     order, that is not already on the path.
//  2. Otherwise backtrack: for index = len(path)-1 down to 1, look past the
//     link parent→path[index] in parent's adjacency for the first neighbor not
//     on path[0..index-1]; on success replace path[index] and return; on
//     failure truncate to index and continue shallower.
//  3. Nothing found at index 0 ⇒ exhausted; returns (nil, false).
//
// The returned Path aliases internal state.
func (e *Enumerator) Next() (Path, bool) {
	if e.done {
		return nil, false
	}

	// 1. Deeper
	if e.canExtend() {
		if to, ok := e.firstFree(e.topo.OutgoingLinks(e.path.Last()), 0); ok {
			e.push(to)
			return e.path, true
		}
	}

	// 2. Backtrack
	var (
		index       int
		parent, cur string
		arcs        []core.Arc
		to          string
		ok          bool
	)
	for index = len(e.path) - 1; index >= 1; index-- {
		parent, cur = e.path[index-1], e.path[index]
		delete(e.onPath, cur)

		arcs = e.topo.OutgoingLinks(parent)
		if to, ok = e.firstFree(arcs, arcPosition(e.topo, arcs, parent, cur)+1); ok {
			e.path[index] = to
			e.onPath[to] = struct{}{}
			return e.path, true
		}
		e.path = e.path[:index]
	}

	// 3. Exhausted
	e.done = true
	e.path = e.path[:0]

	return nil, false
}

// Links returns the link IDs traversed by the current path, in order.
// It panics if a consecutive pair has no link (malformed topology).
func (e *Enumerator) Links() []int {
	return Links(e.topo, e.path)
}

// Links returns the link IDs traversed by p on topo.
// It panics if a consecutive pair has no link.
func Links(topo core.Topology, p Path) []int {
	if len(p) < 2 {
		return nil
	}
	out := make([]int, 0, len(p)-1)
	for i := 1; i < len(p); i++ {
		id, ok := topo.LinkID(p[i-1], p[i])
		if !ok {
			panic(fmt.Sprintf("paths: no link %s→%s on enumerated path", p[i-1], p[i]))
		}
		out = append(out, id)
	}

	return out
}

// firstFree scans arcs[from:] for the first neighbor not on the path.
func (e *Enumerator) firstFree(arcs []core.Arc, from int) (string, bool) {
	for i := from; i < len(arcs); i++ {
		if _, seen := e.onPath[arcs[i].To]; !seen {
			return arcs[i].To, true
		}
	}

	return "", false
}

// canExtend reports whether the depth limit and terminal allow step 1.
func (e *Enumerator) canExtend() bool {
	if e.opts.MaxDepth >= 0 && len(e.path)-1 >= e.opts.MaxDepth {
		return false
	}

	return e.opts.Terminal == "" || e.path.Last() != e.opts.Terminal
}

func (e *Enumerator) push(to string) {
	e.path = append(e.path, to)
	e.onPath[to] = struct{}{}
}

// arcPosition locates the link parent→child within parent's adjacency.
// It panics if the link is absent: the child was reached through it.
func arcPosition(topo core.Topology, arcs []core.Arc, parent, child string) int {
	id, ok := topo.LinkID(parent, child)
	if !ok {
		panic(fmt.Sprintf("paths: no link %s→%s on enumerated path", parent, child))
	}
	for i := range arcs {
		if arcs[i].Link == id && arcs[i].To == child {
			return i
		}
	}
	panic(fmt.Sprintf("paths: link %d (%s→%s) missing from adjacency of %s", id, parent, child, parent))
}
