package reliability

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

// MaxExhaustiveLinks caps Exhaustive at 2^24 link states.
const MaxExhaustiveLinks = 24

// Exhaustive computes R(s,t) by summing the probability of every link state
// in which target is reachable from source over up links only. It is
// independent of path enumeration and the cube algebra, and serves to check
// Compute on small topologies.
//
// Errors: ErrTopologyNil, ErrVertexNotFound, ErrSameEndpoints as Compute;
// ErrTooManyLinks when LinkCount > MaxExhaustiveLinks.
//
// Complexity: O(2^m · (V + m)).
func Exhaustive(topo core.Topology, source, target string) (float64, error) {
	const method = "reliability: Exhaustive"
	if topo == nil {
		return 0, ErrTopologyNil
	}
	for _, v := range []string{source, target} {
		if !topo.HasVertex(v) {
			return 0, fmt.Errorf("%s: %q: %w", method, v, ErrVertexNotFound)
		}
	}
	if source == target {
		return 0, fmt.Errorf("%s: %q: %w", method, source, ErrSameEndpoints)
	}
	m := topo.LinkCount()
	if m > MaxExhaustiveLinks {
		return 0, fmt.Errorf("%s: %d links > %d: %w", method, m, MaxExhaustiveLinks, ErrTooManyLinks)
	}

	r := make([]float64, m)
	for i := range r {
		r[i] = topo.LinkReliability(i)
	}

	var (
		total float64
		p     float64
		state uint32
		i     int
	)
	visited := make(map[string]bool)
	queue := make([]string, 0, 8)
	for state = 0; state < 1<<uint(m); state++ {
		p = 1
		for i = 0; i < m && p != 0; i++ {
			if state&(1<<uint(i)) != 0 {
				p *= r[i]
			} else {
				p *= 1 - r[i]
			}
		}
		if p == 0 {
			continue
		}
		if connected(topo, source, target, state, visited, queue) {
			total += p
		}
	}

	return total, nil
}

// connected runs a BFS from source over the links set in state.
// visited and queue are scratch space reused across calls.
func connected(topo core.Topology, source, target string, state uint32, visited map[string]bool, queue []string) bool {
	clear(visited)
	visited[source] = true
	queue = append(queue[:0], source)
	var id string
	for len(queue) > 0 {
		id, queue = queue[0], queue[1:]
		for _, arc := range topo.OutgoingLinks(id) {
			if state&(1<<uint(arc.Link)) == 0 || visited[arc.To] {
				continue
			}
			if arc.To == target {
				return true
			}
			visited[arc.To] = true
			queue = append(queue, arc.To)
		}
	}

	return false
}
