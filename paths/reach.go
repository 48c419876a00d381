package paths

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
)

// Reachable returns the set of vertices reachable from source (source included)
// by breadth-first search over OutgoingLinks.
//
// Complexity: O(V + E) time, O(V) memory.
func Reachable(topo core.Topology, source string) (map[string]bool, error) {
	if topo == nil {
		return nil, ErrGraphNil
	}
	if !topo.HasVertex(source) {
		return nil, fmt.Errorf("paths: Reachable(%q): %w", source, ErrStartVertexNotFound)
	}

	visited := map[string]bool{source: true}
	queue := []string{source}
	var (
		id  string
		arc core.Arc
	)
	for len(queue) > 0 {
		id, queue = queue[0], queue[1:]
		for _, arc = range topo.OutgoingLinks(id) {
			if !visited[arc.To] {
				visited[arc.To] = true
				queue = append(queue, arc.To)
			}
		}
	}

	return visited, nil
}
