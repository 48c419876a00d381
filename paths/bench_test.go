package paths_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/paths"
)

// BenchmarkEnumerator_K7 measures full enumeration from one vertex of the
// undirected complete graph K7 (1956 simple paths per run).
func BenchmarkEnumerator_K7(b *testing.B) {
	g := core.NewGraph(core.WithDirected(false))
	const n = 7
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_, _ = g.AddLink(strconv.Itoa(i), strconv.Itoa(j), 0.9)
		}
	}
	topo := g.Snapshot()
	e, _ := paths.New(topo)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = e.First("0")
		for _, ok := e.Next(); ok; _, ok = e.Next() {
		}
	}
}
