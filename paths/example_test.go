package paths_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/paths"
)

// ExampleEnumerator walks every simple path rooted at "s" and reports the
// ones ending at "t", with the links they traverse.
//
//	s ──► a ──► t
//	│     │     ▲
//	│     ▼     │
//	└───► b ────┘
func ExampleEnumerator() {
	g := core.NewGraph()
	for _, e := range [][2]string{{"s", "a"}, {"s", "b"}, {"a", "t"}, {"b", "t"}, {"a", "b"}} {
		_, _ = g.AddLink(e[0], e[1], 0.9)
	}

	en, _ := paths.New(g.Snapshot())
	_, _ = en.First("s")
	for p, ok := en.Next(); ok; p, ok = en.Next() {
		if p.Last() != "t" {
			continue
		}
		fmt.Println(strings.Join(p, "→"), en.Links())
	}

	// Output:
	// s→a→t [0 2]
	// s→a→b→t [0 4 3]
	// s→b→t [1 3]
}
