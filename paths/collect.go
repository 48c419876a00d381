package paths

import (
	"github.com/katalvlaran/netrel/core"
)

// All returns every simple path rooted at source with at least one link,
// in enumeration order. Each Path is an independent copy.
// Honors WithContext (checked once per path) and WithMaxDepth.
func All(topo core.Topology, source string, opts ...Option) ([]Path, error) {
	return collect(topo, source, func(Path) bool { return true }, opts)
}

// Between returns every simple source→target path in enumeration order.
// source == target yields no paths.
func Between(topo core.Topology, source, target string, opts ...Option) ([]Path, error) {
	opts = append(opts[:len(opts):len(opts)], WithTerminal(target))
	return collect(topo, source, func(p Path) bool { return p.Last() == target }, opts)
}

func collect(topo core.Topology, source string, keep func(Path) bool, opts []Option) ([]Path, error) {
	e, err := New(topo, opts...)
	if err != nil {
		return nil, err
	}
	if _, err = e.First(source); err != nil {
		return nil, err
	}

	var out []Path
	ctx := e.opts.Ctx
	for p, ok := e.Next(); ok; p, ok = e.Next() {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		default:
		}
		if keep(p) {
			out = append(out, p.Clone())
		}
	}

	return out, nil
}
