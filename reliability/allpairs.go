package reliability

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/netrel/core"
)

// Pair is one ordered (source, target) query.
type Pair struct {
	Source, Target string
}

// Pairs lists every ordered pair of distinct vertices of topo in
// Vertices() order.
func Pairs(topo core.Topology) []Pair {
	vs := topo.Vertices()
	out := make([]Pair, 0, len(vs)*(len(vs)-1))
	for _, s := range vs {
		for _, t := range vs {
			if s != t {
				out = append(out, Pair{Source: s, Target: t})
			}
		}
	}

	return out
}

// AllPairs computes Compute for every ordered pair of distinct vertices.
// Results follow Pairs(topo) order.
func AllPairs(ctx context.Context, topo core.Topology, opts ...Option) ([]Result, error) {
	if topo == nil {
		return nil, ErrTopologyNil
	}

	return Queries(ctx, topo, Pairs(topo), opts...)
}

// Queries runs one independent query per pair on at most WithWorkers
// goroutines and returns results aligned with pairs. topo is shared
// read-only by all workers; pass a core.Snapshot rather than a mutating
// Graph. The first error cancels the remaining queries and is returned.
func Queries(ctx context.Context, topo core.Topology, pairs []Pair, opts ...Option) ([]Result, error) {
	if topo == nil {
		return nil, ErrTopologyNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	workers := buildOptions(opts).Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)

	// Built once, read-only inside the goroutines.
	qopts := make([]Option, 0, len(opts)+1)
	qopts = append(qopts, opts...)
	qopts = append(qopts, WithContext(gctx))

	results := make([]Result, len(pairs))
	for i, p := range pairs {
		i, p := i, p
		grp.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Compute(topo, p.Source, p.Target, qopts...)
			if err != nil {
				return fmt.Errorf("reliability: query %s→%s: %w", p.Source, p.Target, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
