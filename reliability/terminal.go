package reliability

import (
	"fmt"

	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/paths"
	"github.com/katalvlaran/netrel/sdp"
)

// STReliability returns the probability that target is reachable from source
// on topo. See Compute for options and errors.
func STReliability(topo core.Topology, source, target string, opts ...Option) (float64, error) {
	res, err := Compute(topo, source, target, opts...)
	if err != nil {
		return 0, err
	}

	return res.Reliability, nil
}

// Compute runs one s→t query and returns the reliability with statistics.
//
// Implementation:
//   - Stage 1: Validate topology and endpoints; a target unreachable from
//     source yields 0 without enumeration.
//   - Stage 2: Enumerate simple paths from source, pruned at target; every
//     path ending at target becomes a term M.
//   - Stage 3: Reduce a copy of M against every earlier term in order and
//     append the survivors to the disjoint state.
//   - Stage 4: Sum the probabilities of the disjoint state.
//
// Errors:
//   - ErrTopologyNil, ErrVertexNotFound, ErrSameEndpoints on bad input.
//   - ErrPathLimit, ErrTermLimit when a limit is exceeded.
//   - ctx.Err() when the context ends between paths.
//
// Complexity: O(P² · 2^k · m) in the worst case, where P is the number of
// s→t paths, m = LinkCount and k the split depth.
func Compute(topo core.Topology, source, target string, opts ...Option) (*Result, error) {
	const method = "reliability: Compute"
	if topo == nil {
		return nil, ErrTopologyNil
	}
	o := buildOptions(opts)

	// Stage 1
	for _, v := range []string{source, target} {
		if !topo.HasVertex(v) {
			return nil, fmt.Errorf("%s: %q: %w", method, v, ErrVertexNotFound)
		}
	}
	if source == target {
		return nil, fmt.Errorf("%s: %q: %w", method, source, ErrSameEndpoints)
	}

	q := newQuery(topo, source, target, o)
	reach, err := paths.Reachable(topo, source)
	if err != nil {
		return nil, err
	}
	if !reach[target] {
		return q.finish(outcomeUnreachable), nil
	}

	// Stage 2
	en, err := paths.New(topo, paths.WithTerminal(target))
	if err != nil {
		return nil, err
	}
	if _, err = en.First(source); err != nil {
		return nil, err
	}
	for p, ok := en.Next(); ok; p, ok = en.Next() {
		if p.Last() != target {
			continue
		}
		select {
		case <-o.Ctx.Done():
			q.fail()
			return nil, fmt.Errorf("%s: %s→%s after %d paths: %w", method, source, target, q.stats.Paths, o.Ctx.Err())
		default:
		}
		// Stage 3
		if err = q.absorb(p, en.Links()); err != nil {
			q.fail()
			return nil, fmt.Errorf("%s: %s→%s: %w", method, source, target, err)
		}
	}

	// Stage 4
	return q.finish(outcomeOK), nil
}

// query owns the per-(s,t) history and state.
type query struct {
	topo    core.Topology
	opts    Options
	res     *Result
	stats   Stats
	history []sdp.Cube
	state   []sdp.Cube
}

func newQuery(topo core.Topology, source, target string, o Options) *query {
	return &query{
		topo: topo,
		opts: o,
		res:  &Result{Source: source, Target: target},
	}
}

// absorb turns one s→t path into disjoint terms.
func (q *query) absorb(p paths.Path, links []int) error {
	q.stats.Paths++
	if q.opts.MaxPaths > 0 && q.stats.Paths > q.opts.MaxPaths {
		return fmt.Errorf("%d paths > max %d: %w", q.stats.Paths, q.opts.MaxPaths, ErrPathLimit)
	}

	m := sdp.PathToCube(q.topo.LinkCount(), links)
	worklist := []sdp.Cube{m.Clone()}
	var r sdp.Reducer
	for _, h := range q.history {
		worklist = r.Reduce(worklist, h)
		if len(worklist) == 0 {
			break
		}
	}
	q.state = append(q.state, worklist...)
	q.history = append(q.history, m)
	q.stats.Counts.Add(r.Counts)

	if q.opts.Trace != nil {
		q.opts.Trace.Path(PathStats{
			Index:     q.stats.Paths,
			Path:      p.Clone(),
			Links:     links,
			Counts:    r.Counts,
			NewTerms:  len(worklist),
			StateSize: len(q.state),
		})
	}
	if q.opts.MaxTerms > 0 && len(q.state) > q.opts.MaxTerms {
		return fmt.Errorf("%d terms > max %d: %w", len(q.state), q.opts.MaxTerms, ErrTermLimit)
	}

	return nil
}

// finish evaluates the state and reports the query.
func (q *query) finish(outcome string) *Result {
	rel := sdp.Evaluate(q.state, q.topo.LinkReliability)
	// Rounding can push a sum of disjoint products just past 1.
	if rel > 1 {
		rel = 1
	} else if rel < 0 {
		rel = 0
	}

	q.stats.Terms = len(q.state)
	q.res.Reliability = rel
	q.res.Stats = q.stats
	if q.opts.KeepTerms {
		q.res.Terms = q.state
	}
	if q.opts.Trace != nil {
		q.opts.Trace.Done(q.stats)
	}
	q.opts.Metrics.observe(q.stats, outcome)

	return q.res
}

func (q *query) fail() {
	q.stats.Terms = len(q.state)
	q.opts.Metrics.observe(q.stats, outcomeError)
}
