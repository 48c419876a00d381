package reliability_test

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrel/builder"
	"github.com/katalvlaran/netrel/core"
	"github.com/katalvlaran/netrel/reliability"
)

const eps = 1e-9

var undirected = []core.GraphOption{core.WithDirected(false)}

// bridgeClosedForm is R(S,T) of the undirected bridge with equal link reliability p.
func bridgeClosedForm(p float64) float64 {
	return 2*p*p + 2*p*p*p - 5*p*p*p*p + 2*p*p*p*p*p
}

func mustBuild(t *testing.T, gopts []core.GraphOption, bopts []builder.BuilderOption, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(gopts, bopts, cons...)
	require.NoError(t, err)

	return g
}

func TestSTReliability_SingleLink(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddLink("s", "t", 0.7)
	require.NoError(t, err)

	r, err := reliability.STReliability(g, "s", "t")
	require.NoError(t, err)
	assert.InDelta(t, 0.7, r, eps)

	// Directed: no way back.
	r, err = reliability.STReliability(g, "t", "s")
	require.NoError(t, err)
	assert.Equal(t, 0.0, r)
}

func TestSTReliability_Series(t *testing.T) {
	g := core.NewGraph()
	rs := []float64{0.9, 0.8, 0.7, 0.6}
	ids := []string{"a", "b", "c", "d", "e"}
	for i, r := range rs {
		_, err := g.AddLink(ids[i], ids[i+1], r)
		require.NoError(t, err)
	}

	got, err := reliability.STReliability(g.Snapshot(), "a", "e")
	require.NoError(t, err)
	assert.InDelta(t, 0.9*0.8*0.7*0.6, got, eps)
}

func TestSTReliability_Parallel(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	_, _ = g.AddLink("s", "a", 0.9)
	_, _ = g.AddLink("a", "t", 0.8)
	_, _ = g.AddLink("s", "b", 0.7)
	_, _ = g.AddLink("b", "t", 0.6)

	got, err := reliability.STReliability(g, "s", "t")
	require.NoError(t, err)
	assert.InDelta(t, 1-(1-0.72)*(1-0.42), got, eps)

	g2 := mustBuild(t, undirected, []builder.BuilderOption{builder.WithConstantReliability(0.5)}, builder.Parallel(3, 3))
	got, err = reliability.STReliability(g2, builder.SourceID, builder.TargetID)
	require.NoError(t, err)
	assert.InDelta(t, 1-(1-0.125)*(1-0.125)*(1-0.125), got, eps)
}

func TestSTReliability_Bridge(t *testing.T) {
	for _, p := range []float64{0, 0.5, 0.9, 1} {
		g := mustBuild(t, undirected, []builder.BuilderOption{builder.WithConstantReliability(p)}, builder.Bridge())
		res, err := reliability.Compute(g, builder.SourceID, builder.TargetID, reliability.WithKeepTerms(true))
		require.NoError(t, err)
		assert.InDelta(t, bridgeClosedForm(p), res.Reliability, eps, "p=%v", p)
		assert.Equal(t, 4, res.Stats.Paths)
		assert.Equal(t, len(res.Terms), res.Stats.Terms)
		assert.NoError(t, reliability.VerifyDisjoint(res.Terms))
	}
}

// TestCompute_MatchesExhaustive compares SDP against brute force on random
// small topologies, both undirected and directed.
func TestCompute_MatchesExhaustive(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		gopts := undirected
		if seed%2 == 0 {
			gopts = nil
		}
		g := mustBuild(t, gopts,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformReliability(0.1, 0.95)},
			builder.RandomSparse(6, 0.45))
		if g.LinkCount() > 14 {
			continue
		}
		topo := g.Snapshot()

		res, err := reliability.Compute(topo, "0", "5", reliability.WithKeepTerms(true))
		require.NoError(t, err)
		want, err := reliability.Exhaustive(topo, "0", "5")
		require.NoError(t, err)

		assert.InDelta(t, want, res.Reliability, eps, "seed=%d links=%d", seed, g.LinkCount())
		assert.NoError(t, reliability.VerifyDisjoint(res.Terms), "seed=%d", seed)
		assert.GreaterOrEqual(t, res.Reliability, 0.0)
		assert.LessOrEqual(t, res.Reliability, 1.0)
	}
}

func TestCompute_FixturesMatchExhaustive(t *testing.T) {
	uniform := []builder.BuilderOption{builder.WithSeed(3), builder.WithUniformReliability(0.3, 0.99)}
	cases := []struct {
		name string
		g    *core.Graph
		s, t string
	}{
		{"bridge/directed", mustBuild(t, nil, uniform, builder.Bridge()), builder.SourceID, builder.TargetID},
		{"ladder(3)", mustBuild(t, undirected, uniform, builder.Ladder(3)), builder.SourceID, builder.TargetID},
		{"ring(6)", mustBuild(t, undirected, uniform, builder.Cycle(6)), "0", "3"},
		{"k5", mustBuild(t, undirected, uniform, builder.Complete(5)), "0", "4"},
		{"grid(3,3)", mustBuild(t, undirected, uniform, builder.Grid(3, 3)), builder.GridID(0, 0), builder.GridID(2, 2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := reliability.STReliability(tc.g, tc.s, tc.t)
			require.NoError(t, err)
			want, err := reliability.Exhaustive(tc.g, tc.s, tc.t)
			require.NoError(t, err)
			assert.InDelta(t, want, got, eps)
		})
	}
}

// TestCompute_InsertionOrderIndependent shuffles link insertion, which
// changes link IDs, adjacency order and so the path order.
func TestCompute_InsertionOrderIndependent(t *testing.T) {
	type edge struct {
		u, v string
		r    float64
	}
	edges := []edge{
		{"s", "a", 0.9}, {"s", "b", 0.85}, {"a", "b", 0.6}, {"a", "c", 0.75},
		{"b", "d", 0.8}, {"c", "d", 0.5}, {"c", "t", 0.95}, {"d", "t", 0.7},
	}
	reference := -1.0
	rng := rand.New(rand.NewSource(5))
	for iter := 0; iter < 10; iter++ {
		rng.Shuffle(len(edges), func(i, j int) { edges[i], edges[j] = edges[j], edges[i] })
		g := core.NewGraph(core.WithDirected(false))
		for _, e := range edges {
			u, v := e.u, e.v
			if rng.Intn(2) == 0 {
				u, v = v, u
			}
			_, err := g.AddLink(u, v, e.r)
			require.NoError(t, err)
		}
		got, err := reliability.STReliability(g, "s", "t")
		require.NoError(t, err)
		if reference < 0 {
			reference = got
			continue
		}
		assert.InDelta(t, reference, got, eps, "iteration %d", iter)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	g := mustBuild(t, undirected, []builder.BuilderOption{builder.WithSeed(9), builder.WithUniformReliability(0.2, 0.9)}, builder.Complete(5))
	a, err := reliability.Compute(g, "0", "4", reliability.WithKeepTerms(true))
	require.NoError(t, err)
	b, err := reliability.Compute(g, "0", "4", reliability.WithKeepTerms(true))
	require.NoError(t, err)
	assert.Equal(t, a.Reliability, b.Reliability)
	assert.Equal(t, a.Stats, b.Stats)
	require.Len(t, b.Terms, len(a.Terms))
	for i := range a.Terms {
		assert.True(t, a.Terms[i].Equal(b.Terms[i]), "term %d", i)
	}
}

func TestCompute_Unreachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddLink("s", "a", 0.9)
	require.NoError(t, g.AddVertex("t"))

	res, err := reliability.Compute(g, "s", "t", reliability.WithKeepTerms(true))
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Reliability)
	assert.Equal(t, reliability.Stats{}, res.Stats)
	assert.Empty(t, res.Terms)
}

func TestCompute_Errors(t *testing.T) {
	g := mustBuild(t, undirected, nil, builder.Bridge())

	_, err := reliability.Compute(nil, "S", "T")
	assert.ErrorIs(t, err, reliability.ErrTopologyNil)
	_, err = reliability.STReliability(g, "S", "missing")
	assert.ErrorIs(t, err, reliability.ErrVertexNotFound)
	_, err = reliability.STReliability(g, "S", "S")
	assert.ErrorIs(t, err, reliability.ErrSameEndpoints)

	_, err = reliability.Compute(g, "S", "T", reliability.WithMaxPaths(1))
	assert.ErrorIs(t, err, reliability.ErrPathLimit)
	_, err = reliability.Compute(g, "S", "T", reliability.WithMaxTerms(1))
	assert.ErrorIs(t, err, reliability.ErrTermLimit)

	res, err := reliability.Compute(g, "S", "T", reliability.WithMaxPaths(4))
	require.NoError(t, err, "limit equal to the path count is allowed")
	assert.Nil(t, res.Terms)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = reliability.Compute(g, "S", "T", reliability.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	assert.Panics(t, func() { reliability.WithMaxPaths(-1) })
	assert.Panics(t, func() { reliability.WithMaxTerms(-1) })
	assert.Panics(t, func() { reliability.WithWorkers(0) })
}

func TestErrors_PackagePrefixed(t *testing.T) {
	g := mustBuild(t, undirected, nil, builder.Bridge())

	_, err := reliability.Compute(g, "S", "missing")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "reliability: Compute: "), err.Error())

	_, err = reliability.Compute(g, "S", "T", reliability.WithMaxPaths(1))
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "reliability: Compute: S→T: "), err.Error())

	_, err = reliability.Exhaustive(g, "S", "S")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "reliability: Exhaustive: "), err.Error())
}

// recorder is a TraceSink collecting everything it sees.
type recorder struct {
	paths []reliability.PathStats
	done  []reliability.Stats
}

func (r *recorder) Path(ps reliability.PathStats) { r.paths = append(r.paths, ps) }
func (r *recorder) Done(st reliability.Stats)     { r.done = append(r.done, st) }

func TestCompute_Trace(t *testing.T) {
	g := mustBuild(t, undirected, nil, builder.Bridge())
	rec := &recorder{}
	res, err := reliability.Compute(g, "S", "T", reliability.WithTrace(rec))
	require.NoError(t, err)

	require.Len(t, rec.paths, res.Stats.Paths)
	require.Len(t, rec.done, 1)
	assert.Equal(t, res.Stats, rec.done[0])

	var total, terms int
	for i, ps := range rec.paths {
		assert.Equal(t, i+1, ps.Index)
		assert.Equal(t, "S", ps.Path[0])
		assert.Equal(t, "T", ps.Path.Last())
		assert.Len(t, ps.Links, len(ps.Path)-1)
		total += ps.Counts.Total()
		terms += ps.NewTerms
		assert.Equal(t, terms, ps.StateSize)
	}
	assert.Equal(t, res.Stats.Total(), total)
	assert.Equal(t, res.Stats.Terms, terms)
	assert.Equal(t, 1, rec.paths[0].NewTerms, "first path is its own term")
}

func TestExhaustive_Errors(t *testing.T) {
	g := mustBuild(t, undirected, nil, builder.Complete(8))
	_, err := reliability.Exhaustive(g, "0", "1")
	assert.ErrorIs(t, err, reliability.ErrTooManyLinks)

	_, err = reliability.Exhaustive(nil, "0", "1")
	assert.ErrorIs(t, err, reliability.ErrTopologyNil)
	_, err = reliability.Exhaustive(g, "0", "0")
	assert.ErrorIs(t, err, reliability.ErrSameEndpoints)
	_, err = reliability.Exhaustive(g, "0", "x")
	assert.ErrorIs(t, err, reliability.ErrVertexNotFound)
}

func BenchmarkSTReliability_K6(b *testing.B) {
	g, err := builder.BuildGraph(undirected, []builder.BuilderOption{builder.WithConstantReliability(0.9)}, builder.Complete(6))
	if err != nil {
		b.Fatal(err)
	}
	topo := g.Snapshot()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := reliability.STReliability(topo, "0", "5"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSTReliability_Ladder(b *testing.B) {
	for _, n := range []int{2, 4, 6} {
		g, err := builder.BuildGraph(undirected, nil, builder.Ladder(n))
		if err != nil {
			b.Fatal(err)
		}
		topo := g.Snapshot()
		b.Run(fmt.Sprintf("rungs=%d", n), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := reliability.STReliability(topo, builder.SourceID, builder.TargetID); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
