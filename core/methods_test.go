// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph construction rules, dense link IDs,
// adjacency ordering, and snapshot/clone isolation.

package core_test

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netrel/core"
)

// Common vertex IDs used across core tests.
const (
	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

func TestGraph_DefaultDirected(t *testing.T) {
	assert.True(t, core.NewGraph().Directed())
	assert.False(t, core.NewGraph(core.WithDirected(false)).Directed())
}

func TestAddVertex_EmptyAndIdempotent(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex(VertexB))
	require.NoError(t, g.AddVertex(VertexA))
	require.NoError(t, g.AddVertex(VertexB))

	assert.Equal(t, []string{VertexB, VertexA}, g.Vertices(), "insertion order, no duplicates")
	assert.Equal(t, 2, g.VertexCount())

	v, err := g.Vertex(VertexA)
	require.NoError(t, err)
	assert.NotNil(t, v.Metadata)
	_, err = g.Vertex(VertexD)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestAddLink_DenseIDs(t *testing.T) {
	g := core.NewGraph()
	for i, pair := range [][2]string{{VertexA, VertexB}, {VertexB, VertexC}, {VertexA, VertexC}} {
		id, err := g.AddLink(pair[0], pair[1], 0.5)
		require.NoError(t, err)
		assert.Equal(t, i, id)
	}
	assert.Equal(t, 3, g.LinkCount())

	links := g.Links()
	require.Len(t, links, 3)
	for i, l := range links {
		assert.Equal(t, i, l.ID)
		assert.True(t, l.Directed)
	}
	assert.Equal(t, []string{VertexA, VertexB, VertexC}, g.Vertices(), "AddLink auto-creates endpoints")
}

func TestAddLink_Validation(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddLink("", VertexB, 0.5)
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddLink(VertexA, VertexA, 0.5)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	for _, r := range []float64{-0.1, 1.1, math.NaN()} {
		_, err = g.AddLink(VertexA, VertexB, r)
		assert.ErrorIs(t, err, core.ErrBadReliability, "r=%v", r)
		assert.True(t, strings.HasPrefix(err.Error(), "core: AddLink("), err.Error())
	}
	assert.Equal(t, 0, g.LinkCount(), "rejected links must not consume IDs")

	_, err = g.AddLink(VertexA, VertexB, 0)
	require.NoError(t, err)
	_, err = g.AddLink(VertexA, VertexB, 1)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// The opposite orientation of a directed link is a distinct link.
	_, err = g.AddLink(VertexB, VertexA, 1)
	assert.NoError(t, err)
}

func TestAddLink_UndirectedClaimsBothOrientations(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	id, err := g.AddLink(VertexA, VertexB, 0.7)
	require.NoError(t, err)

	got, ok := g.LinkID(VertexB, VertexA)
	require.True(t, ok)
	assert.Equal(t, id, got, "undirected link shares one slot")

	_, err = g.AddLink(VertexB, VertexA, 0.7)
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// Directed override in an undirected graph, blocked by the undirected A-B.
	_, err = g.AddLink(VertexA, VertexB, 0.7, core.WithLinkDirected(true))
	assert.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	assert.Equal(t, []core.Arc{{Link: id, To: VertexB}}, g.OutgoingLinks(VertexA))
	assert.Equal(t, []core.Arc{{Link: id, To: VertexA}}, g.OutgoingLinks(VertexB))
}

func TestOutgoingLinks_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddLink(VertexA, VertexD, 0.1)
	_, _ = g.AddLink(VertexA, VertexB, 0.2)
	_, _ = g.AddLink(VertexA, VertexC, 0.3)

	ids, err := g.NeighborIDs(VertexA)
	require.NoError(t, err)
	assert.Equal(t, []string{VertexD, VertexB, VertexC}, ids)

	deg, err := g.Degree(VertexA)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)

	assert.Nil(t, g.OutgoingLinks(VertexD))
	_, err = g.NeighborIDs("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	// Returned slice is a copy.
	arcs := g.OutgoingLinks(VertexA)
	arcs[0].To = "mutated"
	assert.Equal(t, VertexD, g.OutgoingLinks(VertexA)[0].To)
}

func TestSetReliability(t *testing.T) {
	g := core.NewGraph()
	id, _ := g.AddLink(VertexA, VertexB, 0.5)

	require.NoError(t, g.SetReliability(id, 0.25))
	assert.Equal(t, 0.25, g.LinkReliability(id))

	assert.ErrorIs(t, g.SetReliability(id, 2), core.ErrBadReliability)
	assert.ErrorIs(t, g.SetReliability(7, 0.5), core.ErrLinkNotFound)

	_, err := g.Link(7)
	assert.ErrorIs(t, err, core.ErrLinkNotFound)
	assert.Panics(t, func() { g.LinkReliability(7) })
}

func TestSnapshot_Isolation(t *testing.T) {
	g := core.NewGraph(core.WithDirected(false))
	id, _ := g.AddLink(VertexA, VertexB, 0.9)
	_, _ = g.AddLink(VertexB, VertexC, 0.8)

	s := g.Snapshot()
	require.NoError(t, g.SetReliability(id, 0.1))
	_, _ = g.AddLink(VertexC, VertexD, 0.5)

	assert.Equal(t, 0.9, s.LinkReliability(id), "snapshot must not see later mutation")
	assert.Equal(t, 2, s.LinkCount())
	assert.False(t, s.HasVertex(VertexD))
	assert.Equal(t, []string{VertexA, VertexB, VertexC}, s.Vertices())
	assert.Equal(t, []float64{0.9, 0.8}, s.Reliabilities())
	assert.Len(t, s.Links(), 2)
	assert.False(t, s.Directed())

	lid, ok := s.LinkID(VertexC, VertexB)
	assert.True(t, ok)
	assert.Equal(t, 1, lid)
	assert.Panics(t, func() { s.LinkReliability(-1) })
}

func TestClone_DeepCopy(t *testing.T) {
	g := core.NewGraph()
	id, _ := g.AddLink(VertexA, VertexB, 0.9)
	c := g.Clone()

	require.NoError(t, c.SetReliability(id, 0.3))
	_, err := c.AddLink(VertexB, VertexC, 0.4)
	require.NoError(t, err)

	assert.Equal(t, 0.9, g.LinkReliability(id))
	assert.Equal(t, 1, g.LinkCount())
	assert.Equal(t, 2, c.LinkCount())
	assert.Equal(t, g.Vertices(), []string{VertexA, VertexB})
}

// TestConcurrentAddLink ensures that concurrent AddLink calls keep IDs dense and unique.
func TestConcurrentAddLink(t *testing.T) {
	g := core.NewGraph()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	ids := make([]int, num)
	errs := make([]error, num)
	for i := 0; i < num; i++ {
		go func(i int) {
			defer wg.Done()
			ids[i], errs[i] = g.AddLink("X", fmt.Sprintf("V%d", i), 0.5)
		}(i)
	}
	wg.Wait()

	seen := make(map[int]bool, num)
	for i := 0; i < num; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[ids[i]], "duplicate link ID %d", ids[i])
		seen[ids[i]] = true
	}
	for id := 0; id < num; id++ {
		assert.True(t, seen[id], "missing link ID %d", id)
	}
	assert.Len(t, g.OutgoingLinks("X"), num)
}
