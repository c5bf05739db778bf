// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/core"
)

// Common vertex names used across core tests.
const (
	V1 = 1
	V2 = 2
	V3 = 3
	V4 = 4
)

// newPath builds 1-2-3-4 as mutual unit arcs in relation 0.
func newPath(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range []int{V1, V2, V3, V4} {
		require.NoError(t, g.AddVertex(v))
	}
	require.NoError(t, g.AddEdge(V1, V2, 1, 0, core.Mutual))
	require.NoError(t, g.AddEdge(V2, V3, 1, 0, core.Mutual))
	require.NoError(t, g.AddEdge(V3, V4, 1, 0, core.Mutual))

	return g
}

func TestAddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(V1))
	ver := g.Version()
	require.NoError(t, g.AddVertex(V1))
	assert.Equal(t, 1, g.VertexCount())
	assert.Equal(t, ver, g.Version(), "re-adding must not bump the version")
}

func TestAddEdgeErrors(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(V1))

	require.ErrorIs(t, g.AddEdge(V1, V2, 1, 0, core.Directed), core.ErrVertexNotFound)
	require.NoError(t, g.AddVertex(V2))
	require.ErrorIs(t, g.AddEdge(V1, V2, 1, 3, core.Directed), core.ErrInvalidRelation)
	require.ErrorIs(t, g.AddEdge(V1, V2, 1, -1, core.Directed), core.ErrInvalidRelation)
	require.ErrorIs(t, g.AddEdge(V1, V2, math.NaN(), 0, core.Directed), core.ErrBadWeight)
	require.ErrorIs(t, g.AddEdge(V1, V2, math.Inf(1), 0, core.Directed), core.ErrBadWeight)
}

func TestAddEdgeNoDuplicate(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(V1))
	require.NoError(t, g.AddVertex(V2))
	require.NoError(t, g.AddEdge(V1, V2, 2, 0, core.Directed))
	ver := g.Version()
	require.NoError(t, g.AddEdge(V1, V2, 9, 0, core.Directed))

	assert.Equal(t, ver, g.Version())
	assert.Equal(t, 2.0, g.HasEdge(V1, V2), "existing weight is kept")
	assert.Equal(t, 1, g.Stats().Arcs)
}

func TestMutualEdge(t *testing.T) {
	g := newPath(t)
	assert.Equal(t, 1.0, g.HasEdge(V1, V2))
	assert.Equal(t, 1.0, g.HasEdge(V2, V1))
	assert.Equal(t, 0.0, g.HasEdge(V1, V3))

	require.NoError(t, g.RemoveEdge(V2, V1, 0, core.Directed))
	assert.Equal(t, 1.0, g.HasEdge(V1, V2))
	assert.Equal(t, 0.0, g.HasEdge(V2, V1))
	require.ErrorIs(t, g.RemoveEdge(V2, V1, 0, core.Directed), core.ErrEdgeNotFound)
}

func TestRemoveVertexReindexes(t *testing.T) {
	g := newPath(t)
	require.NoError(t, g.RemoveVertex(V2))

	assert.Equal(t, []int{V1, V3, V4}, g.Vertices())
	for want, name := range []int{V1, V3, V4} {
		pos, ok := g.Position(name)
		require.True(t, ok)
		assert.Equal(t, want, pos)
	}
	d, err := g.OutDegree(V1, 0)
	require.NoError(t, err)
	assert.Zero(t, d)
	d, err = g.InDegree(V3, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d, "only 4→3 remains")
	require.ErrorIs(t, g.RemoveVertex(V2), core.ErrVertexNotFound)
}

func TestEnabledFlagsHideArcs(t *testing.T) {
	g := newPath(t)
	require.NoError(t, g.SetVertexEnabled(V2, false))
	assert.Equal(t, 0.0, g.HasEdge(V1, V2))

	on, err := g.IsEnabled(V2)
	require.NoError(t, err)
	assert.False(t, on)

	snap, err := g.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{V1, V3, V4}, snap.Names)
	assert.Equal(t, 2, snap.ArcCount())

	require.NoError(t, g.SetVertexEnabled(V2, true))
	require.NoError(t, g.SetEdgeEnabled(V3, V4, 0, false))
	_, ok := g.HasEdgeIn(0, V3, V4)
	assert.False(t, ok)
	_, ok = g.HasEdgeIn(0, V4, V3)
	assert.True(t, ok)
}

func TestRelations(t *testing.T) {
	g := core.NewGraph(core.WithRelations("friends"))
	require.NoError(t, g.AddVertex(V1))
	require.NoError(t, g.AddVertex(V2))
	work := g.AddRelation("work")
	assert.Equal(t, 1, work)
	assert.Equal(t, []string{"friends", "work"}, g.Relations())

	require.NoError(t, g.AddEdge(V1, V2, 3, work, core.Directed))
	assert.Equal(t, 0.0, g.HasEdge(V1, V2), "relation 0 is current")
	require.NoError(t, g.ChangeRelation(work))
	assert.Equal(t, 3.0, g.HasEdge(V1, V2))
	require.ErrorIs(t, g.ChangeRelation(2), core.ErrInvalidRelation)
	require.ErrorIs(t, g.ChangeRelation(-1), core.ErrInvalidRelation)
	assert.Equal(t, work, g.CurrentRelation())
}

func TestStatsDegenerateInput(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex(V1))
	require.NoError(t, g.AddVertex(V2))
	require.NoError(t, g.AddEdge(V1, V1, 1, 0, core.Directed))
	require.NoError(t, g.AddEdge(V1, V2, 0, 0, core.Directed))

	st := g.Stats()
	assert.Equal(t, 2, st.Arcs)
	assert.Equal(t, 1, st.SelfLoops)
	assert.Equal(t, 1, st.ZeroWeightArcs)

	d, err := g.OutDegree(V1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, d, "self-loop excluded from degree")

	snap, err := g.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, []int{0}, snap.Loops)
	assert.Equal(t, 1, snap.ArcCount())
	assert.True(t, snap.Weighted, "zero weight differs from 1")
}

func TestSetEdgeWeight(t *testing.T) {
	g := newPath(t)
	require.NoError(t, g.SetEdgeWeight(V1, V2, 0, 4))
	assert.Equal(t, 4.0, g.HasEdge(V1, V2))
	assert.Equal(t, 1.0, g.HasEdge(V2, V1))
	require.ErrorIs(t, g.SetEdgeWeight(V1, V3, 0, 4), core.ErrEdgeNotFound)
	require.ErrorIs(t, g.SetEdgeWeight(V1, V2, 0, math.NaN()), core.ErrBadWeight)

	snap, err := g.CurrentSnapshot()
	require.NoError(t, err)
	assert.False(t, snap.IsSymmetric())
}

func TestVersionMonotonic(t *testing.T) {
	g := core.NewGraph()
	last := g.Version()
	step := func(err error) {
		require.NoError(t, err)
		v := g.Version()
		require.Greater(t, v, last)
		last = v
	}
	step(g.AddVertex(V1))
	step(g.AddVertex(V2))
	step(g.AddEdge(V1, V2, 1, 0, core.Directed))
	step(g.SetEdgeWeight(V1, V2, 0, 2))
	step(g.SetEdgeEnabled(V1, V2, 0, false))
	step(g.SetVertexEnabled(V2, false))
	step(g.RemoveVertex(V2))
}

func TestObserverEvents(t *testing.T) {
	var got []core.EventKind
	g := core.NewGraph(core.WithObserver(core.ObserverFunc(func(ev core.Event) {
		got = append(got, ev.Kind)
	})))
	ch := core.NewChannelObserver(1)
	g.Subscribe(ch)

	require.NoError(t, g.AddVertex(V1))
	require.NoError(t, g.AddVertex(V2))
	require.NoError(t, g.AddEdge(V1, V2, 1, 0, core.Mutual))
	require.NoError(t, g.RemoveVertex(V1))

	assert.Equal(t, []core.EventKind{
		core.EventVertexAdded, core.EventVertexAdded, core.EventEdgeAdded, core.EventVertexRemoved,
	}, got)
	ev := <-ch.C
	assert.Equal(t, core.EventVertexAdded, ev.Kind)
	assert.Equal(t, V1, ev.Vertex)
	assert.Equal(t, int64(3), ch.Dropped())
	assert.Equal(t, "edge_added", core.EventEdgeAdded.String())
}

func TestChannelObserverConcurrentDrops(t *testing.T) {
	g := core.NewGraph()
	ch := core.NewChannelObserver(0)
	g.Subscribe(ch)

	const writers, perWriter = 4, 200
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		w := w
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				assert.NoError(t, g.AddVertex(w*perWriter+i))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(writers*perWriter), ch.Dropped(), "unbuffered and undrained: every event drops")
	assert.Equal(t, writers*perWriter, g.VertexCount())
}

func TestCloneIsIndependent(t *testing.T) {
	g := newPath(t)
	c := g.Clone()
	assert.Equal(t, g.Version(), c.Version())
	require.NoError(t, c.RemoveEdge(V1, V2, 0, core.Mutual))

	assert.Equal(t, 1.0, g.HasEdge(V1, V2))
	assert.Equal(t, 0.0, c.HasEdge(V1, V2))

	c.Clear()
	assert.Zero(t, c.VertexCount())
	assert.Equal(t, 4, g.VertexCount())
}

func TestSnapshotQueries(t *testing.T) {
	g := newPath(t)
	require.NoError(t, g.AddVertex(9))
	snap, err := g.Snapshot(0)
	require.NoError(t, err)

	assert.Equal(t, 5, snap.Len())
	assert.True(t, snap.IsSymmetric())
	assert.Equal(t, 1, snap.Isolates())
	i, ok := snap.IndexOf(9)
	require.True(t, ok)
	assert.True(t, snap.IsIsolated(i))
	assert.True(t, snap.HasArc(0, 1))
	assert.False(t, snap.HasArc(0, 2))
	assert.InDelta(t, 6.0/20.0, snap.Density(), 1e-12)

	_, err = g.Snapshot(4)
	require.ErrorIs(t, err, core.ErrInvalidRelation)
}

func TestConcurrentMutationAndSnapshot(t *testing.T) {
	g := core.NewGraph()
	const n = 100
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}

	var wg sync.WaitGroup
	errs := make(chan error, 2*n)
	for i := 1; i < n; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			errs <- g.AddEdge(0, i, 1, 0, core.Mutual)
		}(i)
		go func() {
			defer wg.Done()
			_, err := g.CurrentSnapshot()
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	d, err := g.OutDegree(0, 0)
	require.NoError(t, err)
	assert.Equal(t, n-1, d)
}
