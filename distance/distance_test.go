// SPDX-License-Identifier: MIT
package distance_test

import (
	"context"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/distance"
)

type arc struct{ from, to int }

func snapshotOf(t *testing.T, n int, mode core.Reciprocity, arcs ...arc) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for _, a := range arcs {
		require.NoError(t, g.AddEdge(a.from, a.to, 1, 0, mode))
	}
	snap, err := g.CurrentSnapshot()
	require.NoError(t, err)

	return snap
}

func ring6(t *testing.T) *core.Snapshot {
	var arcs []arc
	for i := 0; i < 6; i++ {
		arcs = append(arcs, arc{i, (i + 1) % 6})
	}

	return snapshotOf(t, 6, core.Mutual, arcs...)
}

// counter is a concurrency-safe Progress sink.
type counter struct {
	ticks  atomic.Int64
	status atomic.Int64
}

func (c *counter) OnProgress(int)   { c.ticks.Add(1) }
func (c *counter) OnStatus(string) { c.status.Add(1) }

func TestRingLattice(t *testing.T) {
	m, err := distance.Compute(context.Background(), ring6(t), distance.WithWorkers(3))
	require.NoError(t, err)

	assert.Equal(t, 3.0, m.Diameter())
	// Each vertex: two at 1, two at 2, one at 3 → 9/5.
	assert.InDelta(t, 1.8, m.AverageDistance(), 1e-12)
	assert.True(t, m.Symmetric)
	assert.True(t, m.StronglyConnected())
}

func TestDiagonalAndSymmetry(t *testing.T) {
	snap := snapshotOf(t, 5, core.Mutual, arc{0, 1}, arc{1, 2}, arc{3, 4})
	m, err := distance.Compute(context.Background(), snap)
	require.NoError(t, err)

	for i := 0; i < m.Len(); i++ {
		d, ok := m.Distance(i, i)
		assert.True(t, ok)
		assert.Zero(t, d)
		assert.Equal(t, 1.0, m.PathCount(i, i))
		for j := 0; j < m.Len(); j++ {
			assert.Equal(t, m.Dist[i][j], m.Dist[j][i])
		}
	}
	_, ok := m.Distance(0, 3)
	assert.False(t, ok)
	assert.True(t, math.IsInf(m.Dist[0][4], 1))
	assert.Zero(t, m.PathCount(0, 4))
	assert.False(t, m.StronglyConnected())
	// pairs: (0,1)=1,(0,2)=2,(1,2)=1,(3,4)=1, each twice → 10/8.
	assert.InDelta(t, 1.25, m.AverageDistance(), 1e-12)
}

func TestWorkerCountDoesNotChangeResults(t *testing.T) {
	snap := ring6(t)
	one, err := distance.Compute(context.Background(), snap, distance.WithWorkers(1), distance.WithCentralities(true))
	require.NoError(t, err)
	many, err := distance.Compute(context.Background(), snap, distance.WithWorkers(4), distance.WithCentralities(true))
	require.NoError(t, err)

	assert.Equal(t, one.Dist, many.Dist)
	assert.Equal(t, one.Sigma, many.Sigma)
	assert.Equal(t, one.Betweenness, many.Betweenness)
	assert.Equal(t, one.Stress, many.Stress)
}

func TestCentralitiesOptional(t *testing.T) {
	m, err := distance.Compute(context.Background(), ring6(t))
	require.NoError(t, err)
	assert.Nil(t, m.Betweenness)
	assert.Nil(t, m.Stress)
}

func TestProgressTicks(t *testing.T) {
	var c counter
	_, err := distance.Compute(context.Background(), ring6(t), distance.WithProgress(&c), distance.WithWorkers(2))
	require.NoError(t, err)
	assert.EqualValues(t, 6, c.ticks.Load())
	assert.EqualValues(t, 1, c.status.Load())
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m, err := distance.Compute(ctx, ring6(t))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, m)
}

func TestNilSnapshot(t *testing.T) {
	_, err := distance.Compute(context.Background(), nil)
	require.ErrorIs(t, err, distance.ErrNilSnapshot)
}

func TestReachabilityConsistency(t *testing.T) {
	snap := snapshotOf(t, 4, core.Directed, arc{0, 1}, arc{1, 2})
	m, err := distance.Compute(context.Background(), snap)
	require.NoError(t, err)
	r := distance.NewReachability(m)

	for i := 0; i < m.Len(); i++ {
		for j := 0; j < m.Len(); j++ {
			_, finite := m.Distance(i, j)
			assert.Equal(t, finite && i != j, r.Reachable(i, j), "pair %d,%d", i, j)
		}
	}
	assert.Equal(t, []int{1, 2}, r.InfluenceRange(0))
	assert.Equal(t, []int{0, 1}, r.InfluenceDomain(2))
	assert.Empty(t, r.InfluenceRange(3))
	assert.Nil(t, r.InfluenceRange(9))
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		snap *core.Snapshot
		want distance.Connectedness
	}{
		{"ring", ring6(t), distance.Connected},
		{"two components", snapshotOf(t, 4, core.Mutual, arc{0, 1}, arc{2, 3}), distance.Disconnected},
		{"isolate", snapshotOf(t, 3, core.Mutual, arc{0, 1}), distance.DisconnectedWithIsolates},
		{"directed cycle", snapshotOf(t, 3, core.Directed, arc{0, 1}, arc{1, 2}, arc{2, 0}), distance.StronglyConnected},
		{"directed path", snapshotOf(t, 3, core.Directed, arc{0, 1}, arc{1, 2}), distance.Unilateral},
		{"out-star", snapshotOf(t, 3, core.Directed, arc{0, 1}, arc{0, 2}), distance.DisconnectedDigraph},
		{"digraph isolate", snapshotOf(t, 4, core.Directed, arc{0, 1}, arc{0, 2}), distance.DisconnectedDigraphWithIsolates},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := distance.Compute(context.Background(), tc.snap)
			require.NoError(t, err)
			got := distance.Classify(tc.snap, distance.NewReachability(m))
			assert.Equal(t, tc.want, got, got.String())
		})
	}
}
