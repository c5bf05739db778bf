// SPDX-License-Identifier: MIT
package centrality_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/distance"
)

const eps = 1e-9

type arc struct {
	from, to int
	w        float64
}

func snapshotOf(t *testing.T, n int, mode core.Reciprocity, arcs ...arc) *core.Snapshot {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for _, a := range arcs {
		w := a.w
		if w == 0 {
			w = 1
		}
		require.NoError(t, g.AddEdge(a.from, a.to, w, 0, mode))
	}
	snap, err := g.CurrentSnapshot()
	require.NoError(t, err)

	return snap
}

// star5 is a center 0 with leaves 1..4.
func star5(t *testing.T) *core.Snapshot {
	return snapshotOf(t, 5, core.Mutual, arc{0, 1, 1}, arc{0, 2, 1}, arc{0, 3, 1}, arc{0, 4, 1})
}

func matrices(t *testing.T, snap *core.Snapshot) (*distance.Matrix, *distance.Reachability) {
	t.Helper()
	m, err := distance.Compute(context.Background(), snap, distance.WithCentralities(true))
	require.NoError(t, err)

	return m, distance.NewReachability(m)
}

func TestStarBetweennessAndStress(t *testing.T) {
	m, _ := matrices(t, star5(t))

	bc, err := centrality.Betweenness(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 0, 0, 0, 0}, bc.Raw)
	assert.InDelta(t, 1.0, bc.Std[0], eps)
	// Group: (0 + 4·1)/(n−1) = 1 for the perfect star.
	assert.InDelta(t, 1.0, bc.Group, eps)
	assert.Equal(t, 0, bc.Stats.ArgMax)
	assert.Equal(t, 2, bc.Stats.Classes)

	sc, err := centrality.Stress(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 0, 0, 0, 0}, sc.Raw)
	assert.InDelta(t, 1.0, sc.Std[0], eps)
	assert.True(t, math.IsNaN(sc.Group))
}

func TestStarCloseness(t *testing.T) {
	m, _ := matrices(t, star5(t))
	cc, err := centrality.Closeness(m)
	require.NoError(t, err)

	assert.InDelta(t, 1.0/4, cc.Raw[0], eps)
	for i := 1; i < 5; i++ {
		assert.InDelta(t, 1.0/7, cc.Raw[i], eps)
	}
	assert.InDelta(t, 1.0, cc.Std[0], eps)
	assert.InDelta(t, 4.0/7, cc.Std[1], eps)
	// Σ(1 − 4/7)·4 · 7 / (4·3) = 1 for the star.
	assert.InDelta(t, 1.0, cc.Group, eps)
}

func TestClosenessUndefined(t *testing.T) {
	m, r := matrices(t, snapshotOf(t, 3, core.Mutual, arc{0, 1, 1}))
	_, err := centrality.Closeness(m)
	require.ErrorIs(t, err, centrality.ErrUndefinedIndex)

	ir, err := centrality.InfluenceRangeCloseness(m, r)
	require.NoError(t, err)
	// 0 reaches {1} at distance 1: (1/2)/1.
	assert.InDelta(t, 0.5, ir.Raw[0], eps)
	assert.Zero(t, ir.Raw[2], "isolate scores 0")
}

func TestSingleVertexCloseness(t *testing.T) {
	m, _ := matrices(t, snapshotOf(t, 1, core.Mutual))
	cc, err := centrality.Closeness(m)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, cc.Raw)
}

func TestDegree(t *testing.T) {
	snap := star5(t)
	dc, err := centrality.Degree(snap)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 1, 1, 1, 1}, dc.Raw)
	assert.InDelta(t, 1.0, dc.Std[0], eps)
	assert.InDelta(t, 0.25, dc.Std[1], eps)
	// Σ(1 − 0.25)·4 / 3 = 1.
	assert.InDelta(t, 1.0, dc.Group, eps)
	assert.InDelta(t, 0.4, dc.Stats.Mean, eps)
}

func TestDegreeWeightedAndFlowConservation(t *testing.T) {
	snap := snapshotOf(t, 4, core.Directed, arc{0, 1, 2}, arc{0, 2, 3}, arc{2, 3, 1}, arc{3, 0, 4}, arc{1, 1, 5})
	dc, err := centrality.Degree(snap, centrality.WithWeights(true))
	require.NoError(t, err)
	dp, err := centrality.DegreePrestige(snap, centrality.WithWeights(true))
	require.NoError(t, err)

	assert.Equal(t, []float64{5, 0, 1, 4}, dc.Raw, "self-loop excluded")
	assert.InDelta(t, dc.Stats.Sum, dp.Stats.Sum, eps)
	assert.InDelta(t, 1.0, dc.Stats.Sum, eps, "weighted std divides by ΣDC")

	out, err := centrality.Degree(snap)
	require.NoError(t, err)
	in, err := centrality.DegreePrestige(snap)
	require.NoError(t, err)
	sumOut, sumIn := 0.0, 0.0
	for i := range out.Raw {
		sumOut += out.Raw[i]
		sumIn += in.Raw[i]
	}
	assert.Equal(t, sumOut, sumIn)
}

func TestEccentricityAndPower(t *testing.T) {
	m, _ := matrices(t, star5(t))

	ec, err := centrality.Eccentricity(m)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ec.Raw[0], eps)
	assert.InDelta(t, 0.5, ec.Raw[1], eps)
	assert.InDelta(t, 0.5, ec.Std[1], eps)

	pc, err := centrality.Power(m)
	require.NoError(t, err)
	// Center: 4 at distance 1. Leaf: 1 at 1, 3 at 2 → 2.5.
	assert.InDelta(t, 4.0, pc.Raw[0], eps)
	assert.InDelta(t, 2.5, pc.Raw[1], eps)
	assert.InDelta(t, 1.0, pc.Std[0], eps)
}

func TestEccentricityIsolated(t *testing.T) {
	m, _ := matrices(t, snapshotOf(t, 3, core.Mutual, arc{0, 1, 1}))
	ec, err := centrality.Eccentricity(m)
	require.NoError(t, err)
	assert.Zero(t, ec.Raw[2])
}

func TestProximityPrestige(t *testing.T) {
	// 1→0, 2→1: domain of 0 is {1,2} at distances 1 and 2.
	m, r := matrices(t, snapshotOf(t, 3, core.Directed, arc{1, 0, 1}, arc{2, 1, 1}))
	pp, err := centrality.Proximity(m, r)
	require.NoError(t, err)

	assert.InDelta(t, (2.0/2)/1.5, pp.Raw[0], eps)
	assert.InDelta(t, (1.0/2)/1, pp.Raw[1], eps)
	assert.Zero(t, pp.Raw[2])
	assert.Equal(t, pp.Raw, pp.Std)
}

func TestPageRank(t *testing.T) {
	snap := snapshotOf(t, 4, core.Directed, arc{0, 1, 1}, arc{1, 2, 1}, arc{2, 0, 1})
	pr, err := centrality.PageRank(snap)
	require.NoError(t, err)

	assert.InDelta(t, 0.15, pr.Raw[3], eps, "isolated vertex")
	assert.InDelta(t, 1.0, pr.Stats.Sum, eps, "standardized column sums to 1")
	assert.InDelta(t, pr.Raw[0], pr.Raw[1], 0.01)
	for _, v := range pr.Raw {
		assert.Greater(t, v, 0.0)
	}
}

func TestInformation(t *testing.T) {
	snap := snapshotOf(t, 4, core.Mutual, arc{0, 1, 1}, arc{1, 2, 1}, arc{2, 0, 1})
	ic, err := centrality.Information(snap)
	require.NoError(t, err)

	// K3: T = 3I, C = I/3, IC = 1/(1/3 + (1 − 2/3)/3) = 9/4.
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 2.25, ic.Raw[i], eps)
		assert.InDelta(t, 1.0/3, ic.Std[i], eps)
	}
	assert.Zero(t, ic.Raw[3], "isolate scores 0")

	raw, std, ok := ic.Value(3)
	assert.True(t, ok)
	assert.Zero(t, raw)
	assert.Zero(t, std)
}

func TestInformationPath(t *testing.T) {
	snap := snapshotOf(t, 3, core.Mutual, arc{0, 1, 1}, arc{1, 2, 1})
	ic, err := centrality.Information(snap)
	require.NoError(t, err)

	// T = [[2 0 1] [0 3 0] [1 0 2]], trace(C) = 5/3, R = 1/3.
	assert.InDeltaSlice(t, []float64{1, 1.5, 1}, ic.Raw, eps)
	assert.InDelta(t, 1.5/3.5, ic.Std[1], eps)
}

func TestInformationSingular(t *testing.T) {
	snap := snapshotOf(t, 4, core.Mutual, arc{0, 1, 1}, arc{2, 3, 1})
	_, err := centrality.Information(snap)
	require.ErrorIs(t, err, centrality.ErrSingularMatrix)
}

func TestMissingAccumulation(t *testing.T) {
	m, err := distance.Compute(context.Background(), star5(t))
	require.NoError(t, err)
	_, err = centrality.Betweenness(m)
	require.ErrorIs(t, err, centrality.ErrNoAccumulation)
	_, err = centrality.Stress(m)
	require.ErrorIs(t, err, centrality.ErrNoAccumulation)
}

func TestNilInputs(t *testing.T) {
	_, err := centrality.Degree(nil)
	require.ErrorIs(t, err, centrality.ErrNilInput)
	_, err = centrality.Closeness(nil)
	require.ErrorIs(t, err, centrality.ErrNilInput)
	_, err = centrality.Proximity(nil, nil)
	require.ErrorIs(t, err, centrality.ErrNilInput)
}

func TestIndexString(t *testing.T) {
	assert.Equal(t, "PRP", centrality.PageRankPrestige.String())
	assert.Equal(t, "IRCC", centrality.InfluenceRangeClosenessCentrality.String())
}
