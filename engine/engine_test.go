// SPDX-License-Identifier: MIT
package engine_test

import (
	"context"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/socnet/builder"
	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/distance"
	"github.com/katalvlaran/socnet/engine"
	"github.com/katalvlaran/socnet/matrix"
	"github.com/katalvlaran/socnet/triad"
)

const eps = 1e-9

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// newEngine builds g from constructors and wraps it.
func newEngine(t *testing.T, cons ...builder.Constructor) (*core.Graph, *engine.Engine) {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)
	e, err := engine.New(g, engine.WithLogger(quiet), engine.WithWorkers(2))
	require.NoError(t, err)

	return g, e
}

func TestNewErrors(t *testing.T) {
	_, err := engine.New(nil)
	require.ErrorIs(t, err, engine.ErrNilGraph)

	e, err := engine.New(core.NewGraph(), engine.WithLogger(quiet))
	require.NoError(t, err)
	_, err = e.Diameter(context.Background())
	require.ErrorIs(t, err, engine.ErrEmptyGraph)
	_, err = e.Centrality(context.Background(), centrality.DegreeCentrality)
	require.ErrorIs(t, err, engine.ErrEmptyGraph)

	_, err = e.ForRelation(1)
	require.ErrorIs(t, err, core.ErrInvalidRelation)
}

func TestStarIndices(t *testing.T) {
	_, e := newEngine(t, builder.Star(5))
	ctx := context.Background()

	bc, err := e.Centrality(ctx, centrality.BetweennessCentrality)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 0, 0, 0, 0}, bc.Raw)

	cc, err := e.Centrality(ctx, centrality.ClosenessCentrality)
	require.NoError(t, err)
	raw, _, ok := cc.Value(0)
	require.True(t, ok)
	assert.InDelta(t, 0.25, raw, eps)
	raw, _, _ = cc.Value(3)
	assert.InDelta(t, 1.0/7, raw, eps)

	for _, idx := range []centrality.Index{
		centrality.DegreeCentrality, centrality.InfluenceRangeClosenessCentrality,
		centrality.StressCentrality, centrality.EccentricityCentrality,
		centrality.PowerCentrality, centrality.InformationCentrality,
	} {
		r, err := e.Centrality(ctx, idx)
		require.NoError(t, err, idx.String())
		assert.Equal(t, idx, r.Index)
		assert.Len(t, r.Raw, 5)
	}
	for _, idx := range []centrality.Index{
		centrality.DegreePrestigeIndex, centrality.ProximityPrestige, centrality.PageRankPrestige,
	} {
		r, err := e.Prestige(ctx, idx)
		require.NoError(t, err, idx.String())
		assert.Equal(t, idx, r.Index)
	}

	_, err = e.Centrality(ctx, centrality.PageRankPrestige)
	require.ErrorIs(t, err, engine.ErrUnknownIndex)
	_, err = e.Prestige(ctx, centrality.BetweennessCentrality)
	require.ErrorIs(t, err, engine.ErrUnknownIndex)
}

func TestRingLatticeQueries(t *testing.T) {
	_, e := newEngine(t, builder.RingLattice(6, 2))
	ctx := context.Background()

	diam, err := e.Diameter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.0, diam)

	avg, err := e.AverageDistance(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 1.8, avg, eps)

	cl, err := e.AverageClusteringCoefficient(ctx)
	require.NoError(t, err)
	assert.Zero(t, cl)

	d, ok, err := e.Distance(ctx, 0, 3)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.0, d)
	n, err := e.PathCount(ctx, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, 2.0, n)

	sym, err := e.IsSymmetric(ctx)
	require.NoError(t, err)
	assert.True(t, sym)
	dens, err := e.Density(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, dens, eps)

	c, err := e.Connectedness(ctx)
	require.NoError(t, err)
	assert.Equal(t, distance.Connected, c)

	_, _, err = e.Distance(ctx, 0, 99)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestTriangleCensusAndClustering(t *testing.T) {
	_, e := newEngine(t, builder.Complete(3))
	ctx := context.Background()

	census, err := e.TriadCensus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, census[triad.T300])
	assert.Equal(t, 1, census.Total())

	c, err := e.ClusteringCoefficient(ctx, 2)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, eps)
}

func TestCacheHitsAndInvalidation(t *testing.T) {
	g, e := newEngine(t, builder.Path(4))
	ctx := context.Background()

	diam, err := e.Diameter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3.0, diam)
	before := e.CacheStats()
	assert.Equal(t, 2, before.Entries, "snapshot and distance matrix")

	_, err = e.Diameter(ctx)
	require.NoError(t, err)
	after := e.CacheStats()
	assert.Equal(t, before.Hits+2, after.Hits)
	assert.Equal(t, before.Misses, after.Misses)

	require.NoError(t, g.AddEdge(0, 3, 1, 0, core.Mutual))
	assert.Zero(t, e.CacheStats().Entries, "mutation evicts stale entries")
	assert.Equal(t, int64(2), e.CacheStats().Evictions)

	diam, err = e.Diameter(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2.0, diam, "C4 after closing the path")
}

func TestDisabledVertexIsInvisible(t *testing.T) {
	g, e := newEngine(t, builder.Star(5))
	ctx := context.Background()

	require.NoError(t, g.SetVertexEnabled(0, false))
	c, err := e.Connectedness(ctx)
	require.NoError(t, err)
	assert.Equal(t, distance.DisconnectedWithIsolates, c)
	_, _, err = e.Distance(ctx, 0, 1)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestForRelation(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithRelations("friends", "reports_to")}, nil, builder.Star(4))
	require.NoError(t, err)
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{
		builder.WithRelation(1), builder.WithMode(core.Directed),
	}, builder.Path(4)))

	e, err := engine.New(g, engine.WithLogger(quiet))
	require.NoError(t, err)
	reports, err := e.ForRelation(1)
	require.NoError(t, err)
	ctx := context.Background()

	c, err := e.Connectedness(ctx)
	require.NoError(t, err)
	assert.Equal(t, distance.Connected, c)
	c, err = reports.Connectedness(ctx)
	require.NoError(t, err)
	assert.Equal(t, distance.Unilateral, c)

	rng, err := reports.InfluenceRange(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, rng)
	dom, err := reports.InfluenceDomain(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, dom)
	ok, err := reports.Reachable(ctx, 3, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, g.ChangeRelation(1))
	assert.Equal(t, 1, e.Relation(), "unbound engine follows the current relation")
	c, err = e.Connectedness(ctx)
	require.NoError(t, err)
	assert.Equal(t, distance.Unilateral, c)
}

func TestMatrices(t *testing.T) {
	_, e := newEngine(t, builder.Path(3))
	ctx := context.Background()

	a, names, err := e.AdjacencyMatrix(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, names)
	w1, _, err := e.WalksMatrix(ctx, 1)
	require.NoError(t, err)
	assert.True(t, a.Equal(w1, eps), "walks of length 1 equal the adjacency matrix")

	w2, _, err := e.WalksMatrix(ctx, 2)
	require.NoError(t, err)
	v, err := w2.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	tot, _, err := e.TotalWalksMatrix(ctx, 2)
	require.NoError(t, err)
	v, err = tot.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, v, "1→0→1 and 1→2→1")

	_, _, err = e.InverseAdjacencyMatrix(ctx)
	require.ErrorIs(t, err, matrix.ErrSingular, "P3 adjacency has determinant 0")

	_, e = newEngine(t, builder.Path(2))
	inv, _, err := e.InverseAdjacencyMatrix(ctx)
	require.NoError(t, err)
	v, err = inv.At(0, 1)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, v, eps)
}

func TestInvertWeights(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithWeightFn(builder.ConstantWeightFn(4)),
	}, builder.Path(3))
	require.NoError(t, err)
	ctx := context.Background()

	plain, err := engine.New(g, engine.WithLogger(quiet))
	require.NoError(t, err)
	d, _, err := plain.Distance(ctx, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 8.0, d)

	inverted, err := engine.New(g, engine.WithLogger(quiet), engine.WithInvertWeights(true))
	require.NoError(t, err)
	d, _, err = inverted.Distance(ctx, 0, 2)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, eps)
}

func TestShortestPath(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithMode(core.Directed)}, builder.Path(4))
	require.NoError(t, err)
	e, err := engine.New(g, engine.WithLogger(quiet))
	require.NoError(t, err)
	ctx := context.Background()

	route, err := e.ShortestPath(ctx, 0, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, route)

	route, err = e.ShortestPath(ctx, 3, 0)
	require.NoError(t, err)
	assert.Nil(t, route, "arcs only run forward")

	route, err = e.ShortestPath(ctx, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, route)

	_, err = e.ShortestPath(ctx, 0, 9)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCancellation(t *testing.T) {
	_, e := newEngine(t, builder.RingLattice(40, 4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := e.Diameter(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, err = e.TriadCensus(ctx)
	require.ErrorIs(t, err, context.Canceled)

	diam, err := e.Diameter(context.Background())
	require.NoError(t, err, "failures are not cached")
	assert.Equal(t, 10.0, diam)
}

func TestConcurrentQueries(t *testing.T) {
	_, e := newEngine(t, builder.RingLattice(30, 4))
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]float64, 8)
	for i := range results {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, err := e.Centrality(ctx, centrality.BetweennessCentrality)
			if err != nil {
				results[i] = math.NaN()
				return
			}
			results[i] = r.Raw[0]
		}()
	}
	wg.Wait()
	for _, v := range results {
		assert.Equal(t, results[0], v)
	}
	assert.False(t, math.IsNaN(results[0]))
}

// gate blocks the first progress tick until released.
type gate struct {
	once     sync.Once
	started  chan struct{}
	released chan struct{}
}

func newGate() *gate {
	return &gate{started: make(chan struct{}), released: make(chan struct{})}
}

func (g *gate) OnProgress(int) {
	g.once.Do(func() { close(g.started) })
	<-g.released
}

func (g *gate) OnStatus(string) {}

func TestCancelledCallerDoesNotFailOthers(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.RingLattice(20, 2))
	require.NoError(t, err)
	gt := newGate()
	e, err := engine.New(g, engine.WithLogger(quiet), engine.WithWorkers(1), engine.WithProgress(gt))
	require.NoError(t, err)
	_, err = e.Snapshot(context.Background())
	require.NoError(t, err)

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, err := e.Diameter(ctxA)
		errA <- err
	}()
	<-gt.started

	missesBefore := e.CacheStats().Misses
	type result struct {
		diam float64
		err  error
	}
	resB := make(chan result, 1)
	go func() {
		d, err := e.Diameter(context.Background())
		resB <- result{d, err}
	}()
	require.Eventually(t, func() bool { return e.CacheStats().Misses > missesBefore },
		time.Second, time.Millisecond, "second caller reaches the flight")
	time.Sleep(10 * time.Millisecond)

	cancelA()
	close(gt.released)

	require.ErrorIs(t, <-errA, context.Canceled)
	b := <-resB
	require.NoError(t, b.err)
	assert.Equal(t, 10.0, b.diam, "a 20-cycle has diameter 10")
}
