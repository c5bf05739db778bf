// SPDX-License-Identifier: MIT

package distance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/paths"
)

// ErrNilSnapshot indicates a nil *core.Snapshot.
var ErrNilSnapshot = errors.New("distance: snapshot is nil")

// Matrix is the all-pairs result for one snapshot. Slices are indexed by
// snapshot position; Names maps positions back to vertex names.
type Matrix struct {
	Names    []int
	Relation int
	Version  uint64

	// Dist[i][j] is the geodesic distance i→j or +Inf.
	Dist [][]float64

	// Sigma[i][j] is the number of shortest paths i→j.
	Sigma [][]float64

	// Eccentricity[i] is the largest finite distance from i (0 if none).
	Eccentricity []float64

	// DistanceSum[i] is Σ finite d(i,t).
	DistanceSum []float64

	// InverseSum[i] is Σ 1/d(i,t) over reached t ≠ i.
	InverseSum []float64

	// Reached[i] is the number of vertices i reaches, itself excluded.
	Reached []int

	// Betweenness and Stress hold the raw, unhalved Brandes sums when
	// Compute ran WithCentralities(true); nil otherwise.
	Betweenness []float64
	Stress      []float64

	Symmetric bool
	Weighted  bool

	diameter float64
	average  float64
}

// Compute runs a shortest-path traversal from every vertex of snap.
//
// Implementation:
//   - Stage 1: Allocate n×n rows and, when requested, one partial
//     betweenness/stress pair per worker.
//   - Stage 2: Worker w handles sources w, w+W, w+2W, …, writing the rows of
//     those sources only. Each worker checks ctx before every source and
//     ticks Progress after it.
//   - Stage 3: Wait, reduce partial vectors in worker order, derive
//     diameter and average distance.
//
// Errors:
//   - ErrNilSnapshot, paths.ErrNegativeWeight, ctx.Err() on cancellation.
//
// Complexity:
//   - Time O(V·(V+E)) unweighted, O(V·(V+E) log V) weighted.
//   - Space O(V²).
func Compute(ctx context.Context, snap *core.Snapshot, opts ...Option) (*Matrix, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := snap.Len()
	m := &Matrix{
		Names:        append([]int(nil), snap.Names...),
		Relation:     snap.Relation,
		Version:      snap.Version,
		Dist:         make([][]float64, n),
		Sigma:        make([][]float64, n),
		Eccentricity: make([]float64, n),
		DistanceSum:  make([]float64, n),
		InverseSum:   make([]float64, n),
		Reached:      make([]int, n),
		Symmetric:    snap.IsSymmetric(),
		Weighted:     snap.Weighted,
	}

	workers := o.Workers
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	var pathOpts []paths.Option
	if o.InvertWeights {
		pathOpts = append(pathOpts, paths.WithInvertWeights())
	}

	var bcParts, scParts [][]float64
	if o.Centralities {
		bcParts = make([][]float64, workers)
		scParts = make([][]float64, workers)
	}

	o.Progress.OnStatus(fmt.Sprintf("computing distances for %d vertices", n))
	var done atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			var bc, sc []float64
			if o.Centralities {
				bc = make([]float64, n)
				sc = make([]float64, n)
				bcParts[w], scParts[w] = bc, sc
			}
			for s := w; s < n; s += workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				t, err := paths.Run(snap, s, pathOpts...)
				if err != nil {
					return err
				}
				m.Dist[s] = t.Dist
				m.Sigma[s] = t.Sigma
				m.Eccentricity[s] = t.Eccentricity()
				m.DistanceSum[s] = t.DistanceSum()
				m.InverseSum[s] = t.InverseDistanceSum()
				m.Reached[s] = t.Reached()
				if o.Centralities {
					t.Accumulate(bc, sc)
				}
				o.Progress.OnProgress(int(done.Add(1)))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		return nil, fmt.Errorf("distance: %w", err)
	}

	if o.Centralities {
		m.Betweenness = reduce(bcParts, n)
		m.Stress = reduce(scParts, n)
	}
	m.aggregate()

	return m, nil
}

// reduce sums per-worker partials in worker order.
func reduce(parts [][]float64, n int) []float64 {
	out := make([]float64, n)
	for _, p := range parts {
		for i, v := range p {
			out[i] += v
		}
	}

	return out
}

// aggregate derives diameter and average distance.
func (m *Matrix) aggregate() {
	var sum float64
	var count int
	for i, row := range m.Dist {
		if m.Eccentricity[i] > m.diameter {
			m.diameter = m.Eccentricity[i]
		}
		for j, d := range row {
			if i == j || math.IsInf(d, 1) {
				continue
			}
			sum += d
			count++
		}
	}
	if count > 0 {
		m.average = sum / float64(count)
	}
}

// Len returns the number of vertices.
func (m *Matrix) Len() int { return len(m.Names) }

// Diameter returns the largest finite distance between any two vertices.
func (m *Matrix) Diameter() float64 { return m.diameter }

// AverageDistance returns the mean of finite off-diagonal distances, or 0
// when no pair is connected.
func (m *Matrix) AverageDistance() float64 { return m.average }

// Distance returns d(i,j) and whether it is finite. Indices are snapshot
// positions; out-of-range indices report false.
func (m *Matrix) Distance(i, j int) (float64, bool) {
	if i < 0 || j < 0 || i >= len(m.Dist) || j >= len(m.Dist) {
		return 0, false
	}
	d := m.Dist[i][j]

	return d, !math.IsInf(d, 1)
}

// PathCount returns sigma(i,j), the number of shortest paths i→j.
func (m *Matrix) PathCount(i, j int) float64 {
	if i < 0 || j < 0 || i >= len(m.Sigma) || j >= len(m.Sigma) {
		return 0
	}

	return m.Sigma[i][j]
}

// StronglyConnected reports whether every ordered pair is connected.
func (m *Matrix) StronglyConnected() bool {
	for _, r := range m.Reached {
		if r != len(m.Names)-1 {
			return false
		}
	}

	return true
}
