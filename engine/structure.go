// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/matrix"
	"github.com/katalvlaran/socnet/triad"
)

// TriadCensus returns the 16-type triad census of the analysed relation.
// The census is parallel over the first vertex of every triple and honors
// ctx cancellation.
func (e *Engine) TriadCensus(ctx context.Context) (triad.Census, error) {
	v, _, err := e.cached(ctx, kindCensus, 0, func(ctx context.Context, snap *core.Snapshot) (interface{}, error) {
		return triad.CensusOf(ctx, snap,
			triad.WithWorkers(e.opts.Workers),
			triad.WithProgress(e.opts.Progress),
		)
	})
	if err != nil {
		return triad.Census{}, err
	}

	return v.(triad.Census), nil
}

// ClusteringCoefficient returns the local clustering coefficient of the
// vertex with the given name.
func (e *Engine) ClusteringCoefficient(ctx context.Context, v int) (float64, error) {
	coeffs, snap, err := e.clustering(ctx)
	if err != nil {
		return 0, err
	}
	i, err := position(snap, "ClusteringCoefficient", v)
	if err != nil {
		return 0, err
	}

	return coeffs[i], nil
}

// AverageClusteringCoefficient returns the mean local clustering
// coefficient of the analysed relation.
func (e *Engine) AverageClusteringCoefficient(ctx context.Context) (float64, error) {
	coeffs, _, err := e.clustering(ctx)
	if err != nil {
		return 0, err
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// clustering caches every local coefficient in position order.
func (e *Engine) clustering(ctx context.Context) ([]float64, *core.Snapshot, error) {
	v, snap, err := e.cached(ctx, kindCluster, 0, func(ctx context.Context, snap *core.Snapshot) (interface{}, error) {
		out := make([]float64, snap.Len())
		for i := range out {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			c, err := triad.Clustering(snap, i)
			if err != nil {
				return nil, err
			}
			out[i] = c
		}

		return out, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return v.([]float64), snap, nil
}

// AdjacencyMatrix builds the adjacency matrix of the analysed relation and
// the vertex names of its rows.
func (e *Engine) AdjacencyMatrix(ctx context.Context, opts ...matrix.Option) (*matrix.Dense, []int, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	return matrix.Adjacency(snap, opts...)
}

// InverseAdjacencyMatrix inverts the adjacency matrix by Gauss-Jordan
// elimination.
//
// Errors:
//   - matrix.ErrSingular when a pivot falls below matrix.PivotTolerance.
func (e *Engine) InverseAdjacencyMatrix(ctx context.Context, opts ...matrix.Option) (*matrix.Dense, []int, error) {
	a, names, err := e.AdjacencyMatrix(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		return nil, nil, fmt.Errorf("InverseAdjacencyMatrix: %w", err)
	}

	return inv, names, nil
}

// WalksMatrix returns A^length: entry (i,j) counts walks of exactly
// length arcs from i to j.
func (e *Engine) WalksMatrix(ctx context.Context, length int, opts ...matrix.Option) (*matrix.Dense, []int, error) {
	a, names, err := e.AdjacencyMatrix(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	w, err := matrix.WalksOfLength(a, length)
	if err != nil {
		return nil, nil, fmt.Errorf("WalksMatrix: %w", err)
	}

	return w, names, nil
}

// TotalWalksMatrix returns A + A² + … + A^length.
func (e *Engine) TotalWalksMatrix(ctx context.Context, length int, opts ...matrix.Option) (*matrix.Dense, []int, error) {
	a, names, err := e.AdjacencyMatrix(ctx, opts...)
	if err != nil {
		return nil, nil, err
	}
	w, err := matrix.TotalWalks(a, length)
	if err != nil {
		return nil, nil, fmt.Errorf("TotalWalksMatrix: %w", err)
	}

	return w, names, nil
}
