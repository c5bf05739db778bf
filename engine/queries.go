// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/socnet/distance"
	"github.com/katalvlaran/socnet/paths"
)

// Distance returns the geodesic distance between two vertices by name and
// whether to is reachable from from. Unreachable pairs yield (+Inf, false).
//
// Errors:
//   - core.ErrVertexNotFound for unknown or disabled vertices.
//   - ErrEmptyGraph, core.ErrInvalidRelation, paths.ErrNegativeWeight, ctx.Err().
func (e *Engine) Distance(ctx context.Context, from, to int) (float64, bool, error) {
	geo, snap, err := e.geodesics(ctx)
	if err != nil {
		return 0, false, err
	}
	i, err := position(snap, "Distance", from)
	if err != nil {
		return 0, false, err
	}
	j, err := position(snap, "Distance", to)
	if err != nil {
		return 0, false, err
	}
	d, ok := geo.m.Distance(i, j)

	return d, ok, nil
}

// PathCount returns the number of geodesics from → to.
func (e *Engine) PathCount(ctx context.Context, from, to int) (float64, error) {
	geo, snap, err := e.geodesics(ctx)
	if err != nil {
		return 0, err
	}
	i, err := position(snap, "PathCount", from)
	if err != nil {
		return 0, err
	}
	j, err := position(snap, "PathCount", to)
	if err != nil {
		return 0, err
	}

	return geo.m.PathCount(i, j), nil
}

// ShortestPath returns one geodesic from → to as vertex names, following
// the first predecessor at each step, or nil when to is unreachable. It
// runs a single-source traversal and does not populate the cache.
func (e *Engine) ShortestPath(ctx context.Context, from, to int) ([]int, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	i, err := position(snap, "ShortestPath", from)
	if err != nil {
		return nil, err
	}
	j, err := position(snap, "ShortestPath", to)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var opts []paths.Option
	if e.opts.InvertWeights {
		opts = append(opts, paths.WithInvertWeights())
	}
	t, err := paths.Run(snap, i, opts...)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	route := t.PathTo(j)
	if route == nil {
		return nil, nil
	}

	return namesOf(snap, route), nil
}

// Diameter returns the largest finite geodesic distance.
func (e *Engine) Diameter(ctx context.Context) (float64, error) {
	geo, _, err := e.geodesics(ctx)
	if err != nil {
		return 0, err
	}

	return geo.m.Diameter(), nil
}

// AverageDistance returns the mean of the finite distances d(i,j), i ≠ j,
// or 0 when no pair is connected.
func (e *Engine) AverageDistance(ctx context.Context) (float64, error) {
	geo, _, err := e.geodesics(ctx)
	if err != nil {
		return 0, err
	}

	return geo.m.AverageDistance(), nil
}

// DistanceMatrix exposes the cached all-pairs result. Callers must treat
// it as read-only.
func (e *Engine) DistanceMatrix(ctx context.Context) (*distance.Matrix, error) {
	geo, _, err := e.geodesics(ctx)
	if err != nil {
		return nil, err
	}

	return geo.m, nil
}

// Density returns arcs / (n·(n−1)) of the analysed relation.
func (e *Engine) Density(ctx context.Context) (float64, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return 0, err
	}

	return snap.Density(), nil
}

// IsSymmetric reports whether every arc has an equally weighted reverse arc.
func (e *Engine) IsSymmetric(ctx context.Context) (bool, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return false, err
	}

	return snap.IsSymmetric(), nil
}

// Connectedness classifies the analysed relation.
func (e *Engine) Connectedness(ctx context.Context) (distance.Connectedness, error) {
	geo, snap, err := e.geodesics(ctx)
	if err != nil {
		return 0, err
	}

	return distance.Classify(snap, geo.r), nil
}

// Reachable reports whether to can be reached from from (from ≠ to).
func (e *Engine) Reachable(ctx context.Context, from, to int) (bool, error) {
	geo, snap, err := e.geodesics(ctx)
	if err != nil {
		return false, err
	}
	i, err := position(snap, "Reachable", from)
	if err != nil {
		return false, err
	}
	j, err := position(snap, "Reachable", to)
	if err != nil {
		return false, err
	}

	return geo.r.Reachable(i, j), nil
}

// InfluenceRange returns the names of the vertices v reaches.
func (e *Engine) InfluenceRange(ctx context.Context, v int) ([]int, error) {
	geo, snap, err := e.geodesics(ctx)
	if err != nil {
		return nil, err
	}
	i, err := position(snap, "InfluenceRange", v)
	if err != nil {
		return nil, err
	}

	return namesOf(snap, geo.r.InfluenceRange(i)), nil
}

// InfluenceDomain returns the names of the vertices that reach v.
func (e *Engine) InfluenceDomain(ctx context.Context, v int) ([]int, error) {
	geo, snap, err := e.geodesics(ctx)
	if err != nil {
		return nil, err
	}
	i, err := position(snap, "InfluenceDomain", v)
	if err != nil {
		return nil, err
	}

	return namesOf(snap, geo.r.InfluenceDomain(i)), nil
}
