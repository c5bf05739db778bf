// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/socnet/core"
	"github.com/katalvlaran/socnet/distance"
)

// followCurrent marks an Engine that analyses whatever relation is current
// on the graph at query time.
const followCurrent = -1

// Cache kinds.
const (
	kindSnapshot = "snapshot"
	kindDistance = "distance"
	kindIndex    = "index"
	kindCensus   = "census"
	kindCluster  = "clustering"
)

// Engine answers analytic queries over one relation of a core.Graph.
//
// Thread Safety:
//
//	Safe for concurrent use. The graph may be mutated concurrently; each
//	answer reflects one consistent snapshot.
type Engine struct {
	g        *core.Graph
	relation int
	opts     Options
	cache    *versionCache
}

// geodesics bundles the all-pairs pass with its reachability closure.
type geodesics struct {
	m *distance.Matrix
	r *distance.Reachability
}

// New creates an Engine that follows the graph's current relation and
// subscribes to its mutations to evict stale cache entries.
//
// Errors:
//   - ErrNilGraph if g is nil.
func New(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{g: g, relation: followCurrent, opts: o, cache: newVersionCache()}
	g.Subscribe(core.ObserverFunc(e.onGraphEvent))

	return e, nil
}

// ForRelation returns an Engine bound to relation r regardless of the
// graph's current relation. It shares the parent's cache and options.
//
// Errors:
//   - core.ErrInvalidRelation if r is out of range.
func (e *Engine) ForRelation(r int) (*Engine, error) {
	if r < 0 || r >= len(e.g.Relations()) {
		return nil, fmt.Errorf("ForRelation(%d): %w", r, core.ErrInvalidRelation)
	}

	return &Engine{g: e.g, relation: r, opts: e.opts, cache: e.cache}, nil
}

// Relation returns the relation the next query will analyse.
func (e *Engine) Relation() int {
	if e.relation == followCurrent {
		return e.g.CurrentRelation()
	}

	return e.relation
}

// Graph returns the underlying store.
func (e *Engine) Graph() *core.Graph { return e.g }

// CacheStats reports the shared cache counters.
func (e *Engine) CacheStats() CacheStats { return e.cache.stats() }

// Snapshot returns the cached snapshot of the analysed relation.
//
// Errors:
//   - core.ErrInvalidRelation, ErrEmptyGraph.
func (e *Engine) Snapshot(ctx context.Context) (*core.Snapshot, error) {
	rel := e.Relation()
	v, hit, err := e.cache.do(ctx, cacheKey{kind: kindSnapshot, relation: rel}, e.g.Version(),
		func() (interface{}, uint64, error) {
			snap, err := e.g.Snapshot(rel)
			if err != nil {
				return nil, 0, err
			}

			return snap, snap.Version, nil
		})
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if hit {
		recordHit(ctx, kindSnapshot)
	}
	snap := v.(*core.Snapshot)
	if snap.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	return snap, nil
}

// cached resolves (kind, param) for the current snapshot, running compute
// as a traced pass on a miss.
func (e *Engine) cached(ctx context.Context, kind string, param int,
	compute func(context.Context, *core.Snapshot) (interface{}, error),
) (interface{}, *core.Snapshot, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	v, err := e.cachedOn(ctx, snap, kind, param, compute)
	if err != nil {
		return nil, nil, err
	}

	return v, snap, nil
}

// cachedOn is cached for a snapshot the caller already holds, so that
// derived passes read the same version as the pass that needs them.
func (e *Engine) cachedOn(ctx context.Context, snap *core.Snapshot, kind string, param int,
	compute func(context.Context, *core.Snapshot) (interface{}, error),
) (interface{}, error) {
	k := cacheKey{kind: kind, relation: snap.Relation, param: param}
	v, hit, err := e.cache.do(ctx, k, snap.Version, func() (interface{}, uint64, error) {
		value, err := e.pass(ctx, kind, snap, compute)

		return value, snap.Version, err
	})
	if err != nil {
		return nil, err
	}
	if hit {
		recordHit(ctx, kind)
	}

	return v, nil
}

// pass runs one recomputation inside a span, records its metrics and logs
// it at Debug level.
func (e *Engine) pass(ctx context.Context, kind string, snap *core.Snapshot,
	compute func(context.Context, *core.Snapshot) (interface{}, error),
) (interface{}, error) {
	passID := uuid.NewString()[:8]
	ctx, span := startPassSpan(ctx, kind, passID, snap.Relation, snap.Version)
	start := time.Now()

	v, err := compute(ctx, snap)

	d := time.Since(start)
	recordPass(ctx, kind, snap.Relation, d, err == nil)
	endPassSpan(span, err)
	attrs := []any{
		slog.String("pass_id", passID),
		slog.String("kind", kind),
		slog.Int("relation", snap.Relation),
		slog.Uint64("version", snap.Version),
		slog.Int("vertices", snap.Len()),
		slog.Duration("duration", d),
	}
	if err != nil {
		e.opts.Logger.Debug("pass failed", append(attrs, slog.String("error", err.Error()))...)
		return nil, err
	}
	e.opts.Logger.Debug("pass completed", attrs...)

	return v, nil
}

// geodesics returns the cached all-pairs pass of the current snapshot.
func (e *Engine) geodesics(ctx context.Context) (*geodesics, *core.Snapshot, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}
	geo, err := e.geodesicsOn(ctx, snap)
	if err != nil {
		return nil, nil, err
	}

	return geo, snap, nil
}

// geodesicsOn returns the all-pairs pass of snap with betweenness and
// stress accumulated.
func (e *Engine) geodesicsOn(ctx context.Context, snap *core.Snapshot) (*geodesics, error) {
	v, err := e.cachedOn(ctx, snap, kindDistance, 0, func(ctx context.Context, snap *core.Snapshot) (interface{}, error) {
		m, err := distance.Compute(ctx, snap,
			distance.WithWorkers(e.opts.Workers),
			distance.WithProgress(e.opts.Progress),
			distance.WithCentralities(true),
			distance.WithInvertWeights(e.opts.InvertWeights),
		)
		if err != nil {
			return nil, err
		}

		return &geodesics{m: m, r: distance.NewReachability(m)}, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*geodesics), nil
}

// onGraphEvent evicts entries made stale by a mutation.
func (e *Engine) onGraphEvent(ev core.Event) {
	if n := e.cache.evictBefore(ev.Version); n > 0 {
		e.opts.Logger.Debug("cache invalidated",
			slog.String("event", ev.Kind.String()),
			slog.Uint64("version", ev.Version),
			slog.Int("evicted", n),
		)
	}
}

// position resolves a vertex name in snap.
func position(snap *core.Snapshot, op string, name int) (int, error) {
	i, ok := snap.IndexOf(name)
	if !ok {
		return 0, fmt.Errorf("%s(%d): %w", op, name, core.ErrVertexNotFound)
	}

	return i, nil
}

// namesOf maps snapshot positions to vertex names.
func namesOf(snap *core.Snapshot, idx []int) []int {
	out := make([]int, len(idx))
	for k, i := range idx {
		out[k] = snap.Names[i]
	}

	return out
}
