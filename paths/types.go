// SPDX-License-Identifier: MIT
// Package paths computes single-source shortest-path trees over a
// core.Snapshot, recording for every reached vertex its distance, the
// number of distinct shortest paths (sigma) and its predecessor list.
//
// Two traversals are provided:
//
//   - BFS for unweighted snapshots: every arc counts as length 1.
//   - Dijkstra for weighted snapshots: a binary min-heap with lazy
//     decrease-key; arc length is the weight, or 1/weight with
//     WithInvertWeights.
//
// Run picks between them by Snapshot.Weighted. The resulting Tree keeps the
// discovery order (non-decreasing distance), which Tree.Accumulate replays
// backwards to add one source's betweenness and stress dependencies.
//
// Complexity:
//
//	– BFS:      Time O(V + E), Space O(V + E) for predecessor lists.
//	– Dijkstra: Time O((V + E) log V), Space O(V + E).
//	– Accumulate: Time O(V + E).
//
// Errors (sentinel):
//
//	– ErrNilSnapshot       snapshot pointer is nil.
//	– ErrSourceOutOfRange  source index is outside [0, n).
//	– ErrNegativeWeight    a traversed arc has negative length.
package paths

import (
	"errors"
	"math"
)

// Sentinel errors returned by the traversals.
var (
	// ErrNilSnapshot indicates a nil *core.Snapshot.
	ErrNilSnapshot = errors.New("paths: snapshot is nil")

	// ErrSourceOutOfRange indicates a source index outside the snapshot.
	ErrSourceOutOfRange = errors.New("paths: source index out of range")

	// ErrNegativeWeight indicates a negative arc length.
	ErrNegativeWeight = errors.New("paths: negative edge weight encountered")
)

// Epsilon is the tolerance used to decide that two weighted path lengths
// are equal.
const Epsilon = 1e-9

// Unreached is the distance recorded for vertices the source cannot reach.
var Unreached = math.Inf(1)

// Options configures a traversal.
type Options struct {
	// InvertWeights measures an arc of weight w as 1/w. Zero-weight arcs
	// become impassable.
	InvertWeights bool

	// ForceUnweighted runs BFS even on a weighted snapshot.
	ForceUnweighted bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero configuration: raw weights, automatic
// choice of traversal.
func DefaultOptions() Options { return Options{} }

// WithInvertWeights treats weights as strengths, so the length of an arc
// is 1/weight.
func WithInvertWeights() Option {
	return func(o *Options) { o.InvertWeights = true }
}

// WithForceUnweighted ignores weights and runs BFS.
func WithForceUnweighted() Option {
	return func(o *Options) { o.ForceUnweighted = true }
}

// Tree is the result of one single-source traversal. All slices are
// indexed by snapshot position.
type Tree struct {
	// Source is the snapshot index the traversal started from.
	Source int

	// Dist[t] is the shortest distance from Source, or Unreached.
	Dist []float64

	// Sigma[t] is the number of distinct shortest paths from Source to t.
	// Sigma[Source] == 1; unreached vertices have 0.
	Sigma []float64

	// Pred[t] lists every u such that an arc u→t lies on a shortest path.
	Pred [][]int

	// Order holds reached vertices in non-decreasing distance, Source first.
	Order []int
}

// newTree allocates an empty tree of size n seeded at source.
func newTree(n, source int) *Tree {
	t := &Tree{
		Source: source,
		Dist:   make([]float64, n),
		Sigma:  make([]float64, n),
		Pred:   make([][]int, n),
		Order:  make([]int, 0, n),
	}
	for i := range t.Dist {
		t.Dist[i] = Unreached
	}
	t.Dist[source] = 0
	t.Sigma[source] = 1

	return t
}
