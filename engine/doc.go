// SPDX-License-Identifier: MIT

// Package engine is the caching facade over a core.Graph.
//
// An Engine answers every analytic question (distances, connectedness,
// centrality and prestige reports, triad census, clustering, adjacency
// algebra) for one relation. Each answer is derived from an immutable
// core.Snapshot and cached under the graph version it was computed from:
//
//   - A query whose version matches the cached entry is a cache hit.
//   - Concurrent misses for the same key and version share one computation
//     (golang.org/x/sync/singleflight).
//   - A finished computation replaces the cached entry only if it is at
//     least as new, so a slow pass over an old snapshot can never overwrite
//     a fresher result.
//   - Graph mutations evict entries older than the new version.
//
// Engines returned by ForRelation share the cache of their parent; the
// relation is part of every cache key, so several relations can be
// analysed concurrently on one graph.
//
// Every recomputation runs inside an OpenTelemetry span ("socnet.engine"),
// feeds the pass duration/count metrics and is logged at Debug level with a
// pass_id that correlates logs and spans.
package engine
