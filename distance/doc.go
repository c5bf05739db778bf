// SPDX-License-Identifier: MIT
// Package distance builds the all-pairs geodesic distance and path-count
// matrices of a core.Snapshot and derives the graph-level aggregates that
// depend on them: diameter, average distance, reachability, influence sets
// and connectedness.
//
// Compute runs one paths.Tree per source. Sources are split across a fixed
// number of workers (golang.org/x/sync/errgroup); each worker owns the rows
// of its sources and its own betweenness/stress partial vectors, which are
// summed in worker order once every worker is done. The result is therefore
// identical for a given snapshot and worker count.
//
// Unreachable pairs hold math.Inf(1) in Matrix.Dist and 0 in Matrix.Sigma;
// the diagonal is 0 and 1 respectively.
//
// Cancellation:
//
//	Workers check ctx before every source. A cancelled Compute returns
//	ctx.Err() (context.Canceled or context.DeadlineExceeded) and no Matrix.
package distance
