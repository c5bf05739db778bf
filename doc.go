// SPDX-License-Identifier: MIT

// Package socnet is an in-memory social network analysis toolkit: build a
// multi-relational weighted graph, then ask for geodesic distances,
// centrality and prestige indices, reachability, triad census, clustering
// and walk counts.
//
// Everything is organized under subpackages:
//
//	core/       — Graph (vertices, relations, enabled flags, version, observers) and immutable Snapshots
//	paths/      — BFS and Dijkstra with path counts, predecessors and the Brandes backward pass
//	distance/   — parallel all-pairs distance matrix, diameter, average distance, reachability, connectedness
//	centrality/ — DC, DP, CC, IRCC, BC, SC, EC, PC, IC, PP and PageRank reports with group indices
//	matrix/     — dense matrices, adjacency builder, Gauss-Jordan inverse, walk counts
//	triad/      — 16-type MAN triad census and clustering coefficients
//	builder/    — deterministic topologies (star, cycle, ring lattice, complete, path, wheel, random)
//	engine/     — memoizing facade keyed by graph version, with logging, tracing and metrics
//	cmd/socnet  — command-line front end driven by a YAML profile
//
// Quick example:
//
//	    1
//	    │
//	2───0───3
//	    │
//	    4
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Star(5))
//	e, _ := engine.New(g)
//	bc, _ := e.Centrality(ctx, centrality.BetweennessCentrality)
//	fmt.Println(bc.Raw) // [6 0 0 0 0]
//
// Analytics never read the live graph: each pass takes a Snapshot of the
// enabled vertices and arcs of one relation, so results are reproducible
// for a fixed graph version.
//
//	go get github.com/katalvlaran/socnet
package socnet
