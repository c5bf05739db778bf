// SPDX-License-Identifier: MIT
// Package centrality computes vertex centrality and prestige indices of a
// social network and returns each as an immutable Report: raw values,
// standardized values, descriptive statistics of the standardized column
// and, where defined, a group centralization index.
//
// Indices and their inputs:
//
//	Degree, DegreePrestige, PageRank        core.Snapshot
//	Information                             core.Snapshot (matrix inversion)
//	Closeness, Betweenness, Stress,
//	Eccentricity, Power                     distance.Matrix
//	InfluenceRangeCloseness, Proximity      distance.Matrix + distance.Reachability
//
// Betweenness and Stress need a Matrix computed with
// distance.WithCentralities(true).
//
// Statistics (Report.Stats) are computed with gonum's stat and floats
// packages over Report.Std. Group indices that have no standard definition
// are NaN.
//
// Errors:
//
//	ErrUndefinedIndex   closeness on a graph that is not strongly connected.
//	ErrSingularMatrix   information centrality could not invert its matrix.
//	ErrNoAccumulation   betweenness/stress requested from a Matrix without them.
package centrality
