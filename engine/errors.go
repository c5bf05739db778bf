// SPDX-License-Identifier: MIT

package engine

import "errors"

// Sentinel errors.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("engine: graph is nil")

	// ErrEmptyGraph indicates the analysed relation has no enabled vertices.
	ErrEmptyGraph = errors.New("engine: no enabled vertices")

	// ErrUnknownIndex indicates a centrality.Index the requested family
	// does not contain (e.g. PageRank asked of Centrality).
	ErrUnknownIndex = errors.New("engine: unknown index")
)
