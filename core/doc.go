// SPDX-License-Identifier: MIT
// Package core provides the thread-safe, multi-relational graph store that
// every analytic in socnet reads from.
//
// A Graph holds an ordered list of vertices identified by caller-chosen
// integer names, and for each relation a set of weighted arcs between
// them. Vertices and arcs carry an Enabled flag; disabled elements stay in
// the store but are invisible to analytics.
//
//   - Stable names, shifting positions: Position(name) may change after
//     RemoveVertex, Name never does.
//   - Relations: relation 0 always exists; AddRelation appends more,
//     ChangeRelation selects the one HasEdge and CurrentSnapshot use.
//   - Mutual arcs: AddEdge(..., Mutual) inserts both directions at once and
//     flags them Reciprocal.
//   - Version: every applied mutation increments Version(). Derived data is
//     keyed on it; two reads with the same version see the same topology.
//   - Degenerate input: self-loops and zero weights are stored and counted
//     by Stats(); analytics ignore self-loops.
//
// Analytics never walk the Graph directly. They take a Snapshot, which is
// an immutable, position-indexed copy of one relation restricted to
// enabled vertices and arcs:
//
//	g := core.NewGraph()
//	_ = g.AddVertex(1)
//	_ = g.AddVertex(2)
//	_ = g.AddEdge(1, 2, 1, 0, core.Mutual)
//	snap, _ := g.CurrentSnapshot()
//	fmt.Println(snap.Len(), snap.IsSymmetric()) // 2 true
//
// Change notification goes through the Observer interface (ObserverFunc and
// ChannelObserver adapters included); long-running analytics report through
// Progress.
//
// Concurrency:
//
//	A single sync.RWMutex guards the store. Observers are invoked after the
//	lock is released, on the mutating goroutine.
//
// Errors:
//
//	ErrVertexNotFound, ErrEdgeNotFound, ErrBadWeight, ErrInvalidRelation.
package core
