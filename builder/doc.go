// SPDX-License-Identifier: MIT

// Package builder assembles deterministic sociogram fixtures on top of
// core.Graph: stars, cycles and ring lattices, complete graphs, paths,
// wheels and random sparse networks.
//
// Every factory returns a Constructor; BuildGraph creates the graph,
// resolves the BuilderOptions once and applies the constructors in order,
// so several topologies can be layered into one graph:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Star(5),
//		builder.RandomSparse(10, 0.2),
//	)
//
// Determinism:
//   - Vertex names come from the ID scheme (default: index 0..n-1).
//   - Edges are emitted in a fixed, documented order; with the same seed
//     the same options always yield the same graph and version sequence.
//
// Mode:
//   - Edges default to core.Mutual (both arcs, reciprocal). WithMode(core.Directed)
//     emits only the canonical direction, which turns a cycle into a
//     directed ring and a star into an out-star.
package builder
