// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_cycle.go — implementation of Cycle(n) and RingLattice(n, k).
//
// Canonical definitions:
//   - Cycle(n): Cₙ, edges i→(i+1) mod n.
//   - RingLattice(n, k): every vertex tied to its k/2 nearest neighbors on
//     each side, edges i→(i+d) mod n for d = 1..k/2. RingLattice(n, 2) == Cycle(n).
//
// Contract:
//   - Cycle: n ≥ 3 (else ErrTooFewVertices).
//   - RingLattice: n ≥ 3, k even, 2 ≤ k < n (else ErrBadParameter).
//   - Under core.Directed only the forward arcs are emitted (a directed ring).
//
// Complexity:
//   - Time O(n·k), Space O(1) extra.
//
// Determinism:
//   - Outer loop i ascending, inner loop d ascending.

package builder

import "github.com/katalvlaran/socnet/core"

const (
	methodCycle       = "Cycle"
	methodRingLattice = "RingLattice"
	minCycleNodes     = 3
	minLatticeDegree  = 2
)

// Cycle returns a Constructor that builds the cycle Cₙ.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, "n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}

		return ring(g, cfg, methodCycle, n, 1)
	}
}

// RingLattice returns a Constructor for the regular ring lattice in which
// every vertex has degree k. A ring lattice of 6 with degree 2 has
// diameter 3 and clustering 0; raising k to 4 lifts clustering to 1/2.
func RingLattice(n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodRingLattice, "n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		if k < minLatticeDegree || k%2 != 0 || k >= n {
			return builderErrorf(methodRingLattice, "k=%d must be even with 2 ≤ k < n=%d: %w", k, n, ErrBadParameter)
		}

		return ring(g, cfg, methodRingLattice, n, k/2)
	}
}

// ring adds n vertices and ties each one to the next reach vertices clockwise.
func ring(g *core.Graph, cfg builderConfig, method string, n, reach int) error {
	if err := addVertices(g, cfg, method, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for d := 1; d <= reach; d++ {
			if err := link(g, cfg, method, i, (i+d)%n); err != nil {
				return err
			}
		}
	}

	return nil
}
