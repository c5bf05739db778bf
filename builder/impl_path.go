// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_path.go — implementation of Path(n).
//
// Canonical definition:
//   - Pₙ: edges i→i+1 for i = 0..n-2. Under core.Directed it is a chain,
//     the smallest example of a unilaterally connected digraph.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//
// Complexity:
//   - Time O(n), Space O(1) extra.

package builder

import "github.com/katalvlaran/socnet/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds Pₙ.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, "n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, cfg, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
