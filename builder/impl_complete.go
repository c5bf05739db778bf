// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_complete.go — implementation of Complete(n).
//
// Canonical definition:
//   - Kₙ: every pair of distinct vertices is tied.
//   - core.Mutual: unordered pairs {i,j}, i<j, one weight per pair.
//   - core.Directed: every ordered pair (i,j), i≠j, one weight per arc.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K₁ is a single isolate.
//
// Complexity:
//   - Time O(n²), Space O(1) extra.

package builder

import "github.com/katalvlaran/socnet/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds Kₙ.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, "n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.mode == core.Directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err := link(g, cfg, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
