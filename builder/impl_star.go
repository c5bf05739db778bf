// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_star.go — implementation of Star(n).
//
// Canonical definition:
//   - n vertices in total: hub at index 0, leaves at indices 1..n-1.
//   - One edge per leaf: hub→leaf (both arcs under core.Mutual).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emission order: leaves in ascending index.
//
// Complexity:
//   - Time O(n), Space O(1) extra.

package builder

import "github.com/katalvlaran/socnet/core"

const (
	methodStar   = "Star"
	minStarNodes = 2
	starHubIndex = 0
)

// Star returns a Constructor that builds a star with n vertices.
// The hub has name idFn(0); in an undirected star of five it is the only
// vertex with non-zero betweenness (6).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return builderErrorf(methodStar, "n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, methodStar, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := link(g, cfg, methodStar, starHubIndex, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
