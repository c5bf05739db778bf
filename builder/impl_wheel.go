// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_wheel.go — implementation of Wheel(n).
//
// Canonical definition:
//   - Wₙ = Cₙ₋₁ + hub: rim at indices 0..n-2, hub at index n-1.
//   - Therefore n ≥ 4 (the rim must be a valid cycle).
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Builds the rim with Cycle(n-1) under the same cfg, then emits
//     spokes hub→rim in ascending rim index.
//
// Complexity:
//   - Time O(n), Space O(1) extra.

package builder

import "github.com/katalvlaran/socnet/core"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return builderErrorf(methodWheel, "n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return builderErrorf(methodWheel, "rim C_%d: %w", n-1, err)
		}
		hub := n - 1
		if err := addVertices(g, cfg, methodWheel, n); err != nil {
			return err
		}
		for i := 0; i < hub; i++ {
			if err := link(g, cfg, methodWheel, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
