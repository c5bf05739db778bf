// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each admissible tie independently with probability p.
//   - core.Mutual: unordered pairs {i,j} with i<j.
//   - core.Directed: ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 requires an RNG (else ErrNeedRandSource); p ∈ {0,1} is deterministic.
//
// Complexity:
//   - Time O(n²) Bernoulli trials, Space O(1) extra.
//
// Determinism:
//   - Trial order: i asc, j asc. For each accepted pair the trial draw
//     precedes the weight draw, so a fixed seed fixes both.

package builder

import (
	"math"

	"github.com/katalvlaran/socnet/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n,p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d: %w",
				n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax || math.IsNaN(p) {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [%.1f,%.1f]: %w",
				p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodRandomSparse, "rng is required: %w", ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		directed := cfg.mode == core.Directed
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !accept(cfg, p) {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// accept runs one Bernoulli trial; p ∈ {0,1} never touches the RNG.
func accept(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}
