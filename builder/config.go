// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = identity (index i becomes vertex name i)
//   - rng      = nil      (pure/deterministic unless seeded)
//   - weightFn = DefaultWeightFn (constant 1)
//   - mode     = core.Mutual
//   - relation = 0

package builder

import (
	"math/rand"

	"github.com/katalvlaran/socnet/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     func(int) int
	rng      *rand.Rand
	weightFn WeightFn
	mode     core.Reciprocity
	relation int
}

// newBuilderConfig starts from the defaults and applies opts in order
// (later overrides earlier). Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     identityID,
		weightFn: DefaultWeightFn,
		mode:     core.Mutual,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// identityID maps index i to vertex name i.
func identityID(i int) int { return i }

// addVertices inserts idFn(0..n-1) in ascending index order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return builderErrorf(method, "AddVertex(%d): %w", id, err)
		}
	}

	return nil
}

// link emits the edge between indices i and j with a freshly drawn weight,
// honoring the configured relation and mode.
func link(g *core.Graph, cfg builderConfig, method string, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(u, v, w, cfg.relation, cfg.mode); err != nil {
		return builderErrorf(method, "AddEdge(%d→%d, w=%g): %w", u, v, w, err)
	}

	return nil
}
