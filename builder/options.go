// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// options.go — functional options for BuildGraph.
//
// Options panic on programmer error (nil callbacks, negative relation);
// constructors themselves never panic.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/socnet/core"
)

// BuilderOption mutates the builder configuration before constructors run.
type BuilderOption func(cfg *builderConfig)

// WithIDScheme maps constructor index i to a vertex name. Use it to place
// two topologies side by side without sharing vertices, e.g.
// WithIDScheme(func(i int) int { return 100 + i }).
// Panics if fn is nil.
func WithIDScheme(fn func(int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(cfg *builderConfig) { cfg.idFn = fn }
}

// WithRand supplies the RNG used by stochastic constructors and WeightFns.
// Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) { cfg.rng = r }
}

// WithSeed is WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn sets the per-edge weight generator. Panics if fn is nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(cfg *builderConfig) { cfg.weightFn = fn }
}

// WithMode selects core.Mutual (default) or core.Directed edge emission.
func WithMode(mode core.Reciprocity) BuilderOption {
	return func(cfg *builderConfig) { cfg.mode = mode }
}

// WithRelation targets relation idx instead of relation 0. The relation must
// exist on the graph; otherwise constructors fail with core.ErrInvalidRelation.
// Panics if idx < 0.
func WithRelation(idx int) BuilderOption {
	if idx < 0 {
		panic(fmt.Sprintf("builder: WithRelation(%d): negative index", idx))
	}

	return func(cfg *builderConfig) { cfg.relation = idx }
}
