// SPDX-License-Identifier: MIT

package distance

import (
	"runtime"

	"github.com/katalvlaran/socnet/core"
)

// Options configures Compute.
type Options struct {
	// Workers is the number of goroutines sharing the sources (>= 1).
	Workers int

	// Progress receives one tick per finished source.
	Progress core.Progress

	// Centralities enables the Brandes accumulation of betweenness and
	// stress during the same pass.
	Centralities bool

	// InvertWeights measures arcs as 1/weight.
	InvertWeights bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions uses GOMAXPROCS workers, no progress sink and no
// centrality accumulation.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0), Progress: core.NopProgress{}}
}

// WithWorkers sets the worker count; values below 1 are clamped to 1.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = 1
		}
		o.Workers = n
	}
}

// WithProgress installs a progress sink; nil restores the no-op sink.
func WithProgress(p core.Progress) Option {
	return func(o *Options) {
		if p == nil {
			p = core.NopProgress{}
		}
		o.Progress = p
	}
}

// WithCentralities toggles betweenness/stress accumulation.
func WithCentralities(on bool) Option {
	return func(o *Options) { o.Centralities = on }
}

// WithInvertWeights measures arcs as 1/weight.
func WithInvertWeights(on bool) Option {
	return func(o *Options) { o.InvertWeights = on }
}
