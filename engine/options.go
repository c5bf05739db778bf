// SPDX-License-Identifier: MIT

package engine

import (
	"log/slog"
	"runtime"

	"github.com/katalvlaran/socnet/centrality"
	"github.com/katalvlaran/socnet/core"
)

// Options configures an Engine.
type Options struct {
	// Logger receives Debug pass logs and Warn telemetry failures.
	Logger *slog.Logger

	// Workers bounds the goroutines of the distance and census passes.
	Workers int

	// Progress receives ticks and status lines from long passes.
	Progress core.Progress

	// InvertWeights measures arcs as 1/weight, for relations whose weights
	// express tie strength rather than length.
	InvertWeights bool

	// Centrality is forwarded to the snapshot-based calculators
	// (degree, information, PageRank).
	Centrality []centrality.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions logs to slog.Default, uses GOMAXPROCS workers and no
// progress sink.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.Default(),
		Workers:  runtime.GOMAXPROCS(0),
		Progress: core.NopProgress{},
	}
}

// WithLogger sets the logger; nil keeps slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
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

// WithInvertWeights toggles 1/weight arc lengths.
func WithInvertWeights(on bool) Option {
	return func(o *Options) { o.InvertWeights = on }
}

// WithCentralityOptions appends options for the snapshot-based calculators,
// e.g. centrality.WithWeights(true) or centrality.WithDamping(0.9).
func WithCentralityOptions(opts ...centrality.Option) Option {
	return func(o *Options) { o.Centrality = append(o.Centrality, opts...) }
}
