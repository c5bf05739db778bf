// SPDX-License-Identifier: MIT

package centrality

// PageRank defaults.
const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 0.01
	DefaultMaxIterations = 100
)

// Options configures the snapshot-based calculators.
type Options struct {
	// Weights uses arc weights instead of arc counts (degree, information,
	// PageRank).
	Weights bool

	// Damping is the PageRank damping factor d in [0,1].
	Damping float64

	// Tolerance stops PageRank when the largest per-vertex change is below it.
	Tolerance float64

	// MaxIterations caps PageRank iterations.
	MaxIterations int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns unweighted calculators and the PageRank defaults.
func DefaultOptions() Options {
	return Options{Damping: DefaultDamping, Tolerance: DefaultTolerance, MaxIterations: DefaultMaxIterations}
}

// WithWeights toggles weighted computation.
func WithWeights(on bool) Option {
	return func(o *Options) { o.Weights = on }
}

// WithDamping sets the PageRank damping factor; values outside [0,1] are ignored.
func WithDamping(d float64) Option {
	return func(o *Options) {
		if d >= 0 && d <= 1 {
			o.Damping = d
		}
	}
}

// WithTolerance sets the PageRank stopping threshold; non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithMaxIterations caps PageRank iterations; non-positive values are ignored.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

func gather(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
