// SPDX-License-Identifier: MIT
// Package matrix: functional configuration for the snapshot→matrix adapter.

package matrix

// Options controls how Adjacency maps a snapshot to a matrix.
type Options struct {
	dropIsolates bool
	omitWeights  bool
	symmetrize   bool
}

// Option configures Adjacency.
type Option func(*Options)

// WithDropIsolates leaves isolated vertices out of the matrix; the returned
// name slice tells which vertices remain.
func WithDropIsolates() Option {
	return func(o *Options) { o.dropIsolates = true }
}

// WithOmitWeights writes 1 for every arc instead of its weight.
func WithOmitWeights() Option {
	return func(o *Options) { o.omitWeights = true }
}

// WithSymmetrize makes the matrix symmetric: cell (i,j) and (j,i) both get
// the larger of the two directional values.
func WithSymmetrize() Option {
	return func(o *Options) { o.symmetrize = true }
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
