// SPDX-License-Identifier: MIT
// Package: socnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context with %w ("Cycle: n=2 < min=3: ...").
//   - Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n) is below the
// minimum of the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrBadParameter indicates a structural parameter that is not a size,
// e.g. an odd or too large ring lattice degree.
var ErrBadParameter = errors.New("builder: invalid parameter")

// ErrConstructFailed indicates that BuildGraph could not run at all
// (nil graph or nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
